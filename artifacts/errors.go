package artifacts

import "errors"

var (
	// ErrDatasetAccess covers both an authorization denial and an absent
	// dataset. The two are indistinguishable on purpose so a denied caller
	// cannot probe for a dataset's existence.
	ErrDatasetAccess = errors.New("dataset access denied")

	// ErrNoActiveVersion means no enabled version was found within the
	// recency lookahead window.
	ErrNoActiveVersion = errors.New("no active version available")

	// ErrVersionNotFound means the named version does not exist.
	ErrVersionNotFound = errors.New("version not found")

	// ErrVersionDisabled means the named version exists but has been
	// disabled; no descriptor data is returned for it.
	ErrVersionDisabled = errors.New("version is disabled")

	// ErrInstanceNotFound means the named instance does not exist under
	// the given version.
	ErrInstanceNotFound = errors.New("instance not found")
)
