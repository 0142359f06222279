package access

import (
	"github.com/datasethub/dataset-access-service/storage"
)

// IsAuthorized decides whether a caller may see a dataset at all.
//
// The predicate fails closed: a missing dataset record denies, an empty
// or absent accessUsers set denies, and the default is deny. It must run
// before any version or instance data is read so a failed evaluation can
// never disclose partial content.
func IsAuthorized(d *storage.DatasetDocument, callerID string) bool {
	if d == nil {
		return false
	}

	if d.Public() {
		return true
	}

	if callerID == "" {
		return false
	}

	for _, u := range d.AccessUsers {
		if u == callerID {
			return true
		}
	}

	return false
}
