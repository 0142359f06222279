package artifacts

import (
	"context"
	"errors"
	"time"

	"github.com/datasethub/dataset-access-service/access"
	"github.com/datasethub/dataset-access-service/storage"
)

//go:generate moq -rm -pkg artifacts_test -out moq_store_test.go . Store

// Store is the record-store surface the resolver reads from.
type Store interface {
	GetDataset(ctx context.Context, datasetID string) (*storage.DatasetDocument, error)
	RecentVersions(ctx context.Context, datasetID string, limit int) ([]storage.VersionDocument, error)
	GetVersion(ctx context.Context, datasetID, versionID string) (*storage.VersionDocument, error)
	GetInstance(ctx context.Context, datasetID, versionID, instanceID string) (*storage.InstanceDocument, error)
}

// DefaultLookahead bounds the latest-enabled scan. Several consecutive
// disabled versions at the head of the recency ordering is rare; a small
// window keeps the query cheap without needing a composite index on
// (publishedOn, isDisabled).
const DefaultLookahead = 5

// Descriptor is the normalized artifact returned to callers once a
// dataset, version or instance has been resolved.
type Descriptor struct {
	DatasetID   string                 `json:"datasetId"`
	VersionID   string                 `json:"versionId"`
	InstanceID  string                 `json:"instanceId,omitempty"`
	Files       []File                 `json:"files"`
	PublishedAt time.Time              `json:"publishedAt"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// PrimaryURL returns the single download URL of the descriptor: the first
// file in sequence order, never an arbitrary pick. Empty when the record
// carries no files.
func (d *Descriptor) PrimaryURL() string {
	if len(d.Files) == 0 {
		return ""
	}
	return d.Files[0].URL
}

// Resolver gates dataset access and locates the concrete version or
// instance record to serve. All methods are side-effect-free reads and
// safe for concurrent use.
type Resolver struct {
	store     Store
	lookahead int
}

// NewResolver returns a Resolver reading from store. A lookahead below 1
// falls back to DefaultLookahead.
func NewResolver(store Store, lookahead int) *Resolver {
	if lookahead < 1 {
		lookahead = DefaultLookahead
	}
	return &Resolver{store: store, lookahead: lookahead}
}

// Latest resolves the most recently published enabled version of a
// dataset. Legacy dataset documents carry an explicit latestVersion
// pointer which is dereferenced directly; current documents are resolved
// by scanning the recency window for the first enabled version.
func (r *Resolver) Latest(ctx context.Context, datasetID, callerID string) (*Descriptor, error) {
	d, err := r.authorize(ctx, datasetID, callerID)
	if err != nil {
		return nil, err
	}

	if d.LatestVersion != "" {
		v, err := r.store.GetVersion(ctx, datasetID, d.LatestVersion)
		if errors.Is(err, storage.ErrNotFound) {
			// dangling pointer, nothing to serve
			return nil, ErrNoActiveVersion
		}
		if err != nil {
			return nil, err
		}
		if v.IsDisabled {
			return nil, ErrNoActiveVersion
		}
		return versionDescriptor(datasetID, v), nil
	}

	versions, err := r.store.RecentVersions(ctx, datasetID, r.lookahead)
	if err != nil {
		return nil, err
	}

	for i := range versions {
		if !versions[i].IsDisabled {
			return versionDescriptor(datasetID, &versions[i]), nil
		}
	}

	return nil, ErrNoActiveVersion
}

// ByVersion resolves a named version of a dataset.
func (r *Resolver) ByVersion(ctx context.Context, datasetID, versionID, callerID string) (*Descriptor, error) {
	if _, err := r.authorize(ctx, datasetID, callerID); err != nil {
		return nil, err
	}

	v, err := r.store.GetVersion(ctx, datasetID, versionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrVersionNotFound
	}
	if err != nil {
		return nil, err
	}

	if v.IsDisabled {
		return nil, ErrVersionDisabled
	}

	return versionDescriptor(datasetID, v), nil
}

// Instance resolves a saved instance nested under a version. Instances
// carry no disabled flag; they inherit only the dataset's access policy.
func (r *Resolver) Instance(ctx context.Context, datasetID, versionID, instanceID, callerID string) (*Descriptor, error) {
	if _, err := r.authorize(ctx, datasetID, callerID); err != nil {
		return nil, err
	}

	inst, err := r.store.GetInstance(ctx, datasetID, versionID, instanceID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInstanceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		DatasetID:   datasetID,
		VersionID:   versionID,
		InstanceID:  inst.ID,
		Files:       NormalizeFiles(inst.Files, inst.FileURLs, inst.FileURL),
		PublishedAt: inst.SavedAt,
		Metadata:    inst.Raw,
	}, nil
}

// authorize runs the access gate strictly before any version or instance
// read. An absent dataset and a denied caller produce the same error.
func (r *Resolver) authorize(ctx context.Context, datasetID, callerID string) (*storage.DatasetDocument, error) {
	d, err := r.store.GetDataset(ctx, datasetID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrDatasetAccess
	}
	if err != nil {
		return nil, err
	}

	if !access.IsAuthorized(d, callerID) {
		return nil, ErrDatasetAccess
	}

	return d, nil
}

func versionDescriptor(datasetID string, v *storage.VersionDocument) *Descriptor {
	return &Descriptor{
		DatasetID:   datasetID,
		VersionID:   v.ID,
		Files:       NormalizeFiles(v.Files, v.FileURLs, v.FileURL),
		PublishedAt: v.PublishedOn,
		Metadata:    v.Raw,
	}
}
