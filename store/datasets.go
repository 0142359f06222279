package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/datasethub/dataset-access-service/storage"
)

// GetDataset fetches a dataset root document.
func (s *Store) GetDataset(ctx context.Context, datasetID string) (*storage.DatasetDocument, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	snap, err := s.dataset(datasetID).Get(ctx)
	if err != nil {
		return nil, notFound(err)
	}

	var d storage.DatasetDocument
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decoding dataset %q: %w", datasetID, err)
	}
	d.ID = snap.Ref.ID

	return &d, nil
}

// RecentVersions returns up to limit versions of a dataset ordered by
// publishedOn descending. Disabled versions are not filtered out here;
// filtering in the query would need a composite index and could skip a
// version published after the query plan was cached, so callers scan the
// returned window instead.
func (s *Store) RecentVersions(ctx context.Context, datasetID string, limit int) ([]storage.VersionDocument, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	iter := s.dataset(datasetID).
		Collection(versionsCollection).
		OrderBy(fieldPublishedOn, firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var versions []storage.VersionDocument
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing versions of dataset %q: %w", datasetID, err)
		}

		v, err := versionFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}

	return versions, nil
}

// GetVersion fetches a named version of a dataset.
func (s *Store) GetVersion(ctx context.Context, datasetID, versionID string) (*storage.VersionDocument, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	snap, err := s.version(datasetID, versionID).Get(ctx)
	if err != nil {
		return nil, notFound(err)
	}

	return versionFromSnapshot(snap)
}

// GetInstance fetches a saved instance nested under a version.
func (s *Store) GetInstance(ctx context.Context, datasetID, versionID, instanceID string) (*storage.InstanceDocument, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	snap, err := s.version(datasetID, versionID).Collection(instancesCollection).Doc(instanceID).Get(ctx)
	if err != nil {
		return nil, notFound(err)
	}

	var inst storage.InstanceDocument
	if err := snap.DataTo(&inst); err != nil {
		return nil, fmt.Errorf("decoding instance %q: %w", instanceID, err)
	}
	inst.ID = snap.Ref.ID
	inst.Raw = snap.Data()

	return &inst, nil
}

func versionFromSnapshot(snap *firestore.DocumentSnapshot) (*storage.VersionDocument, error) {
	var v storage.VersionDocument
	if err := snap.DataTo(&v); err != nil {
		return nil, fmt.Errorf("decoding version %q: %w", snap.Ref.ID, err)
	}
	v.ID = snap.Ref.ID
	v.Raw = snap.Data()
	return &v, nil
}
