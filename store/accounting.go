package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/datasethub/dataset-access-service/storage"
)

// AppendUserRequest appends an access timestamp to the per-user request
// history for a dataset, creating the document on first access.
//
// The versions map is a nested field, so the read-modify-write is not
// natively atomic; it runs inside a single-document transaction to
// serialize concurrent accesses by the same user without losing entries.
// Different users write different documents and never contend here.
func (s *Store) AppendUserRequest(ctx context.Context, userID, datasetID, versionKey string, at time.Time) error {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	ref := s.userRequest(userID, datasetID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var rec storage.UserRequestDocument

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
			// first access by this user to this dataset
		case err != nil:
			return err
		default:
			if err := snap.DataTo(&rec); err != nil {
				return fmt.Errorf("decoding user request record: %w", err)
			}
		}

		if rec.Versions == nil {
			rec.Versions = make(map[string][]time.Time)
		}
		rec.Versions[versionKey] = append(rec.Versions[versionKey], at)
		rec.LastUpdated = at

		return tx.Set(ref, rec)
	})
	if err != nil {
		return fmt.Errorf("appending user request for user %q dataset %q: %w", userID, datasetID, err)
	}

	return nil
}

// IncrementVersionRequestCount bumps the denormalized aggregate on a
// version document. The merge-set with a server-side Increment transform
// both creates an absent counter at 1 and resolves concurrent writers
// without client-side retry.
func (s *Store) IncrementVersionRequestCount(ctx context.Context, datasetID, versionID string) error {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	_, err := s.version(datasetID, versionID).Set(ctx, map[string]interface{}{
		fieldRequestCount: firestore.Increment(1),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("incrementing request count of version %q: %w", versionID, err)
	}

	return nil
}

// IncrementDatasetRequestCount bumps the dataset root aggregate, with the
// same create-or-increment semantics as the version counter.
func (s *Store) IncrementDatasetRequestCount(ctx context.Context, datasetID string) error {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	_, err := s.dataset(datasetID).Set(ctx, map[string]interface{}{
		fieldRequestCount: firestore.Increment(1),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("incrementing request count of dataset %q: %w", datasetID, err)
	}

	return nil
}

// UpsertVersionRequestor records one user's access against a version:
// requestedCount is incremented and the timestamp appended, both as
// server-side transforms on the one requestor document.
//
// ArrayUnion deduplicates identical elements, so two accesses by the same
// user in the same instant collapse to one requestedTime entry while
// requestedCount still advances by two. requestedCount is the exact
// counter; requestedTime documents when, not how many.
func (s *Store) UpsertVersionRequestor(ctx context.Context, datasetID, versionID, userID string, at time.Time) error {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	ref := s.version(datasetID, versionID).Collection(requestorsCollection).Doc(userID)

	_, err := ref.Set(ctx, map[string]interface{}{
		fieldRequestedCount: firestore.Increment(1),
		fieldRequestedTime:  firestore.ArrayUnion(at),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upserting requestor %q for version %q: %w", userID, versionID, err)
	}

	return nil
}
