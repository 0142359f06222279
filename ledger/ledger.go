package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

//go:generate moq -rm -pkg ledger_test -out moq_store_test.go . Store

// Store is the record-store surface the ledger writes to. Implementations
// must make each individual mutation atomic with respect to concurrent
// callers touching the same document; AppendUserRequest must additionally
// serialize the read-modify-write of the per-user history document.
type Store interface {
	AppendUserRequest(ctx context.Context, userID, datasetID, versionKey string, at time.Time) error
	IncrementVersionRequestCount(ctx context.Context, datasetID, versionID string) error
	IncrementDatasetRequestCount(ctx context.Context, datasetID string) error
	UpsertVersionRequestor(ctx context.Context, datasetID, versionID, userID string, at time.Time) error
}

// VersionKey sanitizes a dotted version identifier into a map-safe key.
// The store treats "." as a field-path separator, so "1.2.0" is stored
// under "1_2_0".
func VersionKey(versionID string) string {
	return strings.ReplaceAll(versionID, ".", "_")
}

// Ledger durably updates the denormalized usage counters for a resolved
// access: per-user history, per-version aggregate, dataset aggregate and
// per-version per-user aggregate.
//
// The per-user history is strictly consistent (transactional); the
// remaining counters are eventually consistent by design. Every step is
// attempted even when an earlier one fails, so partial durability never
// hides the later counters.
type Ledger struct {
	store Store
	now   func() time.Time
}

// New returns a Ledger writing through store.
func New(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Record accounts one successful access of versionID of datasetID by
// userID. The returned error joins the failures of all attempted steps;
// callers report it, they never surface it to the user who already holds
// the artifact descriptor.
func (l *Ledger) Record(ctx context.Context, userID, datasetID, versionID string) error {
	at := l.now().UTC()
	key := VersionKey(versionID)

	var errs []error

	if err := l.store.AppendUserRequest(ctx, userID, datasetID, key, at); err != nil {
		errs = append(errs, fmt.Errorf("user request history: %w", err))
	}

	if err := l.store.IncrementVersionRequestCount(ctx, datasetID, versionID); err != nil {
		errs = append(errs, fmt.Errorf("version request count: %w", err))
	}

	if err := l.store.IncrementDatasetRequestCount(ctx, datasetID); err != nil {
		errs = append(errs, fmt.Errorf("dataset request count: %w", err))
	}

	if err := l.store.UpsertVersionRequestor(ctx, datasetID, versionID, userID, at); err != nil {
		errs = append(errs, fmt.Errorf("version requestor record: %w", err))
	}

	return errors.Join(errs...)
}
