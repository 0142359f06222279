package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/datasethub/dataset-access-service/config"
	"github.com/datasethub/dataset-access-service/storage"
)

const (
	datasetsCollection     = "datasets"     // root collection of dataset documents
	versionsCollection     = "versions"     // subcollection of a dataset
	instancesCollection    = "instances"    // subcollection of a version
	requestorsCollection   = "requestors"   // per-version accounting subcollection
	userRequestsCollection = "userRequests" // root collection of per-user accounting
	userDatasetsCollection = "datasets"     // subcollection under a userRequests document

	fieldPublishedOn    = "publishedOn"
	fieldRequestCount   = "requestCount"
	fieldRequestedCount = "requestedCount"
	fieldRequestedTime  = "requestedTime"
)

// Store is the concrete record-store layer backed by Firestore.
//
// Every operation runs under a fixed timeout so an unreachable store
// surfaces as a transient error instead of a hung request. Firestore
// document references are cheap value objects; handles are built per
// call rather than cached.
type Store struct {
	client    *firestore.Client
	opTimeout time.Duration
}

// New connects to Firestore using the configured project and optional
// credentials file. With no credentials configured, application default
// credentials apply.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		return nil, err
	}

	return &Store{
		client:    client,
		opTimeout: cfg.StoreOperationTimeout,
	}, nil
}

// Close releases the underlying Firestore client.
func (s *Store) Close(_ context.Context) error {
	return s.client.Close()
}

// Checker is called by the healthcheck library to check the health state
// of the Firestore connection. A NotFound on the probe document still
// proves reachability and counts as healthy.
func (s *Store) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	_, err := s.client.Collection(datasetsCollection).Doc("__healthcheck__").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		state.Update(healthcheck.StatusCritical, err.Error(), 0)
		return err
	}

	state.Update(healthcheck.StatusOK, "firestore is ok", 0)
	return nil
}

func (s *Store) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *Store) dataset(datasetID string) *firestore.DocumentRef {
	return s.client.Collection(datasetsCollection).Doc(datasetID)
}

func (s *Store) version(datasetID, versionID string) *firestore.DocumentRef {
	return s.dataset(datasetID).Collection(versionsCollection).Doc(versionID)
}

func (s *Store) userRequest(userID, datasetID string) *firestore.DocumentRef {
	return s.client.Collection(userRequestsCollection).Doc(userID).Collection(userDatasetsCollection).Doc(datasetID)
}

// notFound maps the Firestore absent-document error onto the storage
// sentinel so callers never depend on grpc status codes.
func notFound(err error) error {
	if status.Code(err) == codes.NotFound {
		return storage.ErrNotFound
	}
	return err
}
