package service

import (
	"context"
	"net/http"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"github.com/datasethub/dataset-access-service/api"
	"github.com/datasethub/dataset-access-service/artifacts"
	"github.com/datasethub/dataset-access-service/config"
	"github.com/datasethub/dataset-access-service/ledger"
)

// AccessService represents the configuration to run the dataset access service
type AccessService struct {
	store       Store
	worker      *ledger.Worker
	workers     int
	router      *mux.Router
	server      HTTPServer
	shutdown    time.Duration
	healthCheck HealthChecker
}

// Generate mocks of dependencies
//
//go:generate moq -rm -pkg service_test -out moq_service_test.go . Dependencies HealthChecker HTTPServer Store
//go:generate moq -rm -pkg service_test -out moq_fetcher_test.go ../api FileOpener

// Dependencies holds constructors/factories for all external dependencies
type Dependencies interface {
	Store(context.Context, *config.Config) (Store, error)
	FileFetcher(context.Context, *config.Config) (api.FileOpener, error)
	HealthCheck(*config.Config, string, string, string) (HealthChecker, error)
	HttpServer(*config.Config, http.Handler) HTTPServer
}

// Store is the record store the service reads artifact documents from and
// writes usage accounting to.
type Store interface {
	artifacts.Store
	ledger.Store
	Checker(context.Context, *healthcheck.CheckState) error
	Close(context.Context) error
}

// HealthChecker abstracts healthcheck.HealthCheck so we can create a mock.
type HealthChecker interface {
	AddCheck(string, healthcheck.Checker) error
	Start(context.Context)
	Stop()
	Handler(http.ResponseWriter, *http.Request)
}

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// New returns a new AccessService with dependencies initialised based on cfg and deps.
func New(ctx context.Context, buildTime, gitCommit, version string, cfg *config.Config, deps Dependencies) (*AccessService, error) {
	svc := &AccessService{
		shutdown: cfg.GracefulShutdownTimeout,
		workers:  cfg.LedgerWorkers,
	}

	// Set up the record store.
	//
	st, err := deps.Store(ctx, cfg)
	if err != nil {
		log.Error(ctx, "could not create the record store", err)
		return nil, err
	}
	svc.store = st

	// Set up the file fetcher for download streaming.
	//
	fetcher, err := deps.FileFetcher(ctx, cfg)
	if err != nil {
		log.Error(ctx, "could not create the file fetcher", err)
		return nil, err
	}

	// Set up health checkers for enabled dependencies.
	//
	hc, err := deps.HealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Fatal(ctx, "could not create health checker", err)
		return nil, err
	}
	svc.healthCheck = hc
	if err = svc.registerCheckers(ctx); err != nil {
		return nil, err
	}

	// Resolution and accounting pipeline: the resolver answers requests, the
	// ledger worker records them off the request path.
	//
	resolver := artifacts.NewResolver(st, cfg.VersionLookahead)
	svc.worker = ledger.NewWorker(ledger.New(st), cfg.LedgerQueueSize)

	a := &api.API{
		Resolver: resolver,
		Recorder: svc.worker,
		Fetcher:  fetcher,
	}

	// And tie routes to access handler methods.
	//
	router := mux.NewRouter()
	router.Path("/datasets/{datasetID}/versions/latest").Methods(http.MethodGet).HandlerFunc(a.GetLatest)
	router.Path("/datasets/{datasetID}/versions/{version}").Methods(http.MethodGet).HandlerFunc(a.GetVersion)
	router.Path("/datasets/{datasetID}/versions/{version}/instances/{instanceID}").Methods(http.MethodGet).HandlerFunc(a.GetInstance)
	router.Path("/downloads/datasets/{datasetID}/versions/{version}").Methods(http.MethodGet).HandlerFunc(a.DownloadVersion)
	router.HandleFunc("/health", hc.Handler)
	svc.router = router

	middlewareChain := alice.New(
		gorillahandlers.CORS(gorillahandlers.AllowedMethods([]string{"GET"})),
	)
	if cfg.MaxConcurrentHandlers > 0 {
		middlewareChain = middlewareChain.Append(api.Limiter(cfg.MaxConcurrentHandlers))
	}

	svc.server = deps.HttpServer(cfg, middlewareChain.Then(router))

	return svc, nil
}

func (svc *AccessService) registerCheckers(ctx context.Context) error {
	if err := svc.healthCheck.AddCheck("Record Store", svc.store.Checker); err != nil {
		log.Error(ctx, "error adding check for record store", err)
		return err
	}
	return nil
}

func (svc *AccessService) Run(ctx context.Context) {
	svc.healthCheck.Start(ctx)
	svc.worker.Start(ctx, svc.workers)

	go func() {
		log.Info(ctx, "starting dataset access service...")
		if err := svc.server.ListenAndServe(); err != nil {
			log.Error(ctx, "dataset access service http server returned an error", err)
		}
	}()
}

func (svc *AccessService) Close(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, svc.shutdown)
	defer cancel()

	// Gracefully shutdown the application closing any open resources.
	log.Info(shutdownCtx, "shutdown with timeout", log.Data{"timeout": svc.shutdown})

	shutdownStart := time.Now()
	svc.healthCheck.Stop()

	// The server goes first: Shutdown waits for in-flight handlers, and
	// handlers submit to the worker, so the worker must still be open
	// while they finish.
	if err := svc.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	// Drain queued accounting tasks before the store goes away.
	if err := svc.worker.Close(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "usage ledger worker did not drain cleanly", err)
	}

	if err := svc.store.Close(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "error closing record store", err)
		return err
	}

	log.Info(shutdownCtx, "shutdown complete", log.Data{"duration": time.Since(shutdownStart)})

	return nil
}
