package external

import (
	"context"
	"fmt"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"google.golang.org/api/option"

	"github.com/datasethub/dataset-access-service/api"
	"github.com/datasethub/dataset-access-service/config"
	"github.com/datasethub/dataset-access-service/files"
	"github.com/datasethub/dataset-access-service/service"
	"github.com/datasethub/dataset-access-service/store"
)

// External implements the service.Dependencies interface for actual external services.
type External struct{}

var _ service.Dependencies = &External{}

func (*External) Store(ctx context.Context, cfg *config.Config) (service.Store, error) {
	return store.New(ctx, cfg)
}

// FileFetcher builds the fetcher used to stream artifact files. The GCS
// client picks up application default credentials unless a credentials file
// is configured.
func (*External) FileFetcher(ctx context.Context, cfg *config.Config) (api.FileOpener, error) {
	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
	}

	gcsClient, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create gcs client: %w", err)
	}

	return files.NewFetcher(http.DefaultClient, gcsClient), nil
}

func (*External) HealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

func (*External) HttpServer(cfg *config.Config, r http.Handler) service.HTTPServer {
	s := dphttp.NewServer(cfg.BindAddr, r)
	s.HandleOSSignals = false

	return s
}
