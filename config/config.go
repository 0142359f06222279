package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the configuration required for the dataset-access-service
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	FirestoreProjectID         string        `envconfig:"FIRESTORE_PROJECT_ID"`
	FirestoreCredentialsFile   string        `envconfig:"FIRESTORE_CREDENTIALS_FILE" json:"-"`
	StoreOperationTimeout      time.Duration `envconfig:"STORE_OPERATION_TIMEOUT"`
	LedgerQueueSize            int           `envconfig:"LEDGER_QUEUE_SIZE"`
	LedgerWorkers              int           `envconfig:"LEDGER_WORKERS"`
	VersionLookahead           int           `envconfig:"VERSION_LOOKAHEAD"`
	MaxConcurrentHandlers      int           `envconfig:"MAX_CONCURRENT_HANDLERS"`
}

var cfg *Config

// Get retrieves the config from the environment for the dataset-access-service
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   "localhost:24100",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		FirestoreProjectID:         "dataset-hub-dev",
		FirestoreCredentialsFile:   "",
		StoreOperationTimeout:      10 * time.Second,
		LedgerQueueSize:            1024,
		LedgerWorkers:              4,
		VersionLookahead:           5,
		MaxConcurrentHandlers:      0,
	}

	return cfg, envconfig.Process("", cfg)
}
