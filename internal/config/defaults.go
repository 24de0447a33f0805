package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress            = "localhost:4000"
	DefaultServerRequestTimeout   = 30 * time.Second
	DefaultDBDriver               = DriverPostgres
	DefaultMinFilesHashVersion    = "0.3.51"
	DefaultLogLevel               = "debug"
	DefaultAdapterRequestTimeout  = 5 * time.Second
	DefaultAdapterRetryCount      = 1
	DefaultFetchFilesHashAttempts = 3
	DefaultInitialBackoff         = 100 * time.Millisecond
	DefaultMaxBackoff             = time.Second
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MinFilesHashVersion: DefaultMinFilesHashVersion,
			LogLevel:            DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
			RetryCount:     DefaultAdapterRetryCount,
		},
		Sync: Sync{
			FetchFilesHashAttempts: DefaultFetchFilesHashAttempts,
			InitialBackoff:         DefaultInitialBackoff,
			MaxBackoff:             DefaultMaxBackoff,
		},
	}
}
