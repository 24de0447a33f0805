package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-version version reported to peers
//	-min-files-hash-version lowest peer version reporting files hashes
//	-log-level zerolog level name
//	-adapter-timeout outbound request timeout
//	-adapter-retries outbound transport retries
//	-fetch-attempts range files hash lookup attempts
//	-initial-backoff wait before the first lookup retry
//	-max-backoff cap of the wait between lookup retries
//	-metrics expose /metrics
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var version, minFilesHashVersion, logLevel string
	var adapterTimeout time.Duration
	var adapterRetries int
	var fetchAttempts uint
	var initialBackoff, maxBackoff time.Duration
	var metricsEnabled bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&version, "version", "", "Version reported to peers")
	flag.StringVar(&minFilesHashVersion, "min-files-hash-version", "", "Lowest peer version reporting files hashes")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Peer request timeout (e.g., 5s)")
	flag.IntVar(&adapterRetries, "adapter-retries", 0, "Peer request retries")
	flag.UintVar(&fetchAttempts, "fetch-attempts", 0, "Range files hash lookup attempts")
	flag.DurationVar(&initialBackoff, "initial-backoff", 0, "Wait before the first lookup retry")
	flag.DurationVar(&maxBackoff, "max-backoff", 0, "Maximum wait between lookup retries")
	flag.BoolVar(&metricsEnabled, "metrics", false, "Expose /metrics")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version:             version,
			MinFilesHashVersion: minFilesHashVersion,
			LogLevel:            logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: adapterTimeout,
			RetryCount:     adapterRetries,
		},
		Sync: Sync{
			FetchFilesHashAttempts: fetchAttempts,
			InitialBackoff:         initialBackoff,
			MaxBackoff:             maxBackoff,
		},
		Telemetry: Telemetry{
			MetricsEnabled: metricsEnabled,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
