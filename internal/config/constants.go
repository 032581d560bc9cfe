package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envPrimary         = "PRIMARY_PROVIDER"
	envFallbackEnabled = "FALLBACK_ENABLED"
	envTimezone        = "TIMEZONE"
	envWagersFile      = "WAGERS_FILE"
	envRequestTimeout  = "REQUEST_TIMEOUT"
	envMaxRetries      = "MAX_RETRIES"
	envDateWindow      = "DATE_WINDOW"

	envFdToken        = "FOOTBALL_DATA_TOKEN"
	envFdBaseURL      = "FOOTBALL_DATA_BASE_URL"
	envFdCompetitions = "FOOTBALL_DATA_COMPETITIONS"
	envFdRate         = "FOOTBALL_DATA_RATE_PER_MIN"
	envTsdKey         = "THESPORTSDB_KEY"
	envTsdKeyAlt      = "TSD_API_KEY"
	envTsdBaseURL     = "THESPORTSDB_BASE_URL"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"
	envLogFile   = "LOG_FILE"

	defaultPort = "4000"
	// football-data's free tier allows 10 requests a minute.
	defaultPollInterval   = 60 * Duration(time.Second)
	defaultPrimary        = "football-data"
	defaultTimezone       = "Europe/Rome"
	defaultWagersFile     = "wagers.yaml"
	defaultRequestTimeout = 10 * Duration(time.Second)
	defaultMaxRetries     = 3
	defaultDateWindow     = 0
	defaultFdBaseURL      = "https://api.football-data.org/v4"
	defaultFdCompetitions = "2001,2002,2014,2015,2019,2021"
	defaultFdRate         = 10
	defaultTsdKey         = "123"
	defaultTsdBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "wager-tracker"

	defaultSnapshotRetention = 14
)
