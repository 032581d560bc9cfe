package config

// Config holds runtime configuration for the tracker.
type Config struct {
	Port         string
	PollInterval Duration
	Timezone     string
	WagersFile   string
	Resolve      ResolveConfig
	Providers    ProvidersConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotsConfig
	Logging      LoggingConfig
}

// ResolveConfig controls transport behaviour and the date search window.
type ResolveConfig struct {
	Timeout    Duration
	MaxRetries int
	DateWindow int
}

// LoggingConfig mirrors logging.Config minus the service identity.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		WagersFile:   envOrDefault(envWagersFile, defaultWagersFile),
		Resolve: ResolveConfig{
			Timeout:    durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
			MaxRetries: nonNegativeIntEnvOrDefault(envMaxRetries, defaultMaxRetries),
			DateWindow: nonNegativeIntEnvOrDefault(envDateWindow, defaultDateWindow),
		},
		Providers: loadProviders(),
		Metrics:   loadMetrics(),
		Snapshots: loadSnapshots(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
			File:   envOrDefault(envLogFile, ""),
		},
	}
}
