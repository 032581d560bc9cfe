package config

// ProvidersConfig selects and configures the fixture sources.
type ProvidersConfig struct {
	// Primary is "football-data" or "fixture".
	Primary         string
	FallbackEnabled bool
	FootballData    FootballDataConfig
	TheSportsDB     TheSportsDBConfig
}

// FootballDataConfig controls how we talk to football-data.org.
type FootballDataConfig struct {
	BaseURL       string
	Token         string
	Competitions  string
	RatePerMinute int
}

// TheSportsDBConfig controls how we talk to TheSportsDB.
type TheSportsDBConfig struct {
	BaseURL string
	APIKey  string
}

func loadProviders() ProvidersConfig {
	return ProvidersConfig{
		Primary:         envOrDefault(envPrimary, defaultPrimary),
		FallbackEnabled: boolEnvOrDefault(envFallbackEnabled, true),
		FootballData: FootballDataConfig{
			BaseURL:       envOrDefault(envFdBaseURL, defaultFdBaseURL),
			Token:         envOrDefault(envFdToken, ""),
			Competitions:  envOrDefault(envFdCompetitions, defaultFdCompetitions),
			RatePerMinute: intEnvOrDefault(envFdRate, defaultFdRate),
		},
		TheSportsDB: TheSportsDBConfig{
			BaseURL: envOrDefault(envTsdBaseURL, defaultTsdBaseURL),
			APIKey:  envOrDefault(envTsdKey, envOrDefault(envTsdKeyAlt, defaultTsdKey)),
		},
	}
}
