package config

// SnapshotsConfig controls the on-disk report archive used by serve mode.
// An empty Dir disables archiving.
type SnapshotsConfig struct {
	Dir           string
	RetentionDays int
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Dir:           envOrDefault(envSnapshotDir, ""),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
	}
}
