package config

// SnapshotConfig contains snapshot persistence configuration.
type SnapshotConfig struct {
	// Path is the file the job snapshot is persisted to. The parent
	// directory is created on first save if it does not exist.
	Path string `env:"SNAPSHOT_PATH" envDefault:"data/snapshot.json"`
}
