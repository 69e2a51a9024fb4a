package domain

// Config represents the peopletable configuration loaded from peopletable.yaml
// and the environment.
type Config struct {
	Seed      SeedConfig
	Selection SelectionConfig
	Debug     bool
}

type SeedConfig struct {
	// Path to a JSON or YAML seed file. Empty means the embedded default list.
	Path string
}

type SelectionConfig struct {
	PruneOnDelete bool
}

// DefaultConfig provides sane defaults if peopletable.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Seed:      SeedConfig{Path: ""},
		Selection: SelectionConfig{PruneOnDelete: false},
	}
}

// WorkspaceSpec describes where a workspace is scaffolded.
type WorkspaceSpec struct {
	Root string
}
