package config

// YAMLConfig mirrors peopletable.yaml. Pointer fields distinguish "unset"
// from zero values so defaults survive partial files.
type YAMLConfig struct {
	PeopleTable struct {
		Seed string `yaml:"seed"`

		Selection struct {
			PruneOnDelete *bool `yaml:"prune_on_delete"`
		} `yaml:"selection"`

		Debug *bool `yaml:"debug"`
	} `yaml:"peopletable"`
}

// envOverrides are read from the process environment after the file.
type envOverrides struct {
	Seed          *string `env:"PEOPLETABLE_SEED"`
	PruneOnDelete *bool   `env:"PEOPLETABLE_PRUNE_ON_DELETE"`
	Debug         *bool   `env:"PEOPLETABLE_DEBUG"`
}
