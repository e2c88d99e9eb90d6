package config

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

type Config struct {
	Version  int      `yaml:"version"`
	Defaults Defaults `yaml:"defaults"`
	Codes    Codes    `yaml:"codes"`
}

type Defaults struct {
	Scope     string `yaml:"scope"`
	Format    Format `yaml:"format"`
	Subsystem string `yaml:"subsystem"`
	Category  string `yaml:"category"`
}

// Codes holds display-string overrides for the sync engine's error and
// deletion-reason vocabularies. Keys are engine code identifiers,
// values are the strings rendered in log output. Entries layer over the
// compiled-in defaults, so a new engine code can be given a label here
// without a code change.
type Codes struct {
	Errors          map[string]string `yaml:"errors"`
	DeletionReasons map[string]string `yaml:"deletion_reasons"`
}

func DefaultConfig() Config {
	return Config{
		Version: 1,
		Defaults: Defaults{
			Scope:     "private",
			Format:    FormatConsole,
			Subsystem: "cloudsync",
			Category:  "sync-events",
		},
		Codes: Codes{},
	}
}
