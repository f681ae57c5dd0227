package config

const currentVersion = "1"

// DefaultConfig returns the config written on first run: every builtin
// cleaner enabled, confirmation before a run, default tick rate.
func DefaultConfig() *Config {
	return &Config{
		Version: currentVersion,
		Confirm: true,
	}
}
