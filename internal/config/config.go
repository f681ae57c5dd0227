package config

import (
	"fmt"
	"sort"
)

// Config controls which cleaners are offered and how the TUI behaves.
type Config struct {
	Version  string             `mapstructure:"version" yaml:"version"`
	Disabled []string           `mapstructure:"disabled" yaml:"disabled,omitempty"`
	Custom   map[string]Cleaner `mapstructure:"custom" yaml:"custom,omitempty"`
	Tick     string             `mapstructure:"tick" yaml:"tick,omitempty"`
	Confirm  bool               `mapstructure:"confirm" yaml:"confirm"`
}

// Cleaner defines a user-supplied command cleaner.
type Cleaner struct {
	Category    string   `mapstructure:"category" yaml:"category"`
	Description string   `mapstructure:"description" yaml:"description,omitempty"`
	CleanCmd    string   `mapstructure:"clean_cmd" yaml:"clean_cmd"`
	Paths       []string `mapstructure:"paths" yaml:"paths,omitempty"`
	Privileged  bool     `mapstructure:"privileged" yaml:"privileged,omitempty"`
}

func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}

	if c.Tick != "" {
		if _, err := ParseDuration(c.Tick); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
	}

	for name, cl := range c.Custom {
		if cl.CleanCmd == "" {
			return fmt.Errorf("custom cleaner %q: clean_cmd is required", name)
		}
		if cl.Category == "" {
			return fmt.Errorf("custom cleaner %q: category is required", name)
		}
	}

	return nil
}

// IsDisabled reports whether the named builtin cleaner is switched off.
func (c *Config) IsDisabled(name string) bool {
	for _, d := range c.Disabled {
		if d == name {
			return true
		}
	}
	return false
}

// CustomNames returns custom cleaner names in stable order.
func (c *Config) CustomNames() []string {
	names := make([]string, 0, len(c.Custom))
	for name := range c.Custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
