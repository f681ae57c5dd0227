package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDir  = ".config/cleansweep"
	configFile = "config.yaml"
)

// Path returns the config file location under the user's home directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, configDir, configFile), nil
}
