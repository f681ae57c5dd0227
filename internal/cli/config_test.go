package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkozlowski/cleansweep/internal/config"
)

func TestConfigShow(t *testing.T) {
	loader := createTempConfig(t)

	var err error
	output := captureStdout(t, func() {
		err = runConfigShowWithLoader(loader)
	})
	require.NoError(t, err)

	assert.Contains(t, output, `version: "1"`)
	assert.Contains(t, output, "echo-test")

	// The shown path is the loader's, not the process default.
	cfgPath, err := loader.ConfigPath()
	require.NoError(t, err)
	assert.Contains(t, output, cfgPath)

	// Catalog summary reflects the applied config.
	assert.Contains(t, output, "cleaners enabled")
	assert.Contains(t, output, "2 custom")
}

func TestConfigInit_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	loader := config.NewLoader()
	loader.SetConfigPath(cfgPath)

	var err error
	output := captureStdout(t, func() {
		err = runConfigInitWithLoader(loader)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Created")
	assert.Contains(t, output, "'disabled'")
	assert.Contains(t, output, "'custom'")
	_, statErr := os.Stat(cfgPath)
	assert.NoError(t, statErr)
}

func TestConfigInit_AlreadyExists(t *testing.T) {
	loader := createTempConfig(t)

	var err error
	output := captureStdout(t, func() {
		err = runConfigInitWithLoader(loader)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "already exists")
}

func TestConfigEdit_UsesEditor(t *testing.T) {
	loader := createTempConfig(t)

	// "true" exits zero without touching the file.
	err := runConfigEditWithLoader(loader, "true")
	assert.NoError(t, err)
}
