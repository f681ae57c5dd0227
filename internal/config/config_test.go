package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequiresVersion(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestValidateTick(t *testing.T) {
	cfg := &Config{Version: "1", Tick: "100ms"}
	assert.NoError(t, cfg.Validate())

	cfg.Tick = "sometimes"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tick")
}

func TestValidateCustomCleaners(t *testing.T) {
	cfg := &Config{
		Version: "1",
		Custom: map[string]Cleaner{
			"no-cmd": {Category: "Extra"},
		},
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "clean_cmd")

	cfg.Custom = map[string]Cleaner{
		"no-category": {CleanCmd: "true"},
	}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "category")

	cfg.Custom = map[string]Cleaner{
		"ok": {Category: "Extra", CleanCmd: "true"},
	}
	assert.NoError(t, cfg.Validate())
}

func TestIsDisabled(t *testing.T) {
	cfg := &Config{Version: "1", Disabled: []string{"trash", "journal"}}

	assert.True(t, cfg.IsDisabled("trash"))
	assert.False(t, cfg.IsDisabled("thumbnails"))
}

func TestCustomNamesSorted(t *testing.T) {
	cfg := &Config{
		Version: "1",
		Custom: map[string]Cleaner{
			"zeta":  {Category: "X", CleanCmd: "true"},
			"alpha": {Category: "X", CleanCmd: "true"},
			"mid":   {Category: "X", CleanCmd: "true"},
		},
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.CustomNames())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Confirm)
	assert.Empty(t, cfg.Disabled)
}
