package sysinfo

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivilegedMatchesEUID(t *testing.T) {
	assert.Equal(t, os.Geteuid() == 0, Privileged())
}

func TestCollect(t *testing.T) {
	stats, err := Collect()
	if err != nil {
		t.Skipf("host stats unavailable: %v", err)
	}

	require.Greater(t, stats.DiskTotal, uint64(0))
	assert.LessOrEqual(t, stats.DiskFree, stats.DiskTotal)
	assert.GreaterOrEqual(t, stats.DiskUsedPercent, 0.0)
	assert.LessOrEqual(t, stats.DiskUsedPercent, 100.0)

	require.Greater(t, stats.MemTotal, uint64(0))
	assert.LessOrEqual(t, stats.MemUsed, stats.MemTotal)
}
