package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ShowsCatalog(t *testing.T) {
	loader := createTempConfig(t)

	var err error
	output := captureStdout(t, func() {
		err = runListWithLoader(loader)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Category")
	assert.Contains(t, output, "Cleaner")
	assert.Contains(t, output, "echo-test")
	// Builtins appear alongside the custom entries.
	assert.Contains(t, output, "Trash")
}
