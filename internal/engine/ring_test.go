package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingAppendBelowCapacity(t *testing.T) {
	r := NewRing(3)
	r.Append(CleanedEntry{Path: "a"})
	r.Append(CleanedEntry{Path: "b"})

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.Cap())

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Path)
	assert.Equal(t, "b", entries[1].Path)
}

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing(3)
	for _, p := range []string{"a", "b", "c", "d", "e"} {
		r.Append(CleanedEntry{Path: p})
	}

	assert.Equal(t, 3, r.Len())
	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Path)
	assert.Equal(t, "d", entries[1].Path)
	assert.Equal(t, "e", entries[2].Path)
}

func TestRingClear(t *testing.T) {
	r := NewRing(2)
	r.Append(CleanedEntry{Path: "a"})
	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Entries())

	r.Append(CleanedEntry{Path: "b"})
	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Path)
}

func TestRingMinimumCapacity(t *testing.T) {
	r := NewRing(0)
	assert.Equal(t, 1, r.Cap())

	r.Append(CleanedEntry{Path: "a"})
	r.Append(CleanedEntry{Path: "b"})
	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Path)
}

func TestRingOrderSurvivesManyWraps(t *testing.T) {
	const capacity = 7
	r := NewRing(capacity)
	total := capacity*3 + 2
	for i := 0; i < total; i++ {
		r.Append(CleanedEntry{Path: fmt.Sprintf("p%03d", i)})
	}

	entries := r.Entries()
	require.Len(t, entries, capacity)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("p%03d", total-capacity+i), e.Path)
	}
}
