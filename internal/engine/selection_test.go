package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkozlowski/cleansweep/internal/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			Name: "Caches",
			Items: []catalog.Item{
				{Name: "alpha"},
				{Name: "beta"},
				{Name: "gamma"},
			},
		},
		{
			Name: "System",
			Items: []catalog.Item{
				{Name: "journal", RequiresPrivilege: true},
				{Name: "apt", RequiresPrivilege: true},
			},
		},
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	s := NewSelection(testCatalog())

	s.MoveCursor(-1)
	assert.Equal(t, 0, s.Cursor, "no wrap at the top")

	s.MoveCursor(1)
	s.MoveCursor(1)
	assert.Equal(t, 2, s.Cursor)

	s.MoveCursor(1)
	assert.Equal(t, 2, s.Cursor, "no wrap at the bottom")

	s.MoveCursor(-10)
	assert.Equal(t, 0, s.Cursor, "large deltas clamp too")
}

func TestCategorySwitchWrapsAndResetsCursor(t *testing.T) {
	s := NewSelection(testCatalog())
	s.MoveCursor(2)

	s.NextCategory()
	assert.Equal(t, 1, s.CategoryIndex)
	assert.Equal(t, 0, s.Cursor)

	s.NextCategory()
	assert.Equal(t, 0, s.CategoryIndex, "next wraps to the first category")

	s.PrevCategory()
	assert.Equal(t, 1, s.CategoryIndex, "prev wraps to the last category")
}

func TestToggle(t *testing.T) {
	s := NewSelection(testCatalog())

	s.Toggle(false)
	assert.True(t, s.CurrentItem().Selected)

	s.Toggle(false)
	assert.False(t, s.CurrentItem().Selected)
}

func TestToggleLockedDuringRun(t *testing.T) {
	s := NewSelection(testCatalog())

	s.Toggle(true)
	assert.False(t, s.CurrentItem().Selected)
}

func TestSelectAllSkipsPrivilegedWithoutPrivilege(t *testing.T) {
	s := NewSelection(testCatalog())
	s.NextCategory() // System

	s.SelectAll(false)
	assert.Equal(t, 0, s.SelectedCount())

	s.SelectAll(true)
	assert.Equal(t, 2, s.SelectedCount())
}

func TestSelectedItemsAreInCatalogOrder(t *testing.T) {
	s := NewSelection(testCatalog())

	// Select in reverse order; execution order must not depend on it.
	s.NextCategory()
	s.SelectAll(true)
	s.PrevCategory()
	s.MoveCursor(2)
	s.Toggle(false)
	s.MoveCursor(-2)
	s.Toggle(false)

	items := s.SelectedItems()
	require.Len(t, items, 4)
	assert.Equal(t, "alpha", items[0].Catalog.Name)
	assert.Equal(t, "gamma", items[1].Catalog.Name)
	assert.Equal(t, "journal", items[2].Catalog.Name)
	assert.Equal(t, "apt", items[3].Catalog.Name)
}

func TestHasPrivilegedSelection(t *testing.T) {
	s := NewSelection(testCatalog())
	assert.False(t, s.HasPrivilegedSelection())

	s.Toggle(false)
	assert.False(t, s.HasPrivilegedSelection())

	s.NextCategory()
	s.SelectAll(true)
	assert.True(t, s.HasPrivilegedSelection())
}

func TestDeselectAllIsPerCategory(t *testing.T) {
	s := NewSelection(testCatalog())
	s.SelectAll(true)
	s.NextCategory()
	s.SelectAll(true)
	require.Equal(t, 5, s.SelectedCount())

	s.DeselectAll()
	assert.Equal(t, 3, s.SelectedCount(), "only the current category clears")
}

func TestEmptyCatalog(t *testing.T) {
	s := NewSelection(nil)

	assert.Nil(t, s.Current())
	assert.Nil(t, s.CurrentItem())
	s.MoveCursor(1)
	s.NextCategory()
	s.Toggle(false)
	s.SelectAll(true)
	assert.Equal(t, 0, s.SelectedCount())
}
