package engine

import (
	"github.com/mkozlowski/cleansweep/internal/catalog"
)

// Selection holds the categories, the navigation cursor and per-item
// selection state. Exactly one category is current at any time; the cursor
// clamps at list ends rather than wrapping, so repeated presses at an edge
// are predictable. Category switches happen only via Next/PrevCategory.
type Selection struct {
	Categories    []*Category
	CategoryIndex int
	Cursor        int
}

// NewSelection builds the selection model from a catalog.
func NewSelection(cat catalog.Catalog) *Selection {
	s := &Selection{}
	for _, category := range cat {
		c := &Category{Name: category.Name}
		for _, item := range category.Items {
			c.Items = append(c.Items, &Item{
				Catalog:  item,
				Category: category.Name,
			})
		}
		s.Categories = append(s.Categories, c)
	}
	return s
}

// Current returns the current category, nil when the catalog is empty.
func (s *Selection) Current() *Category {
	if len(s.Categories) == 0 {
		return nil
	}
	return s.Categories[s.CategoryIndex]
}

// CurrentItem returns the item under the cursor, nil when none.
func (s *Selection) CurrentItem() *Item {
	c := s.Current()
	if c == nil || s.Cursor >= len(c.Items) {
		return nil
	}
	return c.Items[s.Cursor]
}

// MoveCursor moves the cursor by delta rows, clamped to list bounds.
func (s *Selection) MoveCursor(delta int) {
	c := s.Current()
	if c == nil {
		return
	}
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if max := len(c.Items) - 1; s.Cursor > max {
		s.Cursor = max
	}
}

// NextCategory switches to the following category, wrapping at the end,
// and resets the cursor.
func (s *Selection) NextCategory() {
	if len(s.Categories) == 0 {
		return
	}
	s.CategoryIndex = (s.CategoryIndex + 1) % len(s.Categories)
	s.Cursor = 0
}

// PrevCategory switches to the preceding category, wrapping at the start,
// and resets the cursor.
func (s *Selection) PrevCategory() {
	if len(s.Categories) == 0 {
		return
	}
	s.CategoryIndex = (s.CategoryIndex - 1 + len(s.Categories)) % len(s.Categories)
	s.Cursor = 0
}

// Toggle flips the selected flag of the item under the cursor. No-op while
// a run is in progress: selection is locked during execution.
func (s *Selection) Toggle(locked bool) {
	if locked {
		return
	}
	if it := s.CurrentItem(); it != nil {
		it.Selected = !it.Selected
	}
}

// SelectAll selects every item in the current category. Items requiring
// privileges the process lacks are skipped; the renderer shows them
// disabled instead of silently dropping them.
func (s *Selection) SelectAll(privileged bool) {
	c := s.Current()
	if c == nil {
		return
	}
	for _, it := range c.Items {
		if it.Catalog.RequiresPrivilege && !privileged {
			continue
		}
		it.Selected = true
	}
}

// DeselectAll clears selection in the current category.
func (s *Selection) DeselectAll() {
	c := s.Current()
	if c == nil {
		return
	}
	for _, it := range c.Items {
		it.Selected = false
	}
}

// SelectedItems returns all selected items across categories in catalog
// order. This is the execution order for a run.
func (s *Selection) SelectedItems() []*Item {
	var items []*Item
	for _, c := range s.Categories {
		for _, it := range c.Items {
			if it.Selected {
				items = append(items, it)
			}
		}
	}
	return items
}

// SelectedCount returns the number of selected items across categories.
func (s *Selection) SelectedCount() int {
	return len(s.SelectedItems())
}

// HasPrivilegedSelection reports whether any selected item requires
// elevated privileges.
func (s *Selection) HasPrivilegedSelection() bool {
	for _, it := range s.SelectedItems() {
		if it.Catalog.RequiresPrivilege {
			return true
		}
	}
	return false
}

// AllItems returns every item across categories in catalog order.
func (s *Selection) AllItems() []*Item {
	var items []*Item
	for _, c := range s.Categories {
		items = append(items, c.Items...)
	}
	return items
}
