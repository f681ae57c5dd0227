package tui

import (
	"sort"
	"strings"

	"github.com/mkozlowski/cleansweep/internal/chart"
	"github.com/mkozlowski/cleansweep/internal/engine"
	"github.com/mkozlowski/cleansweep/internal/layout"
)

// SortMode orders the cleaned-entries audit list.
type SortMode int

const (
	SortName SortMode = iota
	SortSize
	SortRecent
	SortCategory
)

func (s SortMode) Cycle() SortMode {
	return (s + 1) % 4
}

func (s SortMode) String() string {
	switch s {
	case SortSize:
		return "size"
	case SortRecent:
		return "recent"
	case SortCategory:
		return "category"
	}
	return "name"
}

// FilterMode restricts which item rows the selection list shows.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterSelected
	FilterCompleted
	FilterErrors
	FilterUserOnly
	FilterSystemOnly
)

func (f FilterMode) Cycle() FilterMode {
	return (f + 1) % 6
}

func (f FilterMode) String() string {
	switch f {
	case FilterSelected:
		return "selected"
	case FilterCompleted:
		return "completed"
	case FilterErrors:
		return "errors"
	case FilterUserOnly:
		return "user"
	case FilterSystemOnly:
		return "system"
	}
	return "all"
}

// Matches applies the filter to one item.
func (f FilterMode) Matches(it *engine.Item) bool {
	switch f {
	case FilterSelected:
		return it.Selected
	case FilterCompleted:
		return it.Status == engine.StatusSuccess
	case FilterErrors:
		return it.Status == engine.StatusFailed
	case FilterUserOnly:
		return !it.Catalog.RequiresPrivilege
	case FilterSystemOnly:
		return it.Catalog.RequiresPrivilege
	}
	return true
}

// ViewState is process-wide UI state, mutated only by input handling.
type ViewState struct {
	Chart        chart.Type
	Mode         layout.Mode
	Sort         SortMode
	Filter       FilterMode
	DetailScroll int
	SearchQuery  string
	SearchActive bool
	ShowHelp     bool
}

// filterEntries applies search, sort mode and the current sort to the
// audit records. Search matches path, category and cleaner name.
func filterEntries(entries []engine.CleanedEntry, view ViewState) []engine.CleanedEntry {
	out := make([]engine.CleanedEntry, 0, len(entries))
	query := strings.ToLower(view.SearchQuery)
	for _, e := range entries {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Path), query) &&
			!strings.Contains(strings.ToLower(e.Category), query) &&
			!strings.Contains(strings.ToLower(e.Cleaner), query) {
			continue
		}
		out = append(out, e)
	}

	switch view.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	case SortSize:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Size > out[j].Size })
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	}
	return out
}

// chartPoints aggregates successful items per category, in catalog order.
func chartPoints(categories []*engine.Category) []chart.Point {
	var points []chart.Point
	for _, c := range categories {
		p := chart.Point{Name: c.Name}
		for _, it := range c.Items {
			if it.Status != engine.StatusSuccess {
				continue
			}
			p.Count++
			p.Bytes += it.BytesFreed
		}
		if p.Count > 0 {
			points = append(points, p)
		}
	}
	return points
}
