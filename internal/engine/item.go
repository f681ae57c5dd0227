package engine

import (
	"time"

	"github.com/mkozlowski/cleansweep/internal/catalog"
)

// Status tracks one item's progress through a run. Transitions only move
// forward (Pending → Running → Success/Failed); a fresh run resets selected
// items back to Pending.
type Status int

const (
	StatusNone Status = iota // not part of the current run
	StatusPending
	StatusRunning
	StatusSuccess
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	}
	return "idle"
}

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Glyph returns the status indicator drawn in the item list. Running items
// animate through spinner frames.
func (s Status) Glyph(frame int) string {
	switch s {
	case StatusRunning:
		return spinnerFrames[frame%len(spinnerFrames)]
	case StatusSuccess:
		return "✓"
	case StatusFailed:
		return "✗"
	case StatusSkipped:
		return "⊘"
	case StatusPending:
		return "•"
	}
	return " "
}

// Item wraps a catalog item with the mutable per-run state. Owned by the
// Selection model; mutated by the Engine during a run and by user input
// (toggle) outside one.
type Item struct {
	Catalog    catalog.Item
	Category   string
	Selected   bool
	Status     Status
	FailReason string
	BytesFreed uint64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Done reports whether the item reached a terminal status.
func (it *Item) Done() bool {
	return it.Status == StatusSuccess || it.Status == StatusFailed || it.Status == StatusSkipped
}

// Category is a named ordered sequence of selectable items.
type Category struct {
	Name  string
	Items []*Item
}

// CleanedEntry is one audit record of a deleted file or directory.
type CleanedEntry struct {
	Path      string
	Size      uint64
	Category  string
	Cleaner   string
	Kind      catalog.Kind
	Timestamp time.Time
}
