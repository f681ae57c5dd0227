// Package layout maps terminal dimensions and view mode to a set of
// non-overlapping panel regions. It is a pure function of its inputs so
// every (width, height) pair can be tested without a terminal.
package layout

import (
	"errors"
	"fmt"
)

// PanelKind identifies one drawable region.
type PanelKind int

const (
	PanelList PanelKind = iota
	PanelChart
	PanelLog
	PanelDetail
	PanelStats
	PanelFooter
)

func (k PanelKind) String() string {
	switch k {
	case PanelList:
		return "list"
	case PanelChart:
		return "chart"
	case PanelLog:
		return "log"
	case PanelDetail:
		return "detail"
	case PanelStats:
		return "stats"
	case PanelFooter:
		return "footer"
	}
	return "unknown"
}

// Mode selects which optional panels are requested before breakpoint
// clipping is applied. Independent of width breakpoints.
type Mode int

const (
	ModeStandard Mode = iota
	ModeCompact
	ModeDetailed
	ModePerformance
)

// Cycle returns the next view mode.
func (m Mode) Cycle() Mode {
	switch m {
	case ModeStandard:
		return ModeCompact
	case ModeCompact:
		return ModeDetailed
	case ModeDetailed:
		return ModePerformance
	default:
		return ModeStandard
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCompact:
		return "compact"
	case ModeDetailed:
		return "detailed"
	case ModePerformance:
		return "performance"
	}
	return "standard"
}

// Breakpoint is the width class driving panel arrangement.
type Breakpoint int

const (
	BreakMinimal  Breakpoint = iota // < 60 cols: single column, no chart
	BreakCompact                    // 60–79: chart at reduced size
	BreakBalanced                   // 80–119: full chart
	BreakSpacious                   // >= 120: maximum panel count
)

// BreakpointFor classifies a terminal width.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < 60:
		return BreakMinimal
	case width < 80:
		return BreakCompact
	case width < 120:
		return BreakBalanced
	}
	return BreakSpacious
}

// CompactHeight is the row count under which compact mode engages
// regardless of width.
const CompactHeight = 25

// Region is one rectangular panel area.
type Region struct {
	Kind   PanelKind
	X      int
	Y      int
	Width  int
	Height int
}

func (r Region) right() int  { return r.X + r.Width }
func (r Region) bottom() int { return r.Y + r.Height }

func (r Region) overlaps(o Region) bool {
	return r.X < o.right() && o.X < r.right() && r.Y < o.bottom() && o.Y < r.bottom()
}

// Request captures everything layout depends on.
type Request struct {
	Width  int
	Height int
	Mode   Mode

	// Panels the active screen asks for; clipped by mode and breakpoint.
	WantChart  bool
	WantLog    bool
	WantDetail bool
}

// Plan is the computed arrangement. Regions never overlap and always fit
// inside the requested area; panels that would get zero or negative size
// are omitted entirely.
type Plan struct {
	Regions []Region
}

// Region returns the region for a panel kind, if present.
func (p Plan) Region(k PanelKind) (Region, bool) {
	for _, r := range p.Regions {
		if r.Kind == k {
			return r, true
		}
	}
	return Region{}, false
}

// Has reports whether the plan includes a panel.
func (p Plan) Has(k PanelKind) bool {
	_, ok := p.Region(k)
	return ok
}

// ErrOverflow reports a computed region that does not fit the available
// area. This is an internal invariant violation, not a runtime condition.
var ErrOverflow = errors.New("layout overflow")

const (
	minPanelRows = 3
	footerRows   = 1
)

// Compute arranges panels for the given request. The selection list is
// always present; optional panels are granted in the order chart, log,
// detail and dropped when the area cannot fit them.
func Compute(req Request) (Plan, error) {
	width, height := req.Width, req.Height
	if width < 1 || height < 1 {
		return Plan{}, nil
	}

	bp := BreakpointFor(width)
	compact := req.Mode == ModeCompact || height < CompactHeight

	wantChart := req.WantChart
	wantLog := req.WantLog
	wantDetail := req.WantDetail
	wantStats := req.Mode == ModePerformance
	if req.Mode == ModeDetailed {
		wantDetail = true
	}
	if compact {
		wantChart, wantLog, wantDetail, wantStats = false, false, false, false
	}

	// Breakpoint clipping: narrower classes drop optional panels.
	switch bp {
	case BreakMinimal:
		wantChart, wantLog, wantDetail, wantStats = false, false, false, false
	case BreakCompact:
		wantLog, wantDetail, wantStats = false, false, false
	case BreakBalanced:
		wantDetail = wantDetail && req.Mode == ModeDetailed
	}

	var plan Plan

	contentHeight := height
	if height > minPanelRows {
		plan.Regions = append(plan.Regions, Region{
			Kind: PanelFooter, X: 0, Y: height - footerRows,
			Width: width, Height: footerRows,
		})
		contentHeight = height - footerRows
	}

	optional := countTrue(wantChart, wantLog, wantDetail, wantStats)
	if optional == 0 {
		plan.Regions = append(plan.Regions, Region{
			Kind: PanelList, X: 0, Y: 0, Width: width, Height: contentHeight,
		})
		return plan, validate(plan, width, height)
	}

	// Two columns: list on the left, optional panels stacked on the right.
	listWidth := width * 2 / 5
	if bp == BreakCompact {
		listWidth = width / 2
	}
	if listWidth < 20 {
		listWidth = 20
	}
	rightWidth := width - listWidth
	if rightWidth < 20 {
		// Not enough room for a second column after all.
		plan.Regions = append(plan.Regions, Region{
			Kind: PanelList, X: 0, Y: 0, Width: width, Height: contentHeight,
		})
		return plan, validate(plan, width, height)
	}

	plan.Regions = append(plan.Regions, Region{
		Kind: PanelList, X: 0, Y: 0, Width: listWidth, Height: contentHeight,
	})

	stack := make([]PanelKind, 0, 4)
	if wantChart {
		stack = append(stack, PanelChart)
	}
	if wantLog {
		stack = append(stack, PanelLog)
	}
	if wantDetail {
		stack = append(stack, PanelDetail)
	}
	if wantStats {
		stack = append(stack, PanelStats)
	}

	y := 0
	remaining := contentHeight
	for i, kind := range stack {
		panels := len(stack) - i
		rows := remaining / panels
		if kind == PanelChart && panels > 1 {
			// The chart gets the largest cut; reduced at the compact
			// breakpoint.
			rows = remaining / 2
			if bp == BreakCompact {
				rows = remaining / 3
			}
		}
		if rows < minPanelRows {
			continue // omitted rather than drawn empty
		}
		plan.Regions = append(plan.Regions, Region{
			Kind: kind, X: listWidth, Y: y, Width: rightWidth, Height: rows,
		})
		y += rows
		remaining -= rows
	}

	return plan, validate(plan, width, height)
}

// validate enforces the plan invariants: regions inside bounds, pairwise
// disjoint. Violations are defects and surface as ErrOverflow.
func validate(plan Plan, width, height int) error {
	for i, r := range plan.Regions {
		if r.Width < 1 || r.Height < 1 {
			return fmt.Errorf("%w: %s has empty area", ErrOverflow, r.Kind)
		}
		if r.X < 0 || r.Y < 0 || r.right() > width || r.bottom() > height {
			return fmt.Errorf("%w: %s exceeds %dx%d", ErrOverflow, r.Kind, width, height)
		}
		for _, o := range plan.Regions[i+1:] {
			if r.overlaps(o) {
				return fmt.Errorf("%w: %s overlaps %s", ErrOverflow, r.Kind, o.Kind)
			}
		}
	}
	return nil
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
