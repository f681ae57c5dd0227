package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		width int
		want  Breakpoint
	}{
		{10, BreakMinimal},
		{59, BreakMinimal},
		{60, BreakCompact},
		{79, BreakCompact},
		{80, BreakBalanced},
		{119, BreakBalanced},
		{120, BreakSpacious},
		{300, BreakSpacious},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BreakpointFor(tt.width), "width %d", tt.width)
	}
}

func TestModeCycle(t *testing.T) {
	assert.Equal(t, ModeCompact, ModeStandard.Cycle())
	assert.Equal(t, ModeDetailed, ModeCompact.Cycle())
	assert.Equal(t, ModePerformance, ModeDetailed.Cycle())
	assert.Equal(t, ModeStandard, ModePerformance.Cycle())
}

func TestComputeDegenerateArea(t *testing.T) {
	plan, err := Compute(Request{Width: 0, Height: 10})
	require.NoError(t, err)
	assert.Empty(t, plan.Regions)

	plan, err = Compute(Request{Width: 80, Height: 0})
	require.NoError(t, err)
	assert.Empty(t, plan.Regions)
}

func TestComputeListAlwaysPresent(t *testing.T) {
	for _, mode := range []Mode{ModeStandard, ModeCompact, ModeDetailed, ModePerformance} {
		plan, err := Compute(Request{Width: 100, Height: 30, Mode: mode, WantChart: true, WantLog: true})
		require.NoError(t, err)
		assert.True(t, plan.Has(PanelList), "mode %s", mode)
	}
}

func TestNarrowTerminalIsSingleColumn(t *testing.T) {
	plan, err := Compute(Request{Width: 50, Height: 30, WantChart: true, WantLog: true})
	require.NoError(t, err)

	assert.True(t, plan.Has(PanelList))
	assert.False(t, plan.Has(PanelChart), "minimal breakpoint drops the chart")
	assert.False(t, plan.Has(PanelLog))

	list, _ := plan.Region(PanelList)
	assert.Equal(t, 50, list.Width, "list spans the full width")
}

func TestShortTerminalForcesCompact(t *testing.T) {
	plan, err := Compute(Request{Width: 120, Height: 20, WantChart: true, WantLog: true})
	require.NoError(t, err)

	assert.True(t, plan.Has(PanelList))
	assert.False(t, plan.Has(PanelChart), "heights under CompactHeight drop optional panels")
}

func TestBalancedLayoutHasChartAndLog(t *testing.T) {
	plan, err := Compute(Request{Width: 100, Height: 30, WantChart: true, WantLog: true})
	require.NoError(t, err)

	assert.True(t, plan.Has(PanelChart))
	assert.True(t, plan.Has(PanelLog))

	chart, _ := plan.Region(PanelChart)
	log, _ := plan.Region(PanelLog)
	assert.GreaterOrEqual(t, chart.Height, minPanelRows)
	assert.GreaterOrEqual(t, log.Height, minPanelRows)

	list, _ := plan.Region(PanelList)
	assert.Equal(t, list.Width, chart.X, "right column starts where the list ends")
}

func TestPerformanceModeAddsStatsPanel(t *testing.T) {
	plan, err := Compute(Request{Width: 140, Height: 40, Mode: ModePerformance, WantChart: true})
	require.NoError(t, err)
	assert.True(t, plan.Has(PanelStats))
}

func TestDetailedModeAddsDetailPanel(t *testing.T) {
	plan, err := Compute(Request{Width: 140, Height: 40, Mode: ModeDetailed, WantChart: true})
	require.NoError(t, err)
	assert.True(t, plan.Has(PanelDetail))
}

func TestFooterOmittedOnTinyHeights(t *testing.T) {
	plan, err := Compute(Request{Width: 80, Height: 3})
	require.NoError(t, err)
	assert.False(t, plan.Has(PanelFooter))
	assert.True(t, plan.Has(PanelList))
}

// TestComputeNeverOverlaps sweeps the supported terminal range across all
// modes and panel requests: every plan must validate, and validation covers
// bounds and pairwise disjointness.
func TestComputeNeverOverlaps(t *testing.T) {
	modes := []Mode{ModeStandard, ModeCompact, ModeDetailed, ModePerformance}
	requests := []struct{ chart, log, detail bool }{
		{false, false, false},
		{true, false, false},
		{true, true, false},
		{true, true, true},
	}

	for _, mode := range modes {
		for _, req := range requests {
			name := fmt.Sprintf("mode=%s chart=%v log=%v detail=%v", mode, req.chart, req.log, req.detail)
			t.Run(name, func(t *testing.T) {
				for width := 10; width <= 300; width++ {
					for height := 5; height <= 100; height++ {
						plan, err := Compute(Request{
							Width: width, Height: height, Mode: mode,
							WantChart: req.chart, WantLog: req.log, WantDetail: req.detail,
						})
						if err != nil {
							t.Fatalf("%dx%d: %v", width, height, err)
						}
						if len(plan.Regions) == 0 {
							t.Fatalf("%dx%d: no regions", width, height)
						}
						if !plan.Has(PanelList) {
							t.Fatalf("%dx%d: missing list panel", width, height)
						}
					}
				}
			})
		}
	}
}
