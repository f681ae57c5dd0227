package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCycle(t *testing.T) {
	assert.Equal(t, TypePieCount, TypeBar.Next())
	assert.Equal(t, TypePieSize, TypePieCount.Next())
	assert.Equal(t, TypeBar, TypePieSize.Next())
}

func TestSharesEmptyAndZero(t *testing.T) {
	assert.Nil(t, Shares(nil, MetricCount))
	assert.Nil(t, Shares([]Point{{Name: "a"}, {Name: "b"}}, MetricSize))
}

func TestSharesSortedDescending(t *testing.T) {
	points := []Point{
		{Name: "small", Count: 1},
		{Name: "big", Count: 6},
		{Name: "mid", Count: 3},
	}

	slices := Shares(points, MetricCount)
	require.Len(t, slices, 3)
	assert.Equal(t, "big", slices[0].Name)
	assert.Equal(t, "mid", slices[1].Name)
	assert.Equal(t, "small", slices[2].Name)

	var total float64
	for _, s := range slices {
		total += s.Share
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestSharesEqualValuesKeepInputOrder(t *testing.T) {
	points := []Point{
		{Name: "first", Count: 2},
		{Name: "second", Count: 2},
	}

	slices := Shares(points, MetricCount)
	require.Len(t, slices, 2)
	assert.Equal(t, "first", slices[0].Name)
	assert.Equal(t, "second", slices[1].Name)
}

func TestSharesFoldSmallSlicesIntoOther(t *testing.T) {
	points := []Point{
		{Name: "dominant", Bytes: 960},
		{Name: "tiny1", Bytes: 20},
		{Name: "tiny2", Bytes: 20},
	}

	slices := Shares(points, MetricSize)
	require.Len(t, slices, 2)
	assert.Equal(t, "dominant", slices[0].Name)

	other := slices[1]
	assert.True(t, other.Other)
	assert.Equal(t, "Other", other.Name)
	assert.InDelta(t, 0.04, other.Share, 1e-9)
}

func TestSharesMetricSelectsAggregate(t *testing.T) {
	points := []Point{
		{Name: "many-small", Count: 10, Bytes: 10},
		{Name: "few-large", Count: 1, Bytes: 1000},
	}

	byCount := Shares(points, MetricCount)
	assert.Equal(t, "many-small", byCount[0].Name)

	bySize := Shares(points, MetricSize)
	assert.Equal(t, "few-large", bySize[0].Name)
}

func TestBarHeights(t *testing.T) {
	points := []Point{
		{Name: "max", Count: 100},
		{Name: "half", Count: 50},
		{Name: "sliver", Count: 1},
		{Name: "zero", Count: 0},
	}

	heights := BarHeights(points, MetricCount, 10)
	require.Len(t, heights, 4)
	assert.Equal(t, 10, heights[0])
	assert.Equal(t, 5, heights[1])
	assert.Equal(t, 1, heights[2], "nonzero values get at least one row")
	assert.Equal(t, 0, heights[3])
}

func TestBarHeightsAllZero(t *testing.T) {
	heights := BarHeights([]Point{{Name: "a"}, {Name: "b"}}, MetricSize, 10)
	assert.Equal(t, []int{0, 0}, heights)
}

func TestRenderBarPlaceholderOnNoData(t *testing.T) {
	out := RenderBar(nil, MetricCount, 40, 10)
	assert.Contains(t, out, "no data")
}

func TestRenderBarShowsLabels(t *testing.T) {
	points := []Point{
		{Name: "Caches", Count: 4, Bytes: 1024},
		{Name: "Logs", Count: 2, Bytes: 512},
	}

	out := RenderBar(points, MetricSize, 60, 12)
	assert.Contains(t, out, "Caches")
	assert.Contains(t, out, "Logs")
}

func TestRenderBarTooSmallIsEmpty(t *testing.T) {
	points := []Point{{Name: "a", Count: 1}}
	assert.Empty(t, RenderBar(points, MetricCount, 3, 10))
	assert.Empty(t, RenderBar(points, MetricCount, 40, 2))
}

func TestRenderPiePlaceholderOnNoData(t *testing.T) {
	out := RenderPie(nil, 40, 15)
	assert.Contains(t, out, "no data")
}

func TestRenderPieLegendPercentages(t *testing.T) {
	slices := Shares([]Point{
		{Name: "Caches", Bytes: 750},
		{Name: "Logs", Bytes: 250},
	}, MetricSize)

	out := RenderPie(slices, 60, 15)
	assert.Contains(t, out, "Caches")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "Logs")
	assert.Contains(t, out, "25.0%")
}

func TestRenderPieNarrowFallsBackToLegend(t *testing.T) {
	slices := Shares([]Point{
		{Name: "Caches", Count: 3},
		{Name: "Logs", Count: 1},
	}, MetricCount)

	out := RenderPie(slices, 18, 4)
	assert.Contains(t, out, "Caches")
	// Narrow output never exceeds the given height.
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 4)
}

func TestRenderPieFitsArea(t *testing.T) {
	slices := Shares([]Point{
		{Name: "a", Count: 5},
		{Name: "b", Count: 3},
		{Name: "c", Count: 2},
	}, MetricCount)

	out := RenderPie(slices, 60, 16)
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 16)
}
