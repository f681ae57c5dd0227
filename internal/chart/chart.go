// Package chart computes bar and pie geometries from per-category
// cleaning aggregates and renders them as ANSI text, adapting to the
// drawing area it is given.
package chart

import (
	"sort"
)

// Type selects the active chart. The cycle order is fixed:
// Bar → PieCount → PieSize → Bar.
type Type int

const (
	TypeBar Type = iota
	TypePieCount
	TypePieSize
)

// Next returns the following chart type in the cycle.
func (t Type) Next() Type {
	switch t {
	case TypeBar:
		return TypePieCount
	case TypePieCount:
		return TypePieSize
	default:
		return TypeBar
	}
}

func (t Type) String() string {
	switch t {
	case TypePieCount:
		return "Pie (count)"
	case TypePieSize:
		return "Pie (size)"
	}
	return "Bar"
}

// Metric selects which aggregate drives geometry.
type Metric int

const (
	MetricCount Metric = iota
	MetricSize
)

// Point is one category's aggregate: items cleaned and bytes freed.
// Points arrive in catalog order, which breaks ties everywhere below.
type Point struct {
	Name  string
	Count int
	Bytes uint64
}

func (p Point) value(m Metric) float64 {
	if m == MetricSize {
		return float64(p.Bytes)
	}
	return float64(p.Count)
}

// MinSliceShare is the angular threshold below which pie slices are
// folded into the "Other" legend bucket instead of drawn on the arc.
const MinSliceShare = 0.05

// Slice is one pie wedge with its share of the whole in [0,1].
type Slice struct {
	Name  string
	Value float64
	Share float64
	Other bool // aggregated bucket of sub-threshold slices
}

// Shares computes pie slices for the given metric: descending by share
// with catalog-order ties, slices under MinSliceShare merged into a
// trailing "Other" bucket. Returns nil when the total is zero; callers
// render a "no data" placeholder instead of dividing by zero.
func Shares(points []Point, m Metric) []Slice {
	var total float64
	for _, p := range points {
		total += p.value(m)
	}
	if total <= 0 {
		return nil
	}

	slices := make([]Slice, 0, len(points))
	for _, p := range points {
		v := p.value(m)
		if v <= 0 {
			continue
		}
		slices = append(slices, Slice{Name: p.Name, Value: v, Share: v / total})
	}

	// Stable keeps catalog order for equal shares.
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Share > slices[j].Share
	})

	var kept []Slice
	other := Slice{Name: "Other", Other: true}
	for _, s := range slices {
		if s.Share < MinSliceShare {
			other.Value += s.Value
			other.Share += s.Share
			continue
		}
		kept = append(kept, s)
	}
	if other.Value > 0 {
		kept = append(kept, other)
	}
	return kept
}

// BarHeights scales each point's metric against the maximum, producing
// heights in [0,maxHeight]. A nonzero value always gets at least one row.
func BarHeights(points []Point, m Metric, maxHeight int) []int {
	if maxHeight < 1 {
		maxHeight = 1
	}

	var max float64
	for _, p := range points {
		if v := p.value(m); v > max {
			max = v
		}
	}

	heights := make([]int, len(points))
	if max <= 0 {
		return heights
	}
	for i, p := range points {
		v := p.value(m)
		if v <= 0 {
			continue
		}
		h := int(v / max * float64(maxHeight))
		if h < 1 {
			h = 1
		}
		heights[i] = h
	}
	return heights
}
