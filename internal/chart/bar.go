package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkozlowski/cleansweep/pkg/size"
)

var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

var noDataStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// RenderBar draws one vertical bar per category, height proportional to
// the metric against the category maximum. Empty input renders a
// placeholder instead of an empty frame.
func RenderBar(points []Point, m Metric, width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}

	var total float64
	for _, p := range points {
		total += p.value(m)
	}
	if total <= 0 {
		return noDataStyle.Render("no data")
	}

	rows := height - 2 // label + value line
	if rows < 1 {
		rows = 1
	}

	colWidth := width / len(points)
	if colWidth < 3 {
		colWidth = 3
	}
	barWidth := colWidth - 1

	heights := BarHeights(points, m, rows)

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		for i := range points {
			cell := strings.Repeat(" ", barWidth)
			if heights[i] >= row {
				cell = palette[i%len(palette)].Render(strings.Repeat("█", barWidth))
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	for _, p := range points {
		b.WriteString(pad(truncate(p.Name, barWidth), barWidth))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, p := range points {
		var label string
		if m == MetricSize {
			label = size.FormatSize(p.Bytes)
		} else {
			label = fmt.Sprintf("%d", p.Count)
		}
		b.WriteString(pad(truncate(label, barWidth), barWidth))
		b.WriteString(" ")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return string(r[:1])
	}
	return string(r[:max-1]) + "…"
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
