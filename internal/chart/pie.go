package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var pieRunes = []rune{'█', '▓', '▒', '░', '▄', '▀', '◆', '●'}

// RenderPie rasterizes the slices as a filled circle with a legend. The
// circle is drawn with a 2:1 aspect correction so it reads round in a
// terminal cell grid. Nil slices render the "no data" placeholder.
func RenderPie(slices []Slice, width, height int) string {
	if len(slices) == 0 {
		return noDataStyle.Render("no data")
	}

	legend := legendLines(slices)

	// Side-by-side when wide enough, otherwise legend only.
	legendWidth := 0
	for _, l := range legend {
		if n := lipgloss.Width(l); n > legendWidth {
			legendWidth = n
		}
	}

	chartWidth := width - legendWidth - 2
	if chartWidth < 10 || height < 5 {
		// Too small for an arc; show the top legend rows alone.
		max := height
		if max > len(legend) {
			max = len(legend)
		}
		return strings.Join(legend[:max], "\n")
	}

	radius := height / 2
	if w := chartWidth / 4; w < radius {
		radius = w
	}
	if radius < 2 {
		radius = 2
	}

	raster := rasterize(slices, radius)
	for len(legend) < len(raster) {
		legend = append(legend, "")
	}

	var b strings.Builder
	for i, row := range raster {
		b.WriteString(row)
		b.WriteString("  ")
		b.WriteString(legend[i])
		if i < len(raster)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// rasterize scans a cell grid and assigns each in-circle cell to the
// slice covering its angle. y is doubled in the distance term to correct
// for terminal cell aspect ratio.
func rasterize(slices []Slice, radius int) []string {
	type bound struct {
		from, to float64
		idx      int
	}
	var bounds []bound
	cum := 0.0
	for i, s := range slices {
		bounds = append(bounds, bound{from: cum, to: cum + s.Share, idx: i})
		cum += s.Share
	}

	rows := radius * 2
	cols := radius * 4
	r := float64(radius)

	var out []string
	for row := 0; row < rows; row++ {
		y := float64(row) - float64(rows)/2 + 0.5
		var line strings.Builder
		for col := 0; col < cols; col++ {
			x := (float64(col) - float64(cols)/2 + 0.5) / 2
			if math.Sqrt(x*x+y*y) > r {
				line.WriteRune(' ')
				continue
			}

			angle := math.Atan2(y, x)
			frac := angle/(2*math.Pi) + 1.0
			frac -= math.Floor(frac)

			ch := pieRunes[len(pieRunes)-1]
			style := noDataStyle
			for _, bd := range bounds {
				if frac >= bd.from && frac < bd.to || bd.to >= 1.0 && frac >= bd.from {
					ch = pieRunes[bd.idx%len(pieRunes)]
					style = palette[bd.idx%len(palette)]
					break
				}
			}
			line.WriteString(style.Render(string(ch)))
		}
		out = append(out, line.String())
	}
	return out
}

// legendLines renders one legend row per slice with its share. Shares sum
// to 100% within rounding because they are fractions of one total.
func legendLines(slices []Slice) []string {
	var out []string
	for i, s := range slices {
		glyph := palette[i%len(palette)].Render(string(pieRunes[i%len(pieRunes)]))
		out = append(out, fmt.Sprintf("%s %s (%.1f%%)", glyph, s.Name, s.Share*100))
	}
	return out
}
