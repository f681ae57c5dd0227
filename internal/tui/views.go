package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mkozlowski/cleansweep/internal/chart"
	"github.com/mkozlowski/cleansweep/internal/engine"
	"github.com/mkozlowski/cleansweep/internal/layout"
	"github.com/mkozlowski/cleansweep/pkg/size"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view.ShowHelp {
		return m.helpView()
	}
	if m.screen == screenConfirm {
		return m.confirmView()
	}

	req := layout.Request{
		Width:  m.width,
		Height: m.height,
		Mode:   m.view.Mode,
	}
	if m.screen == screenProgress {
		req.WantChart = true
		req.WantLog = true
		// Granted as-is at spacious widths; narrower breakpoints clip it
		// unless the detailed view mode insists.
		req.WantDetail = true
	}

	plan, err := layout.Compute(req)
	if err != nil {
		// A layout invariant broke; say so instead of drawing garbage.
		return errorStyle.Render(fmt.Sprintf("layout error: %v", err))
	}
	if len(plan.Regions) == 0 {
		return dimStyle.Render("terminal too small")
	}

	var left string
	if r, ok := plan.Region(layout.PanelList); ok {
		left = m.renderListPanel(r)
	}

	var rightParts []string
	for _, kind := range []layout.PanelKind{layout.PanelChart, layout.PanelLog, layout.PanelDetail, layout.PanelStats} {
		r, ok := plan.Region(kind)
		if !ok {
			continue
		}
		switch kind {
		case layout.PanelChart:
			rightParts = append(rightParts, m.renderChartPanel(r))
		case layout.PanelLog:
			rightParts = append(rightParts, m.renderLogPanel(r))
		case layout.PanelDetail:
			rightParts = append(rightParts, m.renderDetailPanel(r))
		case layout.PanelStats:
			rightParts = append(rightParts, m.renderStatsPanel(r))
		}
	}

	content := left
	if len(rightParts) > 0 {
		right := lipgloss.JoinVertical(lipgloss.Left, rightParts...)
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	if r, ok := plan.Region(layout.PanelFooter); ok {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter(r))
	}
	return content
}

// renderPanel frames lines inside the region with the shared border style.
func renderPanel(r layout.Region, title string, lines []string, active bool) string {
	innerWidth := r.Width - 2
	innerHeight := r.Height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	body := make([]string, 0, innerHeight)
	if title != "" {
		body = append(body, titleStyle.Render(truncateLine(title, innerWidth)))
	}
	for _, l := range lines {
		if len(body) >= innerHeight {
			break
		}
		body = append(body, truncateLine(l, innerWidth))
	}

	style := panelStyle
	if active {
		style = activePanelStyle
	}
	return style.Width(innerWidth).Height(innerHeight).Render(strings.Join(body, "\n"))
}

func (m Model) renderListPanel(r layout.Region) string {
	cat := m.sel.Current()
	running := m.eng.State() == engine.StateRunning

	title := "cleansweep"
	switch m.eng.State() {
	case engine.StateRunning:
		if m.eng.Run().IsPaused {
			title = "cleansweep - paused"
		} else {
			title = fmt.Sprintf("cleansweep - cleaning %s", m.spinner.View())
		}
	case engine.StateCompleted:
		title = "cleansweep - completed"
	case engine.StateCancelled:
		title = "cleansweep - cancelled"
	}

	var lines []string

	// Category tab row.
	var tabs []string
	for i, c := range m.sel.Categories {
		name := c.Name
		if i == m.sel.CategoryIndex {
			name = headerStyle.Render(" " + name + " ")
		} else {
			name = dimStyle.Render(name)
		}
		tabs = append(tabs, name)
	}
	lines = append(lines, strings.Join(tabs, " "))
	lines = append(lines, "")

	if cat != nil {
		for i, it := range cat.Items {
			if !m.view.Filter.Matches(it) {
				continue
			}
			lines = append(lines, m.renderItemRow(it, i == m.sel.Cursor))
		}
	}

	if m.eng.State() == engine.StateCompleted || m.eng.State() == engine.StateCancelled {
		lines = append(lines, "", m.summaryLine(), dimStyle.Render("esc to return"))
	} else if running {
		done := 0
		total := len(m.sel.SelectedItems())
		for _, it := range m.sel.SelectedItems() {
			if it.Done() {
				done++
			}
		}
		if total > 0 {
			lines = append(lines, "", m.progress.ViewAs(float64(done)/float64(total)))
		}
	}

	if m.notice != "" {
		lines = append(lines, "", warnStyle.Render(m.notice))
	}

	return renderPanel(r, title, lines, true)
}

func (m Model) renderItemRow(it *engine.Item, cursorHere bool) string {
	cursor := "  "
	if cursorHere {
		cursor = cursorStyle.Render("> ")
	}

	box := "[ ]"
	if it.Selected {
		box = selectedStyle.Render("[x]")
	}

	name := it.Catalog.Name
	if it.Catalog.RequiresPrivilege {
		name += " 🔒"
		if !m.privileged {
			name = disabledStyle.Render(name)
		}
	}

	status := ""
	switch it.Status {
	case engine.StatusRunning:
		status = " " + it.Status.Glyph(m.frame)
	case engine.StatusSuccess:
		status = " " + okStyle.Render("✓ "+size.FormatSize(it.BytesFreed))
	case engine.StatusFailed:
		status = " " + errorStyle.Render("✗ "+it.FailReason)
	case engine.StatusSkipped:
		status = " " + dimStyle.Render("skipped")
	case engine.StatusPending:
		status = " " + dimStyle.Render("…")
	}

	return cursor + box + " " + name + status
}

func (m Model) summaryLine() string {
	success, failed, skipped := m.eng.Summary()
	run := m.eng.Run()
	return totalStyle.Render(fmt.Sprintf("%d ok, %d failed, %d skipped, %s freed in %s",
		success, failed, skipped,
		size.FormatSize(run.TotalBytesFreed),
		m.eng.Elapsed().Round(time.Millisecond)))
}

func (m Model) renderChartPanel(r layout.Region) string {
	points := chartPoints(m.sel.Categories)
	innerWidth := r.Width - 2
	innerHeight := r.Height - 3 // border plus title row

	var body string
	switch m.view.Chart {
	case chart.TypeBar:
		body = chart.RenderBar(points, chart.MetricSize, innerWidth, innerHeight)
	case chart.TypePieCount:
		body = chart.RenderPie(chart.Shares(points, chart.MetricCount), innerWidth, innerHeight)
	case chart.TypePieSize:
		body = chart.RenderPie(chart.Shares(points, chart.MetricSize), innerWidth, innerHeight)
	}

	return renderPanel(r, m.view.Chart.String(), strings.Split(body, "\n"), false)
}

func (m Model) renderLogPanel(r layout.Region) string {
	lines := m.eng.Log()
	visible := r.Height - 3
	if visible < 1 {
		visible = 1
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	return renderPanel(r, "Log", lines, false)
}

func (m Model) renderDetailPanel(r layout.Region) string {
	entries := filterEntries(m.eng.Entries(), m.view)

	visible := r.Height - 3
	if visible < 1 {
		visible = 1
	}
	scroll := m.view.DetailScroll
	if scroll > len(entries)-visible {
		scroll = len(entries) - visible
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + visible
	if end > len(entries) {
		end = len(entries)
	}

	var lines []string
	for _, e := range entries[scroll:end] {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			e.Path, size.FormatSize(e.Size), dimStyle.Render(humanize.Time(e.Timestamp))))
	}
	if len(lines) == 0 {
		lines = []string{dimStyle.Render("no cleaned items yet")}
	}

	title := fmt.Sprintf("Cleaned (%d, sort: %s)", len(entries), m.view.Sort)
	if m.view.SearchQuery != "" {
		title += fmt.Sprintf(" /%s", m.view.SearchQuery)
	}
	return renderPanel(r, title, lines, false)
}

func (m Model) renderStatsPanel(r layout.Region) string {
	var lines []string
	if m.statsErr != nil {
		lines = append(lines, errorStyle.Render(m.statsErr.Error()))
	} else {
		lines = append(lines,
			fmt.Sprintf("Disk: %s free of %s (%.1f%% used)",
				size.FormatSize(m.stats.DiskFree), size.FormatSize(m.stats.DiskTotal), m.stats.DiskUsedPercent),
			fmt.Sprintf("Mem:  %s of %s (%.1f%% used)",
				size.FormatSize(m.stats.MemUsed), size.FormatSize(m.stats.MemTotal), m.stats.MemUsedPercent),
		)
	}
	run := m.eng.Run()
	lines = append(lines,
		fmt.Sprintf("Freed this run: %s (%s items)",
			size.FormatSize(run.TotalBytesFreed), humanize.Comma(int64(run.TotalItemsFreed))),
		fmt.Sprintf("Elapsed: %s", m.eng.Elapsed().Round(time.Millisecond)),
	)
	return renderPanel(r, "Performance", lines, false)
}

func (m Model) renderFooter(r layout.Region) string {
	if m.view.SearchActive {
		return truncateLine("search: "+m.search.View(), r.Width)
	}

	indicators := dimStyle.Render(fmt.Sprintf("[%s] view:%s sort:%s filter:%s",
		m.view.Chart, m.view.Mode, m.view.Sort, m.view.Filter))
	helpLine := m.help.View(m.keys)
	return truncateLine(indicators+"  "+helpLine, r.Width)
}

func (m Model) confirmView() string {
	items := m.sel.SelectedItems()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm cleaning") + "\n\n")
	for _, it := range items {
		line := "  • " + it.Catalog.Name
		if it.Catalog.RequiresPrivilege {
			line += warnStyle.Render(" (requires privileges)")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%d cleaner(s) selected.\n", len(items)))
	if m.sel.HasPrivilegedSelection() && !m.privileged {
		b.WriteString(warnStyle.Render("Some items need elevated privileges and may fail.") + "\n")
	}
	b.WriteString("\n" + totalStyle.Render("Proceed? (y/n)"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		panelStyle.Padding(1, 2).Render(b.String()))
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Key bindings") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("press ? or esc to close"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func truncateLine(s string, max int) string {
	if max < 1 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	// Trim rune by rune; styled sequences make byte slicing unsafe.
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > max-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
