package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkozlowski/cleansweep/internal/catalog"
	"github.com/mkozlowski/cleansweep/internal/config"
	"github.com/mkozlowski/cleansweep/internal/engine"
	"github.com/mkozlowski/cleansweep/internal/sysinfo"
)

type screen int

const (
	screenSelect screen = iota
	screenConfirm
	// screenProgress covers both a live run and the retained results
	// screen; completion is a state, not a transient event, and the user
	// leaves it only with an explicit dismiss.
	screenProgress
)

type (
	tickMsg time.Time

	itemDoneMsg struct {
		item   *engine.Item
		result catalog.Result
		err    error
	}

	statsMsg struct {
		stats sysinfo.Stats
		err   error
	}
)

// Model is the single-threaded UI state machine. All mutation happens in
// Update; View derives a frame from the current state without mutating it.
type Model struct {
	cfg  *config.Config
	sel  *engine.Selection
	eng  *engine.Engine
	view ViewState

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	progress progress.Model
	search   textinput.Model

	stats    sysinfo.Stats
	statsErr error

	screen     screen
	width      int
	height     int
	frame      int
	tick       time.Duration
	privileged bool
	notice     string
	quitting   bool
}

// New builds the model from a catalog and config.
func New(cat catalog.Catalog, cfg *config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	prog := progress.New(progress.WithDefaultGradient())

	search := textinput.New()
	search.Placeholder = "search cleaned items"
	search.CharLimit = 64

	tick := config.DefaultTick
	if cfg != nil && cfg.Tick != "" {
		if d, err := config.ParseDuration(cfg.Tick); err == nil {
			tick = d
		}
	}

	return Model{
		cfg:        cfg,
		sel:        engine.NewSelection(cat),
		eng:        engine.New(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		progress:   prog,
		search:     search,
		screen:     screenSelect,
		width:      80,
		height:     24,
		tick:       tick,
		privileged: sysinfo.Privileged(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.spinner.Tick, collectStatsCmd)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func collectStatsCmd() tea.Msg {
	stats, err := sysinfo.Collect()
	return statsMsg{stats: stats, err: err}
}

// runItemCmd executes one catalog action. The action blocks inside the
// command; its completion is observed only from Update, which keeps all
// engine mutation on the render loop.
func (m Model) runItemCmd(it *engine.Item) tea.Cmd {
	return func() tea.Msg {
		result, err := it.Catalog.Action(context.Background())
		return itemDoneMsg{item: it, result: result, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Resize forces an immediate layout recompute; the next View call
		// sees the new dimensions without waiting for a tick boundary.
		m.width = msg.Width
		m.height = msg.Height
		progressWidth := msg.Width - 10
		if progressWidth < 1 {
			progressWidth = 1
		}
		m.progress.Width = progressWidth
		return m, nil

	case tickMsg:
		m.frame++
		var cmd tea.Cmd
		if it := m.eng.Next(); it != nil {
			cmd = m.runItemCmd(it)
		}
		return m, tea.Batch(m.tickCmd(), cmd)

	case itemDoneMsg:
		m.eng.Finish(msg.item, msg.result, msg.err)
		if m.eng.State() != engine.StateRunning {
			// Refresh machine stats once the run settles.
			return m, collectStatsCmd
		}
		return m, nil

	case statsMsg:
		m.stats = msg.stats
		m.statsErr = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view.SearchActive {
		return m.handleSearchKey(msg)
	}

	if m.view.ShowHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.view.ShowHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.view.ShowHelp = true
		return m, nil
	}

	switch m.screen {
	case screenSelect:
		return m.handleSelectKey(msg)
	case screenConfirm:
		return m.handleConfirmKey(msg)
	case screenProgress:
		return m.handleProgressKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view.SearchActive = false
		m.view.SearchQuery = ""
		m.search.SetValue("")
		m.search.Blur()
		return m, nil
	case "enter":
		m.view.SearchActive = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SearchQuery = m.search.Value()
	return m, cmd
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Down):
		m.sel.MoveCursor(1)

	case key.Matches(msg, keys.Up):
		m.sel.MoveCursor(-1)

	case key.Matches(msg, keys.NextCat):
		m.sel.NextCategory()

	case key.Matches(msg, keys.PrevCat):
		m.sel.PrevCategory()

	case key.Matches(msg, keys.Toggle):
		m.sel.Toggle(m.eng.State() == engine.StateRunning)

	case key.Matches(msg, keys.SelectAll):
		m.sel.SelectAll(m.privileged)

	case key.Matches(msg, keys.SelectNo):
		m.sel.DeselectAll()

	case key.Matches(msg, keys.Chart):
		m.view.Chart = m.view.Chart.Next()

	case key.Matches(msg, keys.ViewMode):
		m.view.Mode = m.view.Mode.Cycle()

	case key.Matches(msg, keys.Sort):
		m.view.Sort = m.view.Sort.Cycle()

	case key.Matches(msg, keys.Filter):
		m.view.Filter = m.view.Filter.Cycle()

	case key.Matches(msg, keys.Search):
		m.view.SearchActive = true
		m.search.Focus()

	case key.Matches(msg, keys.Run):
		if m.sel.SelectedCount() == 0 {
			m.notice = "No items selected. Select items to clean first."
			return m, nil
		}
		if m.cfg == nil || m.cfg.Confirm {
			m.screen = screenConfirm
			return m, nil
		}
		return m.startRun()
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.startRun()
	case "n", "N", "esc", "q":
		m.screen = screenSelect
	}
	return m, nil
}

func (m Model) handleProgressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	running := m.eng.State() == engine.StateRunning

	switch {
	case key.Matches(msg, keys.Quit):
		if running {
			m.eng.Cancel()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		if running {
			m.eng.Cancel()
			return m, nil
		}
		// Explicit dismiss of the retained results screen.
		m.eng.Reset()
		m.view.DetailScroll = 0
		m.screen = screenSelect
		m.notice = ""

	case key.Matches(msg, keys.Pause):
		if m.eng.Run().IsPaused {
			m.eng.Resume()
		} else {
			m.eng.Pause()
		}

	case key.Matches(msg, keys.Down):
		m.view.DetailScroll++

	case key.Matches(msg, keys.Up):
		if m.view.DetailScroll > 0 {
			m.view.DetailScroll--
		}

	case key.Matches(msg, keys.Chart):
		m.view.Chart = m.view.Chart.Next()

	case key.Matches(msg, keys.ViewMode):
		m.view.Mode = m.view.Mode.Cycle()

	case key.Matches(msg, keys.Sort):
		m.view.Sort = m.view.Sort.Cycle()

	case key.Matches(msg, keys.Filter):
		m.view.Filter = m.view.Filter.Cycle()

	case key.Matches(msg, keys.Search):
		m.view.SearchActive = true
		m.search.Focus()
	}

	return m, nil
}

// startRun queries the privilege provider once, attempts a silent
// elevation when privileged items are selected, and hands the ordered
// selection to the engine.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	items := m.sel.SelectedItems()

	priv := sysinfo.Privileged()
	if !priv && m.sel.HasPrivilegedSelection() {
		if err := sysinfo.TryElevate(context.Background()); err == nil {
			priv = true
		}
	}
	m.privileged = priv

	if err := m.eng.Start(items, priv); err != nil {
		m.notice = err.Error()
		m.screen = screenSelect
		return m, nil
	}

	m.notice = ""
	m.view.DetailScroll = 0
	m.screen = screenProgress
	return m, nil
}
