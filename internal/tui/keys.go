package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextCat   key.Binding
	PrevCat   key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	SelectNo  key.Binding
	Run       key.Binding
	Pause     key.Binding
	Chart     key.Binding
	ViewMode  key.Binding
	Sort      key.Binding
	Filter    key.Binding
	Search    key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextCat:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevCat:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		SelectNo:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
		Run:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		Chart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart type")),
		ViewMode:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view mode")),
		Sort:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/cancel")),
		Help:      key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Run, k.Chart, k.ViewMode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextCat, k.PrevCat},
		{k.Toggle, k.SelectAll, k.SelectNo, k.Run, k.Pause},
		{k.Chart, k.ViewMode, k.Sort, k.Filter, k.Search},
		{k.Back, k.Help, k.Quit},
	}
}
