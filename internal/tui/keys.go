package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView  key.Binding
	PrevView  key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Expand    key.Binding
	Search    key.Binding
	Filter    key.Binding
	YankCell  key.Binding
	YankRow   key.Binding
	Reload    key.Binding
	Approve   key.Binding
	Flag      key.Binding
	Quit      key.Binding
	ShowHelp  key.Binding
	execution bool
}

func newKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev view")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "sort")),
		NextPage: key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger pages")),
		Shrink:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller pages")),
		Expand:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "details")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		YankCell: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
		YankRow:  key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy row")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Approve:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Flag:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "flag")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ShowHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// forView enables the execution actions only where they apply.
func (k keyMap) forView(id string) keyMap {
	k.execution = id == "executions"
	k.Approve.SetEnabled(k.execution)
	k.Flag.SetEnabled(k.execution)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	out := []key.Binding{k.NextView, k.Sort, k.NextPage, k.PrevPage, k.Expand, k.Search}
	if k.execution {
		out = append(out, k.Approve, k.Flag)
	}
	return append(out, k.ShowHelp, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView, k.Up, k.Down, k.Left, k.Right},
		{k.Sort, k.NextPage, k.PrevPage, k.Grow, k.Shrink, k.Expand},
		{k.Search, k.Filter, k.YankCell, k.YankRow, k.Reload},
		{k.Approve, k.Flag, k.ShowHelp, k.Quit},
	}
}
