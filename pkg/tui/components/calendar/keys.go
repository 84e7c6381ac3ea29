package calendar

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the bindings understood by the calendar component.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Today     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns hjkl/arrow movement plus selection and paging keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("enter", "select"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "p", "pgup"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "n", "pgdown"),
			key.WithHelp("]", "next month"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Today, k.PrevMonth, k.NextMonth, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.Today},
		{k.PrevMonth, k.NextMonth, k.Help},
	}
}
