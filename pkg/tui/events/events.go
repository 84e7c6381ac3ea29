package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Describer is implemented by messages that can summarise themselves for logs.
type Describer interface {
	Describe() string
}

// DateChangeMsg is emitted when the user picks a day or asks for today. It
// carries the OnChange callback arguments.
type DateChangeMsg struct {
	Component ComponentID
	Name      string
	Date      time.Time
}

// Describe implements the logging helper.
func (m DateChangeMsg) Describe() string {
	return fmt.Sprintf(`name:%q date:%q`, m.Name, m.Date.Format("2006-01-02"))
}

// DateChangeCmd wraps a DateChangeMsg in a tea.Cmd helper.
func DateChangeCmd(component ComponentID, name string, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return DateChangeMsg{Component: component, Name: name, Date: date}
	}
}

// DisplayChangeMsg is emitted when the user asks to show another month. It
// carries the OnChangeDisplay callback arguments.
type DisplayChangeMsg struct {
	Component ComponentID
	Name      string
	Date      time.Time
}

// Describe implements the logging helper.
func (m DisplayChangeMsg) Describe() string {
	return fmt.Sprintf(`name:%q month:%q`, m.Name, m.Date.Format("January 2006"))
}

// DisplayChangeCmd wraps a DisplayChangeMsg in a tea.Cmd helper.
func DisplayChangeCmd(component ComponentID, name string, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return DisplayChangeMsg{Component: component, Name: name, Date: date}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}
