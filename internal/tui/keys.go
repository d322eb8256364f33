package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/techfolio/internal/section"
)

// KeyMap defines the portfolio key bindings with built-in help text.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	Code  key.Binding
	Tips  key.Binding
	Links key.Binding
	Humor key.Binding

	NextSection key.Binding
	PrevSection key.Binding
	Up          key.Binding
	Down        key.Binding

	Copy key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Code: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", section.Code.TabLabel()),
		),
		Tips: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", section.Tips.TabLabel()),
		),
		Links: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", section.Links.TabLabel()),
		),
		Humor: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", section.Humor.TabLabel()),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		Copy: key.NewBinding(
			key.WithKeys("c", "y", "enter"),
			key.WithHelp("c/enter", "copy snippet"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Copy, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Code, k.Tips, k.Links, k.Humor},
		{k.NextSection, k.PrevSection, k.Up, k.Down},
		{k.Copy, k.Help, k.Quit, k.ForceQuit},
	}
}

// sectionFor maps the number keys to sections.
func (k KeyMap) sectionFor(msg tea.KeyMsg) (section.Section, bool) {
	switch {
	case key.Matches(msg, k.Code):
		return section.Code, true
	case key.Matches(msg, k.Tips):
		return section.Tips, true
	case key.Matches(msg, k.Links):
		return section.Links, true
	case key.Matches(msg, k.Humor):
		return section.Humor, true
	}
	return "", false
}
