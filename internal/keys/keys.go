// Package keys contains keybinding definitions.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxSwatches is the number of palette positions reachable from the keyboard.
const MaxSwatches = 5

// KeyMap defines the keybindings for the gallery.
type KeyMap struct {
	// Navigation
	NextStyle    key.Binding
	PrevStyle    key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding

	// Actions
	CopySwatch key.Binding
	CopyPrompt key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextStyle: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next style"),
		),
		PrevStyle: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous style"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/→/tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/←", "previous category"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "scroll details up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "scroll details down"),
		),

		CopySwatch: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "copy color"),
		),
		CopyPrompt: key.NewBinding(
			key.WithKeys("p", "y"),
			key.WithHelp("p/y", "copy prompt"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextStyle, k.NextCategory, k.CopySwatch, k.CopyPrompt, k.Help, k.Quit}
}

// FullHelp returns keybindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextStyle, k.PrevStyle, k.NextCategory, k.PrevCategory, k.ScrollUp, k.ScrollDown},
		{k.CopySwatch, k.CopyPrompt},
		{k.Help, k.Escape, k.Quit},
	}
}

// SwatchIndex returns the zero-based palette position a CopySwatch key
// press refers to.
func SwatchIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '0'+MaxSwatches {
		return 0, false
	}
	return int(s[0] - '1'), true
}
