package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"j next style", k.NextStyle, runeKey('j')},
		{"down next style", k.NextStyle, tea.KeyMsg{Type: tea.KeyDown}},
		{"k previous style", k.PrevStyle, runeKey('k')},
		{"tab next category", k.NextCategory, tea.KeyMsg{Type: tea.KeyTab}},
		{"shift+tab previous category", k.PrevCategory, tea.KeyMsg{Type: tea.KeyShiftTab}},
		{"l next category", k.NextCategory, runeKey('l')},
		{"h previous category", k.PrevCategory, runeKey('h')},
		{"3 copies a swatch", k.CopySwatch, runeKey('3')},
		{"y copies the prompt", k.CopyPrompt, runeKey('y')},
		{"? toggles help", k.Help, runeKey('?')},
		{"ctrl+c quits", k.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"ctrl+d scrolls", k.ScrollDown, tea.KeyMsg{Type: tea.KeyCtrlD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, key.Matches(tt.msg, tt.binding), "%q should match", tt.msg.String())
		})
	}
}

func TestDefaultKeyMap_NoOverlap(t *testing.T) {
	k := DefaultKeyMap()
	seen := map[string]string{}

	for _, group := range k.FullHelp() {
		for _, b := range group {
			for _, name := range b.Keys() {
				prev, dup := seen[name]
				require.False(t, dup, "key %q bound to both %q and %q", name, prev, b.Help().Desc)
				seen[name] = b.Help().Desc
			}
		}
	}
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()

	for _, group := range k.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
	require.Len(t, k.ShortHelp(), 6)
}

func TestSwatchIndex(t *testing.T) {
	for i := 1; i <= MaxSwatches; i++ {
		idx, ok := SwatchIndex(runeKey(rune('0' + i)))
		require.True(t, ok)
		require.Equal(t, i-1, idx)
	}

	for _, r := range []rune{'0', '6', 'a'} {
		_, ok := SwatchIndex(runeKey(r))
		require.False(t, ok, "%q", r)
	}

	_, ok := SwatchIndex(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, ok)
}
