// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/stylebook/internal/keys"
	"github.com/zjrosen/stylebook/internal/ui/overlay"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

// PaletteRole names what each swatch position stands for in the previews.
type PaletteRole struct {
	Key  string
	Role string
}

// PaletteRoles returns the swatch positions in key order.
func PaletteRoles() []PaletteRole {
	return []PaletteRole{
		{Key: "1", Role: "primary"},
		{Key: "2", Role: "secondary"},
		{Key: "3", Role: "accent"},
		{Key: "4", Role: "dark"},
		{Key: "5", Role: "light"},
	}
}

// helpStyles is rebuilt on every render so theme changes apply.
type helpStyles struct {
	title   lipgloss.Style
	divider lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	box     lipgloss.Style
	content lipgloss.Style
	footer  lipgloss.Style
}

func newHelpStyles() helpStyles {
	return helpStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(2),
		divider: lipgloss.NewStyle().Foreground(styles.OverlayBorderColor),
		section: lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(10),
		desc:    lipgloss.NewStyle().Foreground(styles.TextDescriptionColor),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(styles.OverlayBorderColor),
		content: lipgloss.NewStyle().Padding(0, 2),
		footer:  lipgloss.NewStyle().Foreground(styles.TextMutedColor).MarginTop(1),
	}
}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int
}

// New creates a help view for km.
func New(km keys.KeyMap) Model {
	return Model{keys: km}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

func (m Model) renderContent() string {
	s := newHelpStyles()
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var navCol strings.Builder
	navCol.WriteString(s.section.Render("Navigation"))
	navCol.WriteString("\n")
	for _, b := range []key.Binding{m.keys.NextStyle, m.keys.PrevStyle, m.keys.NextCategory, m.keys.PrevCategory, m.keys.ScrollDown, m.keys.ScrollUp} {
		navCol.WriteString(renderBinding(s, b))
	}

	var actionsCol strings.Builder
	actionsCol.WriteString(s.section.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(renderBinding(s, m.keys.CopySwatch))
	actionsCol.WriteString(renderBinding(s, m.keys.CopyPrompt))
	actionsCol.WriteString(renderKeyDesc(s, "click", "select or copy"))

	var paletteCol strings.Builder
	paletteCol.WriteString(s.section.Render("Palette"))
	paletteCol.WriteString("\n")
	for _, r := range PaletteRoles() {
		paletteCol.WriteString(renderKeyDesc(s, r.Key, r.Role))
	}

	var generalCol strings.Builder
	generalCol.WriteString(s.section.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(s, m.keys.Help))
	generalCol.WriteString(renderBinding(s, m.keys.Escape))
	generalCol.WriteString(renderBinding(s, m.keys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(actionsCol.String()),
		columnStyle.Render(paletteCol.String()),
		generalCol.String(),
	)

	boxWidth := lipgloss.Width(columns) + 4
	body := s.content.Render(columns + "\n" + s.footer.Render("Press ? or Esc to close"))
	divider := s.divider.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(s.title.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return s.box.Width(boxWidth).Render(content.String())
}

func renderBinding(s helpStyles, b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(s, help.Key, help.Desc)
}

func renderKeyDesc(s helpStyles, key, desc string) string {
	return s.key.Render(key) + s.desc.Render(desc) + "\n"
}
