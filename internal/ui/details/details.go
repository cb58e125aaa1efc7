// Package details contains the style detail view: header, description,
// palette swatches, typography, characteristics and the prompt.
package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/keys"
	"github.com/zjrosen/stylebook/internal/prompt"
	"github.com/zjrosen/stylebook/internal/ui/markdown"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

const (
	headerHeight = 3 // title, mood, blank
	footerHeight = 1
	swatchWidth  = 11
	swatchGap    = 1

	mixedBadge = "⚗️"
	mixedMood  = "Hybrid Style Combination"
)

const zoneSwatchPrefix = "details-swatch:"

// SwatchZoneID returns the click zone of the swatch at palette index i.
func SwatchZoneID(i int) string {
	return fmt.Sprintf("%s%d", zoneSwatchPrefix, i)
}

// Model holds the detail view state.
type Model struct {
	catalog       *catalog.Catalog
	record        catalog.Record
	copiedColor   string
	showPrompt    bool
	keys          keys.KeyMap
	viewport      viewport.Model
	mdRenderer    *markdown.Renderer
	markdownStyle string
	width         int
	height        int
	ready         bool
}

// New creates a detail view reading positions from cat.
func New(cat *catalog.Catalog) Model {
	return Model{
		catalog:       cat,
		showPrompt:    true,
		keys:          keys.DefaultKeyMap(),
		markdownStyle: "dark",
	}
}

// SetMarkdownStyle sets the markdown rendering style ("dark" or "light").
func (m Model) SetMarkdownStyle(style string) Model {
	m.markdownStyle = style
	m.mdRenderer = nil
	return m.refresh()
}

// SetShowPrompt toggles the prompt section.
func (m Model) SetShowPrompt(show bool) Model {
	m.showPrompt = show
	return m.refresh()
}

// SetRecord shows rec with copied flagged in the palette. The scroll
// position resets when the record changes.
func (m Model) SetRecord(rec catalog.Record, copied string) Model {
	changed := rec.ID() != m.record.ID()
	m.record = rec
	m.copiedColor = copied
	m = m.refresh()
	if changed && m.ready {
		m.viewport.GotoTop()
	}
	return m
}

// Record returns the displayed record.
func (m Model) Record() catalog.Record {
	return m.record
}

// SetSize updates dimensions, border included.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height

	innerWidth := m.innerWidth()
	viewportHeight := max(height-2-headerHeight-footerHeight, 1)

	if m.mdRenderer == nil || m.mdRenderer.Width() != innerWidth {
		if r, err := markdown.New(innerWidth, m.markdownStyle); err == nil {
			m.mdRenderer = r
		}
	}

	if !m.ready {
		m.viewport = viewport.New(innerWidth, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = innerWidth
		m.viewport.Height = viewportHeight
	}
	m.viewport.SetContent(m.renderBody())
	return m
}

func (m Model) innerWidth() int {
	return max(m.width-2, 1)
}

// refresh re-renders the scrollable body after a content change.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	if m.mdRenderer == nil {
		return m.SetSize(m.width, m.height)
	}
	m.viewport.SetContent(m.renderBody())
	return m
}

// Update handles scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.ScrollDown):
			m.viewport.ScrollDown(max(m.viewport.Height/2, 1))
			return m, nil
		case key.Matches(msg, m.keys.ScrollUp):
			m.viewport.ScrollUp(max(m.viewport.Height/2, 1))
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// YOffset returns the viewport scroll offset.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}

// View renders the bordered detail view.
func (m Model) View() string {
	var content string
	if !m.ready {
		content = "Loading..."
	} else {
		content = m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
	}

	return styles.RenderWithTitleBorder(
		content,
		"Details",
		m.width,
		m.height,
		false,
		styles.OverlayTitleColor,
		styles.BorderHighlightFocusColor,
	)
}

// renderHeader renders the badge, name and mood lines.
func (m Model) renderHeader() string {
	width := m.innerWidth()
	if m.record.Empty() {
		empty := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
		return empty.Render("No style selected") + "\n\n"
	}

	badge := mixedBadge
	mood := mixedMood
	if s := m.record.Style; s != nil {
		n, _ := m.catalog.Position(s.ID)
		badge = fmt.Sprintf("%02d", n)
		mood = s.Mood
	}

	badgeStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.CategoryActiveColor)
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)

	title := badgeStyle.Render(badge) + " " + nameStyle.Render(styles.Truncate(m.record.Name(), max(width-lipgloss.Width(badge)-1, 1)))
	moodLine := styles.HintStyle.Render(styles.Truncate(mood, width))
	return title + "\n" + moodLine + "\n"
}

// renderBody renders the scrollable sections.
func (m Model) renderBody() string {
	if m.record.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderMarkdown(m.record.Description()))
	sb.WriteString("\n")

	if s := m.record.Style; s != nil {
		sb.WriteString(m.renderSection("Color Palette", m.renderSwatches()))
		sb.WriteString(m.renderSection("Typography", m.renderMarkdown(
			fmt.Sprintf("**Display:** %s\n\n**Body:** %s", s.Fonts.Display, s.Fonts.Body))))
		sb.WriteString(m.renderSection("Key Characteristics", m.renderMarkdown(bulletList(s.Characteristics))))
	} else if mx := m.record.Mixed; mx != nil {
		sb.WriteString(m.renderSection("Parent Styles", m.renderMarkdown(bulletList(mx.ParentStyles))))
		sb.WriteString(m.renderSection("Combined Palette", m.renderSwatches()))
	}

	if m.showPrompt {
		sb.WriteString(m.renderPrompt())
	}
	return sb.String()
}

func (m Model) renderSection(title, body string) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	return "\n" + headerStyle.Render(title) + "\n" + body + "\n"
}

// renderMarkdown renders content with glamour, falling back to wrapped text.
func (m Model) renderMarkdown(content string) string {
	if m.mdRenderer != nil {
		if rendered, err := m.mdRenderer.Render(content); err == nil {
			return rendered
		}
	}
	return wordwrap.String(content, m.innerWidth())
}

// renderSwatches lays the palette out in as many rows as the width needs.
// The copied color is marked with a check.
func (m Model) renderSwatches() string {
	colors := m.record.Colors()
	perRow := max((m.innerWidth()+swatchGap)/(swatchWidth+swatchGap), 1)

	var rows []string
	var row []string
	for i, c := range colors {
		row = append(row, zone.Mark(SwatchZoneID(i), m.renderSwatch(i, c)))
		if len(row) == perRow || i == len(colors)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(row)...))
			row = nil
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderSwatch(i int, hex string) string {
	block := lipgloss.NewStyle().
		Width(swatchWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(hex)).
		Foreground(styles.ContrastText(hex))

	label := fmt.Sprintf("%d", i+1)
	if hex == m.copiedColor {
		label = "✓"
	}

	caption := lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center).Foreground(styles.TextSecondaryColor)
	return lipgloss.JoinVertical(lipgloss.Left,
		block.Render(label),
		caption.Render(hex),
	)
}

func joinWithGap(parts []string) []string {
	gap := strings.Repeat(" ", swatchGap)
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}

func (m Model) renderPrompt() string {
	hint := styles.HintStyle.Render("Copy this prompt for AI image generators (p)")
	text := styles.DescriptionStyle.Render(wordwrap.String(prompt.For(m.record), m.innerWidth()))
	return m.renderSection("AI Image Prompt", hint+"\n\n"+text)
}

func (m Model) renderFooter() string {
	footer := "ctrl+d/ctrl+u scroll"
	if m.viewport.TotalLineCount() > m.viewport.Height {
		footer += fmt.Sprintf(" %3.0f%%", m.viewport.ScrollPercent()*100)
	}
	return styles.HintStyle.Render(styles.Truncate(footer, m.innerWidth()))
}

func bulletList(items []string) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString("- ")
		sb.WriteString(it)
		sb.WriteString("\n")
	}
	return sb.String()
}

// HitTest returns the palette color under a mouse event.
func (m Model) HitTest(msg tea.MouseMsg) (string, bool) {
	colors := m.record.Colors()
	for i := range colors {
		if z := zone.Get(SwatchZoneID(i)); z != nil && z.InBounds(msg) {
			return colors[i], true
		}
	}
	return "", false
}
