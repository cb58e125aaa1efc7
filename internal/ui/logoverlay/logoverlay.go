// Package logoverlay provides an in-app log viewer overlay that shows
// recent log entries without leaving the TUI. It is only wired up when
// stylebook runs with --debug.
package logoverlay

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/ui/overlay"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

const (
	viewportMaxHeight = 25  // Fixed viewport height in lines
	viewportMinHeight = 5   // Minimum viewport height for very small screens
	boxMaxWidth       = 160 // Maximum box width in characters
	boxMinWidth       = 40  // Minimum box width in characters

	// MaxEntries caps the retained log lines; older entries are dropped.
	MaxEntries = 500
)

// CloseMsg is sent when the overlay should be closed.
type CloseMsg struct{}

// Model is the log overlay component state.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	viewport viewport.Model
	entries  []string
	listener *log.LogListener
}

// New creates a new log overlay model.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// StartListening subscribes to log events until ctx is cancelled. It
// returns a nil command when logging is not initialized.
func (m Model) StartListening(ctx context.Context) (Model, tea.Cmd) {
	m.listener = log.NewListener(ctx)
	if m.listener == nil {
		return m, nil
	}
	return m, m.listener.Listen()
}

// Update handles log events and, while visible, key input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if ev, ok := msg.(log.LogEvent); ok {
		m.append(ev.Payload)
		var cmd tea.Cmd
		if m.listener != nil {
			cmd = m.listener.Listen()
		}
		return m, cmd
	}

	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.entries = nil
			m.refreshViewport()
			return m, nil
		case "d":
			return m.filter(log.LevelDebug), nil
		case "i":
			return m.filter(log.LevelInfo), nil
		case "w":
			return m.filter(log.LevelWarn), nil
		case "e":
			return m.filter(log.LevelError), nil
		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil
		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshViewport()
	}

	return m, nil
}

func (m *Model) append(entry string) {
	m.entries = append(m.entries, strings.TrimSuffix(entry, "\n"))
	if over := len(m.entries) - MaxEntries; over > 0 {
		m.entries = m.entries[over:]
	}
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
}

func (m Model) filter(level log.Level) Model {
	m.minLevel = level
	m.refreshViewport()
	return m
}

// Entries returns the retained entries matching the level filter.
func (m Model) Entries() []string {
	var filtered []string
	for _, entry := range m.entries {
		if m.matchesLevel(entry) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// View renders the log overlay content.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var result strings.Builder
	result.WriteString(titleStyle.Render("Logs"))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(m.viewport.View())
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(m.buildFilterHint())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth)

	return boxStyle.Render(result.String())
}

func (m Model) buildLogContent(contentWidth int) string {
	filtered := m.Entries()
	if len(filtered) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true)
		return emptyStyle.Render("No logs to display")
	}

	lines := make([]string, 0, len(filtered))
	for _, entry := range filtered {
		lines = append(lines, colorizeEntry(entry, contentWidth))
	}
	return strings.Join(lines, "\n")
}

// refreshViewport rebuilds the viewport with the current entries.
func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentWidth := m.contentWidth()

	// Header (2 lines), footer (2 lines) and borders (2 lines).
	viewportHeight := min(viewportMaxHeight, m.height-6)
	viewportHeight = max(viewportHeight, viewportMinHeight)

	m.viewport = viewport.New(contentWidth, viewportHeight)
	m.viewport.SetContent(m.buildLogContent(contentWidth))
}

// Overlay renders the log overlay centered on the given background.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible returns whether the overlay is currently visible.
func (m Model) Visible() bool {
	return m.visible
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m Model) contentWidth() int {
	return m.boxWidth() - 2
}

// Toggle toggles the overlay visibility.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
}

// Hide makes the overlay invisible.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize updates the overlay's knowledge of viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

// entryLevel parses the level tag written by the log package.
func entryLevel(entry string) (log.Level, bool) {
	for _, l := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+l.String()+"]") {
			return l, true
		}
	}
	return 0, false
}

// matchesLevel reports whether entry is at or above the filter level.
// Entries without a level tag are always shown.
func (m Model) matchesLevel(entry string) bool {
	level, ok := entryLevel(entry)
	return !ok || level >= m.minLevel
}

func colorizeEntry(entry string, maxWidth int) string {
	entry = styles.Truncate(entry, maxWidth)

	style := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			style = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
		case log.LevelWarn:
			style = lipgloss.NewStyle().Foreground(styles.StatusWarningColor)
		case log.LevelInfo:
			style = lipgloss.NewStyle().Foreground(styles.ToastBorderInfoColor)
		case log.LevelDebug:
			style = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
		}
	}
	return style.Render(entry)
}

func (m Model) buildFilterHint() string {
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	activeStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Bold(true)

	hints := []string{hintStyle.Render("[c] Clear")}
	for _, opt := range []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	} {
		if m.minLevel == opt.level {
			hints = append(hints, activeStyle.Render(opt.label))
		} else {
			hints = append(hints, hintStyle.Render(opt.label))
		}
	}
	return strings.Join(hints, "  ")
}
