// Package toaster provides a notification toast overlay component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/stylebook/internal/ui/overlay"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up unless dismissed earlier.
const DefaultDuration = 2 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with green border.
	StyleSuccess Style = iota
	// StyleError shows ❌ with red border.
	StyleError
	// StyleInfo shows ℹ️ with blue border.
	StyleInfo
	// StyleWarn shows ⚠️ with yellow border.
	StyleWarn
)

// Model holds the toaster state. Every Show bumps the id so a dismiss
// scheduled for an older toast leaves the current one alone.
type Model struct {
	message string
	style   Style
	visible bool
	id      int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast with the given message and style and returns the
// command that dismisses it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.id++
	m.message = message
	m.style = style
	m.visible = true
	return m, ScheduleDismiss(m.id, d)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Update handles DismissMsg for the toast currently showing.
func (m Model) Update(msg tea.Msg) Model {
	if dismiss, ok := msg.(DismissMsg); ok && dismiss.ID == m.id {
		return m.Hide()
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		content = "❌ " + m.message
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		content = "ℹ️ " + m.message
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		content = "⚠️ " + m.message
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		content = "✅ " + m.message
	}

	return style.Render(content)
}

// Overlay renders the toast in the bottom-right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	cfg := overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     2,
		PadY:     1,
	}

	return overlay.Place(cfg, m.View(), bg)
}

// DismissMsg signals that toast ID should be dismissed.
type DismissMsg struct {
	ID int
}

// ScheduleDismiss returns a command that dismisses toast id after d.
func ScheduleDismiss(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}
