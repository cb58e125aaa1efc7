package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Prompt copied to clipboard!", StyleSuccess, DefaultDuration)

	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Equal(t, "Prompt copied to clipboard!", m.Message())
	assert.Contains(t, m.View(), "Prompt copied to clipboard!")
}

func TestHide(t *testing.T) {
	m, _ := New().Show("Hello", StyleSuccess, time.Second)
	m = m.Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess, time.Second)
	m, _ = m.Show("Second", StyleError, time.Second)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
}

func TestUpdate_DismissCurrent(t *testing.T) {
	m, _ := New().Show("Hello", StyleSuccess, time.Second)

	m = m.Update(DismissMsg{ID: m.id})

	assert.False(t, m.Visible())
}

func TestUpdate_StaleDismissIgnored(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess, time.Second)
	stale := m.id
	m, _ = m.Show("Second", StyleInfo, time.Second)

	m = m.Update(DismissMsg{ID: stale})

	assert.True(t, m.Visible())
	assert.Equal(t, "Second", m.Message())
}

func TestUpdate_IgnoresOtherMessages(t *testing.T) {
	m, _ := New().Show("Hello", StyleSuccess, time.Second)

	m = m.Update("unrelated")

	assert.True(t, m.Visible())
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}

	assert.Empty(t, m.View())
}

func TestView_Styles(t *testing.T) {
	tests := []struct {
		style Style
		emoji string
	}{
		{StyleSuccess, "✅"},
		{StyleError, "❌"},
		{StyleInfo, "ℹ️"},
		{StyleWarn, "⚠️"},
	}

	for _, tt := range tests {
		m, _ := New().Show("msg", tt.style, time.Second)
		view := m.View()
		assert.Contains(t, view, tt.emoji)
		assert.Contains(t, view, "msg")
		assert.Contains(t, view, "╭")
	}
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	bg := "background"

	assert.Equal(t, bg, New().Overlay(bg, 10, 1))
}

func TestOverlay_VisiblePlacesBottomRight(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")
	m, _ := New().Show("Copied", StyleSuccess, time.Second)

	lines := strings.Split(m.Overlay(bg, 40, 10), "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat(".", 40), lines[0])
	assert.Contains(t, lines[7], "Copied")
	assert.True(t, strings.HasSuffix(lines[7], ".."), "toast keeps a right margin")
	assert.Equal(t, strings.Repeat(".", 40), lines[9])
}

func TestScheduleDismiss(t *testing.T) {
	cmd := ScheduleDismiss(3, time.Millisecond)

	msg := cmd()

	assert.Equal(t, DismissMsg{ID: 3}, msg)
}
