package app

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/clipboard"
	"github.com/zjrosen/stylebook/internal/config"
	"github.com/zjrosen/stylebook/internal/pubsub"
	"github.com/zjrosen/stylebook/internal/selection"
	"github.com/zjrosen/stylebook/internal/ui/details"
	"github.com/zjrosen/stylebook/internal/ui/sidebar"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fixture struct {
	ctl   *selection.Controller
	sched *selection.ManualScheduler
	clip  *clipboard.Recorder
}

func newTestModel(t *testing.T, mutate ...func(*Options)) (Model, fixture) {
	t.Helper()
	f := fixture{
		sched: selection.NewManualScheduler(),
		clip:  &clipboard.Recorder{},
	}
	f.ctl = selection.New(catalog.Default(),
		selection.WithClipboard(f.clip),
		selection.WithScheduler(f.sched),
	)
	opts := Options{Controller: f.ctl, UI: config.Defaults().UI}
	for _, fn := range mutate {
		fn(&opts)
	}
	t.Cleanup(f.ctl.Close)

	m := New(opts)
	return update(t, m, tea.WindowSizeMsg{Width: 140, Height: 45}), f
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestApp_LoadingBeforeSize(t *testing.T) {
	ctl := selection.New(catalog.Default())
	defer ctl.Close()

	require.Equal(t, "Loading...", New(Options{Controller: ctl, UI: config.Defaults().UI}).View())
}

func TestApp_InitialView(t *testing.T) {
	m, _ := newTestModel(t)

	view := plainView(m)

	require.Contains(t, view, "▾ 🏛️ Classic & Timeless")
	require.Contains(t, view, "01 Swiss / International Style")
	require.Contains(t, view, "architecture-firm.com")
	require.Contains(t, view, "Best for: Architecture Firm")
	require.Contains(t, view, "classic / swiss")
}

func TestApp_ViewFillsTerminal(t *testing.T) {
	m, _ := newTestModel(t)

	lines := strings.Split(m.View(), "\n")

	require.Len(t, lines, 45)
	for _, line := range lines {
		require.LessOrEqual(t, lipgloss.Width(line), 140)
	}
}

func TestApp_KeyboardNavigation(t *testing.T) {
	m, f := newTestModel(t)

	m = press(t, m, "j")
	require.Equal(t, "modernism", f.ctl.State().ActiveStyleID)
	require.Contains(t, plainView(m), "02 Modernism")

	m = press(t, m, "k", "k")
	require.Equal(t, "editorial", f.ctl.State().ActiveStyleID)

	m = press(t, m, "l")
	require.Equal(t, selection.State{ActiveCategoryID: "contemporary", ActiveStyleID: "flat"}, f.ctl.State())
	require.Contains(t, plainView(m), "▾ 💻 Contemporary")

	m = press(t, m, "h", "h")
	require.Equal(t, catalog.MixedCategoryID, f.ctl.State().ActiveCategoryID)
	require.Contains(t, plainView(m), "Swiss + Glassmorphism")
}

func TestApp_CopySwatchFlagsAndClears(t *testing.T) {
	m, f := newTestModel(t)

	m = press(t, m, "1")
	require.Equal(t, "#FF3B30", f.clip.Last())
	require.Contains(t, plainView(m), "✓")

	f.sched.Advance(1499 * time.Millisecond)
	require.Equal(t, "#FF3B30", f.ctl.CopiedColor())

	f.sched.Advance(time.Millisecond)
	require.Empty(t, f.ctl.CopiedColor())

	m = update(t, m, pubsub.Event[selection.State]{Type: pubsub.ColorCleared, Payload: f.ctl.State()})
	require.NotContains(t, plainView(m), "✓")
}

func TestApp_CopySwatchSupersedes(t *testing.T) {
	m, f := newTestModel(t)

	m = press(t, m, "1")
	f.sched.Advance(500 * time.Millisecond)
	_ = press(t, m, "2")
	f.sched.Advance(1000 * time.Millisecond)
	require.Equal(t, "#000000", f.ctl.CopiedColor())

	f.sched.Advance(500 * time.Millisecond)
	require.Empty(t, f.ctl.CopiedColor())
	require.Equal(t, []string{"#FF3B30", "#000000"}, f.clip.Copies())
}

func TestApp_CopySwatchBeyondPalette(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.Style{{ID: "tri", Name: "Tri", Category: "c", Colors: []string{"#111111", "#222222", "#333333"}}},
		nil,
		[]catalog.Category{{ID: "c", Name: "C"}},
	)
	require.NoError(t, err)
	clip := &clipboard.Recorder{}
	ctl := selection.New(cat, selection.WithClipboard(clip), selection.WithScheduler(selection.NewManualScheduler()))
	defer ctl.Close()
	m := update(t, New(Options{Controller: ctl, UI: config.Defaults().UI}), tea.WindowSizeMsg{Width: 120, Height: 40})

	_ = press(t, m, "5")

	require.Empty(t, clip.Copies())
	require.Empty(t, ctl.CopiedColor())
}

func TestApp_CopyPrompt(t *testing.T) {
	m, f := newTestModel(t)

	m = press(t, m, "p")

	require.True(t, strings.HasPrefix(f.clip.Last(), "Create a webpage in Swiss / International Style style."))
	require.True(t, m.toaster.Visible())
	require.Contains(t, plainView(m), msgPromptCopied)
}

func TestApp_CopyPromptClipboardError(t *testing.T) {
	m, f := newTestModel(t)
	f.clip.Err = errors.New("boom")

	m = press(t, m, "y")

	require.Equal(t, msgClipboardFail+": boom", m.toaster.Message())
}

func TestApp_CopyColorClipboardErrorStillFlags(t *testing.T) {
	m, f := newTestModel(t)
	f.clip.Err = errors.New("boom")

	m = press(t, m, "3")

	require.Equal(t, "#FFFFFF", f.ctl.CopiedColor())
	require.Equal(t, msgClipboardFail+": boom", m.toaster.Message())
}

func TestApp_CopyPromptWithoutRecord(t *testing.T) {
	m, f := newTestModel(t)
	f.ctl.SelectStyle("nope")
	m = update(t, m, pubsub.Event[selection.State]{Type: pubsub.StyleSelected, Payload: f.ctl.State()})

	m = press(t, m, "p")

	require.Equal(t, msgNoRecord, m.toaster.Message())
	require.Empty(t, f.clip.Copies())
	require.Contains(t, plainView(m), "No style selected")
}

func TestApp_HelpOverlay(t *testing.T) {
	m, f := newTestModel(t)

	m = press(t, m, "?")
	require.True(t, m.showHelp)
	require.Contains(t, plainView(m), "Keybindings")

	m = press(t, m, "j")
	require.Equal(t, "swiss", f.ctl.State().ActiveStyleID, "navigation is blocked while help is open")

	m = press(t, m, "esc")
	require.False(t, m.showHelp)
	require.NotContains(t, plainView(m), "Keybindings")
}

func TestApp_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_SelectionEventResubscribes(t *testing.T) {
	m, f := newTestModel(t)

	_, cmd := m.Update(pubsub.Event[selection.State]{Type: pubsub.CategorySelected, Payload: f.ctl.State()})

	require.NotNil(t, cmd)
}

func waitForZone(t *testing.T, id string) *zone.ZoneInfo {
	t.Helper()
	require.Eventually(t, func() bool {
		z := zone.Get(id)
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond)
	return zone.Get(id)
}

func click(z *zone.ZoneInfo) tea.MouseMsg {
	return tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestApp_MouseSelectsAndCopies(t *testing.T) {
	m, f := newTestModel(t)
	_ = m.View()

	m = update(t, m, click(waitForZone(t, sidebar.CategoryZoneID("tech"))))
	require.Equal(t, selection.State{ActiveCategoryID: "tech", ActiveStyleID: "futurism"}, f.ctl.State())

	_ = m.View()
	m = update(t, m, click(waitForZone(t, sidebar.StyleZoneID("terminal"))))
	require.Equal(t, "terminal", f.ctl.State().ActiveStyleID)

	_ = m.View()
	rec, _ := f.ctl.CurrentRecord()
	_ = update(t, m, click(waitForZone(t, details.SwatchZoneID(1))))
	require.Equal(t, rec.Colors()[1], f.ctl.CopiedColor())
}

func TestApp_MouseDisabled(t *testing.T) {
	m, f := newTestModel(t, func(o *Options) { o.UI.Mouse = false })
	_ = m.View()

	_ = update(t, m, click(waitForZone(t, sidebar.CategoryZoneID("brand"))))

	require.Equal(t, "classic", f.ctl.State().ActiveCategoryID)
}

func TestApp_DebugLogOverlay(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.Debug = true })

	m = press(t, m, "ctrl+x")
	require.True(t, m.logOverlay.Visible())
	require.Contains(t, plainView(m), "Logs")

	m = press(t, m, "ctrl+x")
	require.False(t, m.logOverlay.Visible())
}

func TestApp_LogOverlayNeedsDebug(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "ctrl+x")

	require.False(t, m.logOverlay.Visible())
}

func TestApp_Program(t *testing.T) {
	m, f := newTestModel(t)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(140, 45))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "Architecture Firm")
	}, teatest.WithDuration(2*time.Second))

	tm.Send(keyMsg("tab"))
	tm.Send(keyMsg("j"))
	tm.Send(keyMsg("p"))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), msgPromptCopied)
	}, teatest.WithDuration(2*time.Second))

	tm.Send(keyMsg("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	require.Equal(t, selection.State{ActiveCategoryID: "contemporary", ActiveStyleID: "material"}, f.ctl.State())
	require.True(t, strings.HasPrefix(f.clip.Last(), "Create a webpage in Material Design style."))
}

func TestApp_ProgramClearsCopiedColor(t *testing.T) {
	clip := &clipboard.Recorder{}
	ctl := selection.New(catalog.Default(), selection.WithClipboard(clip))
	tm := teatest.NewTestModel(t, New(Options{Controller: ctl, UI: config.Defaults().UI}), teatest.WithInitialTermSize(140, 45))

	tm.Send(keyMsg("2"))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "✓")
	}, teatest.WithDuration(2*time.Second))

	require.Eventually(t, func() bool { return ctl.CopiedColor() == "" },
		3*time.Second, 20*time.Millisecond)

	tm.Send(keyMsg("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
	require.Equal(t, []string{"#000000"}, clip.Copies())
}
