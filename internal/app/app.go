// Package app contains the root application model.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/stylebook/internal/cachemanager"
	"github.com/zjrosen/stylebook/internal/config"
	"github.com/zjrosen/stylebook/internal/keys"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/pubsub"
	"github.com/zjrosen/stylebook/internal/selection"
	"github.com/zjrosen/stylebook/internal/ui/details"
	"github.com/zjrosen/stylebook/internal/ui/help"
	"github.com/zjrosen/stylebook/internal/ui/logoverlay"
	"github.com/zjrosen/stylebook/internal/ui/preview"
	"github.com/zjrosen/stylebook/internal/ui/sidebar"
	"github.com/zjrosen/stylebook/internal/ui/styles"
	"github.com/zjrosen/stylebook/internal/ui/toaster"
)

// Toast messages.
const (
	msgPromptCopied  = "Prompt copied to clipboard!"
	msgNoRecord      = "No style selected"
	msgClipboardFail = "Clipboard unavailable"
)

// debugToggle opens the log overlay when running with --debug.
var debugToggle = key.NewBinding(key.WithKeys("ctrl+x"))

// Options configures the application model.
type Options struct {
	Controller *selection.Controller
	UI         config.UIConfig
	// PreviewCache memoizes rendered previews. Nil creates a fresh cache.
	PreviewCache *cachemanager.Cache[string]
	// Debug enables the log overlay (ctrl+x).
	Debug bool
}

// Model is the root application state.
type Model struct {
	ctl  *selection.Controller
	keys keys.KeyMap
	ui   config.UIConfig

	sidebar sidebar.Model
	details details.Model
	preview preview.Model
	help    help.Model
	toaster toaster.Model

	showHelp bool
	width    int
	height   int

	debugMode    bool
	logOverlay   logoverlay.Model
	logListenCmd tea.Cmd

	ctx      context.Context
	cancel   context.CancelFunc
	listener *pubsub.ContinuousListener[selection.State]
}

// New creates the application model over opts.Controller.
func New(opts Options) Model {
	cat := opts.Controller.Catalog()
	cache := opts.PreviewCache
	if cache == nil {
		cache = preview.NewCache()
	}

	ctx, cancel := context.WithCancel(context.Background())
	km := keys.DefaultKeyMap()

	m := Model{
		ctl:        opts.Controller,
		keys:       km,
		ui:         opts.UI,
		sidebar:    sidebar.New(cat),
		details:    details.New(cat).SetMarkdownStyle(opts.UI.MarkdownStyle).SetShowPrompt(opts.UI.ShowPrompt),
		preview:    preview.New(cache),
		help:       help.New(km),
		toaster:    toaster.New(),
		debugMode:  opts.Debug,
		logOverlay: logoverlay.New(),
		ctx:        ctx,
		cancel:     cancel,
		listener:   pubsub.NewContinuousListener(ctx, opts.Controller.Events()),
	}
	if opts.Debug {
		m.logOverlay, m.logListenCmd = m.logOverlay.StartListening(ctx)
	}
	return m.sync()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listener.Listen()}
	if m.logListenCmd != nil {
		cmds = append(cmds, m.logListenCmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay.SetSize(msg.Width, msg.Height)
		return m.resize(), nil

	case pubsub.Event[selection.State]:
		// The copy timer clears the flag off the UI goroutine; every
		// controller change arrives here so the view follows it.
		log.Debug(log.CatUI, "Selection event", "type", msg.Type, "copied", msg.Payload.CopiedColor)
		return m.sync(), m.listener.Listen()

	case log.LogEvent:
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.debugMode && key.Matches(msg, debugToggle) {
		m.logOverlay.Toggle()
		return m, nil
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.NextStyle):
		m.ctl.NextStyle()
	case key.Matches(msg, m.keys.PrevStyle):
		m.ctl.PrevStyle()
	case key.Matches(msg, m.keys.NextCategory):
		m.ctl.NextCategory()
	case key.Matches(msg, m.keys.PrevCategory):
		m.ctl.PrevCategory()
	case key.Matches(msg, m.keys.CopySwatch):
		if i, ok := keys.SwatchIndex(msg); ok {
			return m.copySwatch(i)
		}
		return m, nil
	case key.Matches(msg, m.keys.CopyPrompt):
		return m.copyPrompt()
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd
	default:
		return m, nil
	}

	return m.sync(), nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ui.Mouse || m.showHelp || m.logOverlay.Visible() {
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if target, ok := m.sidebar.HitTest(msg); ok {
		switch target.Kind {
		case sidebar.TargetCategory:
			m.ctl.SelectCategory(target.ID)
		case sidebar.TargetStyle:
			m.ctl.SelectStyle(target.ID)
		}
		return m.sync(), nil
	}

	if color, ok := m.details.HitTest(msg); ok {
		return m.copyColor(color)
	}
	return m, nil
}

// copySwatch copies palette position i of the current record.
func (m Model) copySwatch(i int) (tea.Model, tea.Cmd) {
	rec, ok := m.ctl.CurrentRecord()
	if !ok {
		return m.toast(msgNoRecord, toaster.StyleWarn)
	}
	colors := rec.Colors()
	if i >= len(colors) {
		return m, nil
	}
	return m.copyColor(colors[i])
}

func (m Model) copyColor(color string) (tea.Model, tea.Cmd) {
	err := m.ctl.CopyColor(color)
	m = m.sync()
	if err != nil {
		return m.toast(msgClipboardFail+": "+err.Error(), toaster.StyleError)
	}
	return m, nil
}

func (m Model) copyPrompt() (tea.Model, tea.Cmd) {
	_, err := m.ctl.CopyPrompt()
	switch {
	case errors.Is(err, selection.ErrNoRecord):
		return m.toast(msgNoRecord, toaster.StyleWarn)
	case err != nil:
		return m.toast(msgClipboardFail+": "+err.Error(), toaster.StyleError)
	}
	return m.toast(msgPromptCopied, toaster.StyleSuccess)
}

func (m Model) toast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style, toaster.DefaultDuration)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	log.Info(log.CatUI, "Quitting")
	m.cancel()
	m.ctl.Close()
	return m, tea.Quit
}

// sync pushes the controller state into the panes.
func (m Model) sync() Model {
	st := m.ctl.State()
	rec, _ := m.ctl.CurrentRecord()

	m.sidebar = m.sidebar.SetActive(st.ActiveCategoryID, st.ActiveStyleID)
	m.details = m.details.SetRecord(rec, st.CopiedColor)
	m.preview = m.preview.SetRecord(rec)
	return m
}

// paneWidths splits the terminal between sidebar, details and preview.
func (m Model) paneWidths() (side, det, prev int) {
	side = min(m.ui.SidebarWidth, m.width/3)
	rest := m.width - side
	det = rest * 45 / 100
	prev = rest - det
	return side, det, prev
}

func (m Model) resize() Model {
	side, det, prev := m.paneWidths()
	h := max(m.height-1, 1)

	m.sidebar = m.sidebar.SetSize(side, h)
	m.details = m.details.SetSize(det, h)
	m.preview = m.preview.SetSize(prev, h)
	m.help = m.help.SetSize(m.width, m.height)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		m.details.View(),
		m.preview.View(),
	)
	view := panes + "\n" + m.renderStatusBar()

	view = m.toaster.Overlay(view, m.width, m.height)
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	view = m.logOverlay.Overlay(view)

	return zone.Scan(view)
}

func (m Model) renderStatusBar() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	st := m.ctl.State()
	right := st.ActiveCategoryID + " / " + st.ActiveStyleID
	left := strings.Join(parts, "  ")

	width := max(m.width-2, 1)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", max(gap, 1)) + right
	return styles.StatusBarStyle.Render(styles.Truncate(line, width))
}
