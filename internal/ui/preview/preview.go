// Package preview renders a record as a mock webpage inside browser
// chrome, using the record's palette and its layout treatment.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/stylebook/internal/cachemanager"
	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/layout"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

// CacheTTL is how long a rendered page is kept.
const CacheTTL = 10 * time.Minute

var chromeDots = [3]string{"#FF5F57", "#FEBC2E", "#28C840"}

// NewCache returns the cache previews are memoized in.
func NewCache() *cachemanager.Cache[string] {
	return cachemanager.New[string]("preview", CacheTTL, 2*CacheTTL)
}

// Model holds the preview panel state.
type Model struct {
	record catalog.Record
	cache  *cachemanager.Cache[string]
	width  int
	height int
}

// New creates a preview panel. A nil cache disables memoization.
func New(cache *cachemanager.Cache[string]) Model {
	return Model{cache: cache}
}

// SetRecord sets the displayed record.
func (m Model) SetRecord(rec catalog.Record) Model {
	m.record = rec
	return m
}

// SetSize updates dimensions, border included.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the bordered preview panel.
func (m Model) View() string {
	innerWidth := max(m.width-2, 1)

	var content string
	if m.record.Empty() {
		content = styles.HintStyle.Render("Nothing to preview")
	} else {
		content = m.render(innerWidth)
	}

	return styles.RenderWithTitleBorder(
		content,
		"Preview",
		m.width,
		m.height,
		false,
		styles.OverlayTitleColor,
		styles.BorderHighlightFocusColor,
	)
}

func (m Model) render(width int) string {
	if m.cache == nil {
		return Render(m.record, width)
	}
	key := fmt.Sprintf("%s:%d", m.record.ID(), width)
	out, _ := m.cache.GetOrLoad(key, CacheTTL, func() (string, error) {
		log.Debug(log.CatUI, "Rendering preview", "id", m.record.ID(), "width", width)
		return Render(m.record, width), nil
	})
	return out
}

// Render draws rec at width: browser chrome, the mock page and the
// "Best for" caption.
func Render(rec catalog.Record, width int) string {
	width = max(width, 1)
	tag := layout.Resolve(rec.ID())
	page := renderPage(tag, layout.PaletteOf(rec.Colors()), width)

	return strings.Join([]string{
		renderChrome(rec.Domain(), width),
		page,
		renderCaption(rec.ExampleWebsite(), width),
	}, "\n")
}

// RenderTag draws the mock page for tag alone. Used by the layouts command.
func RenderTag(tag layout.Tag, colors []string, width int) string {
	return renderPage(tag, layout.PaletteOf(colors), max(width, 1))
}

func renderChrome(domain string, width int) string {
	var dots []string
	for _, c := range chromeDots {
		dots = append(dots, lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●"))
	}

	url := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	bar := strings.Join(dots, " ") + "  " + url.Render(styles.Truncate(domain, max(width-8, 1)))
	divider := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", width))
	return bar + "\n" + divider
}

func renderCaption(site string, width int) string {
	return styles.HintStyle.Render(styles.Truncate("Best for: "+site, width))
}
