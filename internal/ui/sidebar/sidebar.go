// Package sidebar renders the category navigation with the active
// category expanded into its member styles.
package sidebar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

// Zone ID prefixes for mouse click detection.
const (
	zoneCategoryPrefix = "sidebar-category:"
	zoneStylePrefix    = "sidebar-style:"
)

// CategoryZoneID returns the click zone of a category row.
func CategoryZoneID(categoryID string) string {
	return zoneCategoryPrefix + categoryID
}

// StyleZoneID returns the click zone of a style row.
func StyleZoneID(styleID string) string {
	return zoneStylePrefix + styleID
}

// TargetKind tells what a click landed on.
type TargetKind int

const (
	TargetCategory TargetKind = iota
	TargetStyle
)

// Target is the row under a mouse click.
type Target struct {
	Kind TargetKind
	ID   string
}

// Item is one member row of the expanded category.
type Item struct {
	ID     string
	Number int
	Label  string
}

// Model holds the sidebar view state. It is a pure projection of the
// selection; the app owns the state and pushes it in with SetActive.
type Model struct {
	catalog        *catalog.Catalog
	activeCategory string
	activeStyle    string
	width          int
	height         int
}

// New creates a sidebar over cat.
func New(cat *catalog.Catalog) Model {
	return Model{catalog: cat}
}

// SetSize updates dimensions, border included.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetActive sets the highlighted category and style.
func (m Model) SetActive(categoryID, styleID string) Model {
	m.activeCategory = categoryID
	m.activeStyle = styleID
	return m
}

// Items returns the member rows of the active category. Styles are
// numbered by catalog position, mixed styles 1..n within the mixed list.
func (m Model) Items() []Item {
	return ItemsFor(m.catalog, m.activeCategory)
}

// ItemsFor returns the member rows of categoryID.
func ItemsFor(cat *catalog.Catalog, categoryID string) []Item {
	if categoryID == catalog.MixedCategoryID {
		mixed := cat.MixedStyles()
		items := make([]Item, 0, len(mixed))
		for i, ms := range mixed {
			items = append(items, Item{ID: ms.ID, Number: i + 1, Label: ms.Name})
		}
		return items
	}

	members := cat.StylesIn(categoryID)
	items := make([]Item, 0, len(members))
	for _, s := range members {
		n, _ := cat.Position(s.ID)
		items = append(items, Item{ID: s.ID, Number: n, Label: s.ShortName()})
	}
	return items
}

// View renders the bordered sidebar.
func (m Model) View() string {
	innerWidth := max(m.width-2, 1)

	var lines []string
	for _, c := range m.catalog.Categories() {
		lines = append(lines, m.renderCategory(c, innerWidth))
		if c.ID != m.activeCategory {
			continue
		}
		for _, item := range m.Items() {
			lines = append(lines, m.renderItem(item, innerWidth))
		}
	}

	return styles.RenderWithTitleBorder(
		strings.Join(lines, "\n"),
		"Styles",
		m.width,
		m.height,
		true,
		styles.OverlayTitleColor,
		styles.BorderHighlightFocusColor,
	)
}

func (m Model) renderCategory(c catalog.Category, width int) string {
	marker := "▸"
	style := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if c.ID == m.activeCategory {
		marker = "▾"
		style = styles.CategoryActiveStyle
	}

	label := styles.Truncate(fmt.Sprintf("%s %s %s", marker, c.Icon, c.Name), width)
	return zone.Mark(CategoryZoneID(c.ID), style.Render(label))
}

func (m Model) renderItem(item Item, width int) string {
	text := styles.Truncate(fmt.Sprintf("%02d %s", item.Number, item.Label), max(width-4, 1))

	if item.ID == m.activeStyle {
		line := styles.SelectionIndicatorStyle.Render("  > ") + styles.SelectedItemStyle.Render(text)
		return zone.Mark(StyleZoneID(item.ID), line)
	}
	return zone.Mark(StyleZoneID(item.ID), "    "+styles.DescriptionStyle.Render(text))
}

// HitTest resolves a mouse event to the category or style row under it.
// Only rows drawn by the last scanned View can match.
func (m Model) HitTest(msg tea.MouseMsg) (Target, bool) {
	for _, c := range m.catalog.Categories() {
		if z := zone.Get(CategoryZoneID(c.ID)); z != nil && z.InBounds(msg) {
			return Target{Kind: TargetCategory, ID: c.ID}, true
		}
	}
	for _, item := range m.Items() {
		if z := zone.Get(StyleZoneID(item.ID)); z != nil && z.InBounds(msg) {
			return Target{Kind: TargetStyle, ID: item.ID}, true
		}
	}
	return Target{}, false
}
