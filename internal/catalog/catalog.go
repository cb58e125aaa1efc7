package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette length bounds for catalog entries.
const (
	MinColors = 3
	MaxColors = 5
)

// Integrity errors returned by New and LoadFile.
var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidColor    = errors.New("invalid color")
	ErrMissingField    = errors.New("missing required field")
)

// Catalog is the read-only table of styles, mixed styles and categories.
// It is built once at startup; accessors never expose its backing slices.
type Catalog struct {
	styles     []Style
	mixed      []MixedStyle
	categories []Category

	styleIndex map[string]int
	mixedIndex map[string]int
}

// New builds a catalog from the given tables after checking their integrity.
// The inputs are copied, so later mutation by the caller has no effect.
func New(styles []Style, mixed []MixedStyle, categories []Category) (*Catalog, error) {
	c := &Catalog{
		styles:     cloneStyles(styles),
		mixed:      cloneMixed(mixed),
		categories: slices.Clone(categories),
		styleIndex: make(map[string]int, len(styles)),
		mixedIndex: make(map[string]int, len(mixed)),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtinStyles, builtinMixed, builtinCategories)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in table is invalid: %v", err))
	}
	return c
}

func (c *Catalog) validate() error {
	categoryIDs := make(map[string]bool, len(c.categories))
	for i, cat := range c.categories {
		if cat.ID == "" || cat.Name == "" {
			return fmt.Errorf("category %d: %w: id and name", i, ErrMissingField)
		}
		if categoryIDs[cat.ID] {
			return fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}
		categoryIDs[cat.ID] = true
	}

	for i, s := range c.styles {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("style %d: %w: id and name", i, ErrMissingField)
		}
		if _, dup := c.styleIndex[s.ID]; dup {
			return fmt.Errorf("style %q: %w", s.ID, ErrDuplicateID)
		}
		if s.Category == MixedCategoryID || !categoryIDs[s.Category] {
			return fmt.Errorf("style %q: %w %q", s.ID, ErrUnknownCategory, s.Category)
		}
		if err := validateColors(s.Colors); err != nil {
			return fmt.Errorf("style %q: %w", s.ID, err)
		}
		c.styleIndex[s.ID] = i
	}

	for i, m := range c.mixed {
		if m.ID == "" || m.Name == "" {
			return fmt.Errorf("mixed style %d: %w: id and name", i, ErrMissingField)
		}
		if _, dup := c.mixedIndex[m.ID]; dup {
			return fmt.Errorf("mixed style %q: %w", m.ID, ErrDuplicateID)
		}
		if _, taken := c.styleIndex[m.ID]; taken {
			return fmt.Errorf("mixed style %q: %w: already a style id", m.ID, ErrDuplicateID)
		}
		if len(m.ParentStyles) != 2 {
			return fmt.Errorf("mixed style %q: %w: exactly 2 parent styles, got %d", m.ID, ErrMissingField, len(m.ParentStyles))
		}
		if err := validateColors(m.Colors); err != nil {
			return fmt.Errorf("mixed style %q: %w", m.ID, err)
		}
		c.mixedIndex[m.ID] = i
	}

	return nil
}

func validateColors(colors []string) error {
	if len(colors) < MinColors || len(colors) > MaxColors {
		return fmt.Errorf("%w: palette needs %d-%d colors, got %d", ErrInvalidColor, MinColors, MaxColors, len(colors))
	}
	for _, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
	}
	return nil
}

// Styles returns every style in catalog order.
func (c *Catalog) Styles() []Style {
	return cloneStyles(c.styles)
}

// MixedStyles returns every mixed style in catalog order.
func (c *Catalog) MixedStyles() []MixedStyle {
	return cloneMixed(c.mixed)
}

// Categories returns the categories in navigation order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// DefaultCategory returns the first non-mixed category, which is where a
// new session starts.
func (c *Catalog) DefaultCategory() (Category, bool) {
	for _, cat := range c.categories {
		if !cat.IsMixed() {
			return cat, true
		}
	}
	return Category{}, false
}

// FindStyle looks up a style by id.
func (c *Catalog) FindStyle(id string) (Style, bool) {
	i, ok := c.styleIndex[id]
	if !ok {
		return Style{}, false
	}
	return cloneStyle(c.styles[i]), true
}

// FindMixed looks up a mixed style by id.
func (c *Catalog) FindMixed(id string) (MixedStyle, bool) {
	i, ok := c.mixedIndex[id]
	if !ok {
		return MixedStyle{}, false
	}
	return cloneMixedStyle(c.mixed[i]), true
}

// Lookup resolves id against the collection that categoryID routes to:
// mixed styles for the mixed sentinel, styles otherwise.
func (c *Catalog) Lookup(categoryID, id string) (Record, bool) {
	if categoryID == MixedCategoryID {
		m, ok := c.FindMixed(id)
		if !ok {
			return Record{}, false
		}
		return Record{Mixed: &m}, true
	}
	s, ok := c.FindStyle(id)
	if !ok {
		return Record{}, false
	}
	return Record{Style: &s}, true
}

// MemberIDs returns the ids listed under a category, in catalog order.
func (c *Catalog) MemberIDs(categoryID string) []string {
	var ids []string
	if categoryID == MixedCategoryID {
		for _, m := range c.mixed {
			ids = append(ids, m.ID)
		}
		return ids
	}
	for _, s := range c.styles {
		if s.Category == categoryID {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// StylesIn returns the styles of a category in catalog order.
func (c *Catalog) StylesIn(categoryID string) []Style {
	var out []Style
	for _, s := range c.styles {
		if s.Category == categoryID {
			out = append(out, cloneStyle(s))
		}
	}
	return out
}

// FirstIn returns the default selection of a category: its first member
// in catalog order. False when the category has no members.
func (c *Catalog) FirstIn(categoryID string) (string, bool) {
	ids := c.MemberIDs(categoryID)
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// Position returns the 1-based display number of a record: the catalog
// position for styles, the position within the mixed list for mixed styles.
func (c *Catalog) Position(id string) (int, bool) {
	if i, ok := c.styleIndex[id]; ok {
		return i + 1, true
	}
	if i, ok := c.mixedIndex[id]; ok {
		return i + 1, true
	}
	return 0, false
}

func cloneStyle(s Style) Style {
	s.Colors = slices.Clone(s.Colors)
	s.Characteristics = slices.Clone(s.Characteristics)
	return s
}

func cloneStyles(in []Style) []Style {
	out := make([]Style, len(in))
	for i, s := range in {
		out[i] = cloneStyle(s)
	}
	return out
}

func cloneMixedStyle(m MixedStyle) MixedStyle {
	m.Colors = slices.Clone(m.Colors)
	m.ParentStyles = slices.Clone(m.ParentStyles)
	return m
}

func cloneMixed(in []MixedStyle) []MixedStyle {
	out := make([]MixedStyle, len(in))
	for i, m := range in {
		out[i] = cloneMixedStyle(m)
	}
	return out
}
