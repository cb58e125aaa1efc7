// Package catalog holds the immutable tables of design styles, mixed styles
// and categories that the gallery browses.
package catalog

import "strings"

// MixedCategoryID is the sentinel category that lists mixed styles instead
// of filtering styles by category.
const MixedCategoryID = "mixed"

// Fonts names the typefaces a style is shown with. Descriptive only.
type Fonts struct {
	Display string `yaml:"display"`
	Body    string `yaml:"body"`
}

// Style is one named visual design language.
type Style struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Category        string   `yaml:"category"`
	Description     string   `yaml:"description"`
	Colors          []string `yaml:"colors"` // index 0 is the primary color
	Fonts           Fonts    `yaml:"fonts"`
	Characteristics []string `yaml:"characteristics"`
	ExampleWebsite  string   `yaml:"example_website"`
	Mood            string   `yaml:"mood"`
}

// ShortName returns the part of the name before a " / " compound label.
func (s Style) ShortName() string {
	name, _, _ := strings.Cut(s.Name, " / ")
	return name
}

// MixedStyle is a hybrid of two styles. ParentStyles are display names, not ids.
type MixedStyle struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Colors         []string `yaml:"colors"`
	ParentStyles   []string `yaml:"parent_styles"`
	ExampleWebsite string   `yaml:"example_website"`
}

// Category is an entry of the sidebar navigation.
type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// IsMixed reports whether the category is the mixed-styles sentinel.
func (c Category) IsMixed() bool {
	return c.ID == MixedCategoryID
}

// Record is the currently displayed entry: a Style or a MixedStyle.
// The zero Record means "no record".
type Record struct {
	Style *Style
	Mixed *MixedStyle
}

// Empty reports whether the record references nothing.
func (r Record) Empty() bool {
	return r.Style == nil && r.Mixed == nil
}

// IsMixed reports whether the record is a mixed style.
func (r Record) IsMixed() bool {
	return r.Mixed != nil
}

// ID returns the record id, or "" for the empty record.
func (r Record) ID() string {
	switch {
	case r.Style != nil:
		return r.Style.ID
	case r.Mixed != nil:
		return r.Mixed.ID
	}
	return ""
}

// Name returns the display name.
func (r Record) Name() string {
	switch {
	case r.Style != nil:
		return r.Style.Name
	case r.Mixed != nil:
		return r.Mixed.Name
	}
	return ""
}

// Description returns the record description.
func (r Record) Description() string {
	switch {
	case r.Style != nil:
		return r.Style.Description
	case r.Mixed != nil:
		return r.Mixed.Description
	}
	return ""
}

// Colors returns the record palette in catalog order.
func (r Record) Colors() []string {
	switch {
	case r.Style != nil:
		return r.Style.Colors
	case r.Mixed != nil:
		return r.Mixed.Colors
	}
	return nil
}

// ExampleWebsite returns the "best for" use case.
func (r Record) ExampleWebsite() string {
	switch {
	case r.Style != nil:
		return r.Style.ExampleWebsite
	case r.Mixed != nil:
		return r.Mixed.ExampleWebsite
	}
	return ""
}

// Domain returns the mock browser URL for the record's example website,
// e.g. "Architecture Firm" -> "architecture-firm.com".
func (r Record) Domain() string {
	site := strings.ToLower(r.ExampleWebsite())
	return strings.Join(strings.Fields(site), "-") + ".com"
}
