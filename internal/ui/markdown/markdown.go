// Package markdown provides styled markdown rendering for the TUI.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with stylebook-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a markdown renderer with the given width and style.
// style is one of "dark", "light", "ascii" or "notty" and defaults to "dark".
// A named style is used instead of WithAutoStyle() so glamour never queries
// the terminal background while bubbletea owns stdin.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	if width < 1 {
		return nil, fmt.Errorf("markdown width must be positive, got %d", width)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the glamour style the renderer was built with.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output. Leading and
// trailing blank lines glamour adds around blocks are trimmed.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
