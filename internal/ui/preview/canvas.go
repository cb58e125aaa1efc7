package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// canvas builds a mock page line by line. Every line is exactly w cells
// wide and painted with the page background.
type canvas struct {
	w     int
	bg    string
	fg    string
	lines []string
}

func newCanvas(w int, bg, fg string) *canvas {
	return &canvas{w: max(w, 1), bg: bg, fg: fg}
}

// ink renders s in fg over the page background.
func (c *canvas) ink(s, fg string, bold bool) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(c.bg)).
		Bold(bold).
		Render(s)
}

// gap renders n background cells.
func (c *canvas) gap(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.bg)).Render(strings.Repeat(" ", n))
}

// row lays pre-rendered segments out on one line.
func (c *canvas) row(a align, segs ...string) *canvas {
	line := ansi.Truncate(strings.Join(segs, ""), c.w, "")
	free := c.w - ansi.StringWidth(line)

	var left int
	switch a {
	case alignCenter:
		left = free / 2
	case alignRight:
		left = max(free-1, 0)
	default:
		left = min(1, free)
	}
	c.lines = append(c.lines, c.gap(left)+line+c.gap(free-left))
	return c
}

// text writes s in fg, wrapped to the canvas width.
func (c *canvas) text(a align, s, fg string, bold bool) *canvas {
	for _, l := range strings.Split(wordwrap.String(s, max(c.w-2, 1)), "\n") {
		c.row(a, c.ink(l, fg, bold))
	}
	return c
}

// blank writes n empty lines.
func (c *canvas) blank(n int) *canvas {
	for range n {
		c.row(alignLeft)
	}
	return c
}

// rule writes a horizontal line in fg.
func (c *canvas) rule(fg string) *canvas {
	return c.row(alignCenter, c.ink(strings.Repeat("─", max(c.w-2, 1)), fg, false))
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// swatch renders a w-cell block of color.
func swatch(color string, w int) string {
	if w <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render(strings.Repeat(" ", w))
}

// label renders s in fg over bg.
func label(s, fg, bg string, bold bool) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(bold).
		Render(s)
}

// button renders s padded by one cell on a colored background.
func button(s, fg, bg string) string {
	return label(" "+s+" ", fg, bg, true)
}

// spaced inserts a space between the runes of s: "COOL" -> "C O O L".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
