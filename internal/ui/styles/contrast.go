package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Text colors laid over palette swatches.
const (
	onLightText = lipgloss.Color("#000000")
	onDarkText  = lipgloss.Color("#FFFFFF")
)

// lightnessThreshold is the CIE L* above which a background reads as light.
const lightnessThreshold = 0.6

// ContrastText returns black or white, whichever reads on hex. Unparseable
// colors get white text.
func ContrastText(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return onDarkText
	}
	if l, _, _ := c.Lab(); l > lightnessThreshold {
		return onLightText
	}
	return onDarkText
}

// IsLight reports whether hex is a light background.
func IsLight(hex string) bool {
	return ContrastText(hex) == onLightText
}
