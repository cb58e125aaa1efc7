package layout

// Fallbacks for palettes that do not reach every slot.
const (
	FallbackDark    = "#000000"
	FallbackLight   = "#FFFFFF"
	FallbackNeutral = "#808080"
)

// Palette gives positional access to a record's colors with the fallbacks
// the preview relies on: a missing secondary or accent falls back to the
// primary, a missing dark to black and a missing light to white.
type Palette struct {
	colors []string
}

// PaletteOf wraps a color list. The slice is not copied or modified.
func PaletteOf(colors []string) Palette {
	return Palette{colors: colors}
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns colors[n], or colors[0] when n is out of range. An empty
// palette yields FallbackNeutral.
func (p Palette) At(n int) string {
	if n >= 0 && n < len(p.colors) {
		return p.colors[n]
	}
	if len(p.colors) > 0 {
		return p.colors[0]
	}
	return FallbackNeutral
}

// Primary returns colors[0].
func (p Palette) Primary() string { return p.At(0) }

// Secondary returns colors[1], or the primary color when missing.
func (p Palette) Secondary() string { return p.At(1) }

// Accent returns colors[2], or the primary color when missing.
func (p Palette) Accent() string { return p.At(2) }

// Dark returns colors[3] or FallbackDark.
func (p Palette) Dark() string {
	if len(p.colors) > 3 {
		return p.colors[3]
	}
	return FallbackDark
}

// Light returns colors[4] or FallbackLight.
func (p Palette) Light() string {
	if len(p.colors) > 4 {
		return p.colors[4]
	}
	return FallbackLight
}
