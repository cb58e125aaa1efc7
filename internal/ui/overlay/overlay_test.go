package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_Center(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA"
	cfg := Config{Width: 5, Height: 3, Position: Center}

	lines := strings.Split(Place(cfg, "XX\nXX", bg), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "AXXAA", lines[0])
	assert.Equal(t, "AXXAA", lines[1])
	assert.Equal(t, "AAAAA", lines[2])
}

func TestPlace_LargeForegroundClampsToOrigin(t *testing.T) {
	bg := "AAA\nAAA\nAAA"
	cfg := Config{Width: 3, Height: 3, Position: Center}

	lines := strings.Split(Place(cfg, "XXXXX\nXXXXX", bg), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "XXXXX", lines[0])
	assert.Equal(t, "AAA", lines[2])
}

func TestPlace_TopAndBottom(t *testing.T) {
	bg := strings.Repeat("AAAAA\n", 4) + "AAAAA"

	top := strings.Split(Place(Config{Width: 5, Height: 5, Position: Top, PadY: 1}, "XX", bg), "\n")
	assert.Equal(t, "AAAAA", top[0])
	assert.Contains(t, top[1], "XX")

	bottom := strings.Split(Place(Config{Width: 5, Height: 5, Position: Bottom}, "XX", bg), "\n")
	assert.Contains(t, bottom[4], "XX")
	assert.Equal(t, "AAAAA", bottom[0])
}

func TestPlace_BottomRight(t *testing.T) {
	bg := strings.Repeat("..........\n", 4) + ".........."
	cfg := Config{Width: 10, Height: 5, Position: BottomRight, PadX: 1, PadY: 1}

	lines := strings.Split(Place(cfg, "OK!", bg), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "......OK!.", lines[3])
	assert.Equal(t, "..........", lines[4])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	cfg := Config{Width: 6, Height: 3, Position: Center}

	lines := strings.Split(Place(cfg, "X", ""), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "  X   ", lines[1])
}

func TestPlace_PreservesANSI(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("RRRRRRRRRR")
	cfg := Config{Width: 10, Height: 1, Position: Center}

	out := Place(cfg, "XX", red)

	assert.Contains(t, out, "XX")
	assert.Equal(t, 10, lipgloss.Width(out))
}

func TestCalculatePosition(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		w, h  int
		wantX int
		wantY int
	}{
		{"center", Config{Width: 20, Height: 10, Position: Center}, 4, 2, 8, 4},
		{"top", Config{Width: 20, Height: 10, Position: Top, PadY: 2}, 4, 2, 8, 2},
		{"bottom", Config{Width: 20, Height: 10, Position: Bottom, PadY: 1}, 4, 2, 8, 7},
		{"bottom right", Config{Width: 20, Height: 10, Position: BottomRight, PadX: 2, PadY: 1}, 4, 2, 14, 7},
		{"clamped", Config{Width: 2, Height: 1, Position: BottomRight, PadX: 5}, 4, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := calculatePosition(tt.cfg, tt.w, tt.h)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
