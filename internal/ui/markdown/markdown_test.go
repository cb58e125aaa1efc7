package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err)
	require.Equal(t, 80, r.Width())
	require.Equal(t, "dark", r.Style())
}

func TestNew_RejectsZeroWidth(t *testing.T) {
	_, err := New(0, "dark")
	require.Error(t, err)
}

func TestRender_List(t *testing.T) {
	r, err := New(60, "ascii")
	require.NoError(t, err)

	out, err := r.Render("- Bold typography\n- Grid-based layouts")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Bold typography")
	require.Contains(t, plain, "Grid-based layouts")
	require.False(t, strings.HasPrefix(out, "\n"))
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestRender_WrapsToWidth(t *testing.T) {
	r, err := New(20, "ascii")
	require.NoError(t, err)

	out, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)

	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(strings.TrimRight(line, " ")), 20)
	}
}

func TestRender_LightStyle(t *testing.T) {
	r, err := New(40, "light")
	require.NoError(t, err)

	out, err := r.Render("**Display:** Helvetica")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "Helvetica")
}
