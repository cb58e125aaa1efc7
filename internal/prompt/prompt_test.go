package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stylebook/internal/catalog"
)

func TestForStyle(t *testing.T) {
	s := catalog.Style{
		Name:            "Swiss / International Style",
		Description:     "Grid-based precision.",
		Colors:          []string{"#FF3B30", "#000000", "#FFFFFF"},
		Fonts:           catalog.Fonts{Display: "Helvetica Now Display", Body: "Inter"},
		Characteristics: []string{"Strict grid systems", "Negative space"},
		Mood:            "Professional, Objective, Timeless",
	}

	want := "Create a webpage in Swiss / International Style style. Grid-based precision. \n" +
		"\n" +
		"Use these colors: #FF3B30, #000000, #FFFFFF\n" +
		"Typography: Helvetica Now Display for headlines, Inter for body text.\n" +
		"\n" +
		"Key elements: Strict grid systems, Negative space.\n" +
		"\n" +
		"The design should feel: Professional, Objective, Timeless"

	require.Equal(t, want, ForStyle(s))
}

func TestForMixed(t *testing.T) {
	m := catalog.MixedStyle{
		Name:         "Swiss + Glassmorphism",
		Description:  "Structure meets translucency.",
		Colors:       []string{"#667EEA", "#764BA2", "#FF3B30"},
		ParentStyles: []string{"Swiss / International", "Glassmorphism"},
	}

	want := "Create a webpage combining Swiss + Glassmorphism. \n" +
		"\n" +
		"Structure meets translucency.\n" +
		"\n" +
		"Use these colors: #667EEA, #764BA2, #FF3B30\n" +
		"\n" +
		"This hybrid style blends: Swiss / International + Glassmorphism"

	require.Equal(t, want, ForMixed(m))
}

func TestFor_Record(t *testing.T) {
	c := catalog.Default()

	rec, ok := c.Lookup("tech", "terminal")
	require.True(t, ok)
	got := For(rec)
	require.Contains(t, got, "Terminal / AI Command Center style")
	require.Contains(t, got, "JetBrains Mono for headlines")
	require.Contains(t, got, "Blinking cursor.")

	rec, ok = c.Lookup(catalog.MixedCategoryID, "brutal-cyber")
	require.True(t, ok)
	got = For(rec)
	require.Contains(t, got, "combining Brutalist + Cyberpunk")
	require.Contains(t, got, "blends: Brutalist + Cyberpunk")
	require.NotContains(t, got, "Typography:")

	require.Empty(t, For(catalog.Record{}))
}

func TestFor_HTMLCharactersUnescaped(t *testing.T) {
	s := catalog.Style{Name: "A & B", Description: "<b>", Mood: "\"quoted\""}

	got := ForStyle(s)
	require.Contains(t, got, "A & B style. <b>")
	require.Contains(t, got, "feel: \"quoted\"")
}
