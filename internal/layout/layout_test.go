package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/stylebook/internal/catalog"
)

func TestResolve_CatalogCoverage(t *testing.T) {
	c := catalog.Default()

	for _, s := range c.Styles() {
		tag := Resolve(s.ID)
		require.True(t, tag.Valid(), "style %s", s.ID)
		require.NotEqual(t, Default, tag, "style %s has no dedicated layout", s.ID)
		require.False(t, tag.Mixed(), "style %s resolved to a mixed layout", s.ID)
	}
	for _, m := range c.MixedStyles() {
		tag := Resolve(m.ID)
		require.True(t, tag.Mixed(), "mixed style %s resolved to %s", m.ID, tag)
	}
}

func TestResolve_OneTagPerID(t *testing.T) {
	seen := make(map[Tag]string)
	for id, tag := range byID {
		prev, dup := seen[tag]
		require.False(t, dup, "tag %s shared by %s and %s", tag, prev, id)
		seen[tag] = id
	}
	// Every tag except Default is reachable from some id.
	require.Len(t, seen, len(All())-1)
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		id   string
		want Tag
	}{
		{"swiss", Swiss},
		{"swisstypography", SwissTypography},
		{"glassmorphism", Glass},
		{"maximalism", Maximal},
		{"editorialmax", EditorialMax},
		{"editorial-max", EditorialMaximal},
		{"swiss-glass", SwissGlass},
		{"nature-tech", NatureTech},
		{"Swiss", Default},
		{"swiss ", Default},
		{"minimal", Default},
		{"neo-swiss", Default},
		{"", Default},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.id))
		})
	}
}

func TestResolve_TotalAndDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.String().Draw(rt, "id")

		first := Resolve(id)
		if !first.Valid() {
			rt.Fatalf("Resolve(%q) returned invalid tag %d", id, first)
		}
		if second := Resolve(id); second != first {
			rt.Fatalf("Resolve(%q) not deterministic: %s then %s", id, first, second)
		}
		if _, known := byID[id]; !known && first != Default {
			rt.Fatalf("unknown id %q resolved to %s", id, first)
		}
	})
}

func TestTag_StringAndParse(t *testing.T) {
	for _, tag := range All() {
		name := tag.String()
		require.NotEmpty(t, name)
		require.NotEqual(t, "unknown", name)

		parsed, ok := Parse(name)
		require.True(t, ok)
		require.Equal(t, tag, parsed)
	}

	require.Equal(t, "unknown", Tag(200).String())
	require.False(t, Tag(200).Valid())

	_, ok := Parse("nope")
	require.False(t, ok)
}

func TestTag_Mixed(t *testing.T) {
	require.False(t, Default.Mixed())
	require.False(t, Retro.Mixed())
	require.True(t, SwissGlass.Mixed())
	require.True(t, NatureTech.Mixed())
	require.False(t, Tag(200).Mixed())
}

func TestPalette_Fallbacks(t *testing.T) {
	full := PaletteOf([]string{"#1", "#2", "#3", "#4", "#5"})
	require.Equal(t, "#1", full.Primary())
	require.Equal(t, "#2", full.Secondary())
	require.Equal(t, "#3", full.Accent())
	require.Equal(t, "#4", full.Dark())
	require.Equal(t, "#5", full.Light())

	short := PaletteOf([]string{"#1"})
	require.Equal(t, "#1", short.Secondary())
	require.Equal(t, "#1", short.Accent())
	require.Equal(t, FallbackDark, short.Dark())
	require.Equal(t, FallbackLight, short.Light())
	require.Equal(t, "#1", short.At(7))
	require.Equal(t, "#1", short.At(-1))

	empty := PaletteOf(nil)
	require.Equal(t, FallbackNeutral, empty.Primary())
	require.Equal(t, FallbackDark, empty.Dark())
	require.Equal(t, 0, empty.Len())
}

func TestPalette_AtNeverEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		colors := rapid.SliceOfN(rapid.StringMatching(`#[0-9A-F]{6}`), 0, 5).Draw(rt, "colors")
		n := rapid.IntRange(-2, 8).Draw(rt, "n")

		got := PaletteOf(colors).At(n)
		if got == "" {
			rt.Fatalf("At(%d) returned empty color for %v", n, colors)
		}
		if n >= 0 && n < len(colors) && got != colors[n] {
			rt.Fatalf("At(%d) = %s, want %s", n, got, colors[n])
		}
	})
}
