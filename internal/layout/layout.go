// Package layout maps catalog ids to the mock-webpage treatment used to
// preview them.
//
// Resolution uses an exact table: every known style and mixed style id has
// its own dedicated Tag, and any other id resolves to Default. There is no
// substring matching, so "swisstypography" gets SwissTypography and never
// the Swiss treatment.
package layout

// Tag identifies one preview treatment. The set is closed; renderers switch
// over it exhaustively.
type Tag uint8

const (
	Default Tag = iota

	// Classic
	Swiss
	Modernism
	Bauhaus
	MidCentury
	Minimalism
	Editorial

	// Contemporary
	Flat
	Material
	Neumorphism
	Glass
	Brutalist
	CleanUI

	// Typography
	Typographic
	SwissTypography
	Experimental
	EditorialMax

	// Expressive
	Maximal
	Psychedelic
	Surrealism
	Collage
	Illustrative

	// Tech
	Futurism
	Cyberpunk
	Terminal
	Data
	Algorithmic

	// Brand
	Luxury
	Corporate
	Playful
	Handcrafted
	Retro

	// Mixed
	SwissGlass
	BrutalCyber
	MinimalLuxury
	EditorialMaximal
	RetroFuturism
	NatureTech

	tagCount
)

var tagNames = [tagCount]string{
	Default:          "default",
	Swiss:            "swiss",
	Modernism:        "modernism",
	Bauhaus:          "bauhaus",
	MidCentury:       "midcentury",
	Minimalism:       "minimalism",
	Editorial:        "editorial",
	Flat:             "flat",
	Material:         "material",
	Neumorphism:      "neumorphism",
	Glass:            "glass",
	Brutalist:        "brutalist",
	CleanUI:          "cleanui",
	Typographic:      "typographic",
	SwissTypography:  "swisstypography",
	Experimental:     "experimental",
	EditorialMax:     "editorialmax",
	Maximal:          "maximal",
	Psychedelic:      "psychedelic",
	Surrealism:       "surrealism",
	Collage:          "collage",
	Illustrative:     "illustrative",
	Futurism:         "futurism",
	Cyberpunk:        "cyberpunk",
	Terminal:         "terminal",
	Data:             "data",
	Algorithmic:      "algorithmic",
	Luxury:           "luxury",
	Corporate:        "corporate",
	Playful:          "playful",
	Handcrafted:      "handcrafted",
	Retro:            "retro",
	SwissGlass:       "swiss-glass",
	BrutalCyber:      "brutal-cyber",
	MinimalLuxury:    "minimal-luxury",
	EditorialMaximal: "editorial-max",
	RetroFuturism:    "retro-futurism",
	NatureTech:       "nature-tech",
}

// String returns the tag's stable name.
func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// Valid reports whether t is a member of the enumeration.
func (t Tag) Valid() bool {
	return t < tagCount
}

// Mixed reports whether t is one of the hybrid treatments.
func (t Tag) Mixed() bool {
	return t >= SwissGlass && t < tagCount
}

// All returns every tag in declaration order.
func All() []Tag {
	tags := make([]Tag, 0, tagCount)
	for t := Default; t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// byID must be kept in step with the catalog; TestResolve_CatalogCoverage
// fails when a catalog id is missing here.
var byID = map[string]Tag{
	"swiss":      Swiss,
	"modernism":  Modernism,
	"bauhaus":    Bauhaus,
	"midcentury": MidCentury,
	"minimalism": Minimalism,
	"editorial":  Editorial,

	"flat":          Flat,
	"material":      Material,
	"neumorphism":   Neumorphism,
	"glassmorphism": Glass,
	"brutalist":     Brutalist,
	"cleanui":       CleanUI,

	"typographic":     Typographic,
	"swisstypography": SwissTypography,
	"experimental":    Experimental,
	"editorialmax":    EditorialMax,

	"maximalism":   Maximal,
	"psychedelic":  Psychedelic,
	"surrealism":   Surrealism,
	"collage":      Collage,
	"illustrative": Illustrative,

	"futurism":    Futurism,
	"cyberpunk":   Cyberpunk,
	"terminal":    Terminal,
	"data":        Data,
	"algorithmic": Algorithmic,

	"luxury":      Luxury,
	"corporate":   Corporate,
	"playful":     Playful,
	"handcrafted": Handcrafted,
	"retro":       Retro,

	"swiss-glass":    SwissGlass,
	"brutal-cyber":   BrutalCyber,
	"minimal-luxury": MinimalLuxury,
	"editorial-max":  EditorialMaximal,
	"retro-futurism": RetroFuturism,
	"nature-tech":    NatureTech,
}

// Resolve returns the preview treatment for a catalog id.
// Unknown ids, including the empty string, resolve to Default.
func Resolve(id string) Tag {
	if t, ok := byID[id]; ok {
		return t
	}
	return Default
}

// Parse returns the tag with the given name.
func Parse(name string) (Tag, bool) {
	for t, n := range tagNames {
		if n == name {
			return Tag(t), true
		}
	}
	return Default, false
}
