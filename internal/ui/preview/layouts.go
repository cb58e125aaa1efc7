package preview

import (
	"fmt"
	"strings"

	"github.com/zjrosen/stylebook/internal/layout"
)

// renderPage draws the mock page for tag. The switch is exhaustive over
// layout.Tag; an out-of-range tag gets the Default page.
func renderPage(tag layout.Tag, p layout.Palette, w int) string {
	switch tag {
	case layout.Swiss:
		return swissPage(p, w)
	case layout.Modernism:
		return modernismPage(p, w)
	case layout.Bauhaus:
		return bauhausPage(p, w)
	case layout.MidCentury:
		return midCenturyPage(p, w)
	case layout.Minimalism:
		return minimalismPage(p, w)
	case layout.Editorial:
		return editorialPage(p, w)
	case layout.Flat:
		return flatPage(p, w)
	case layout.Material:
		return materialPage(p, w)
	case layout.Neumorphism:
		return neumorphismPage(p, w)
	case layout.Glass:
		return glassPage(p, w)
	case layout.Brutalist:
		return brutalistPage(p, w)
	case layout.CleanUI:
		return cleanUIPage(p, w)
	case layout.Typographic:
		return typographicPage(p, w)
	case layout.SwissTypography:
		return swissTypographyPage(p, w)
	case layout.Experimental:
		return experimentalPage(p, w)
	case layout.EditorialMax:
		return editorialMaxPage(p, w)
	case layout.Maximal:
		return maximalPage(p, w)
	case layout.Psychedelic:
		return psychedelicPage(p, w)
	case layout.Surrealism:
		return surrealismPage(p, w)
	case layout.Collage:
		return collagePage(p, w)
	case layout.Illustrative:
		return illustrativePage(p, w)
	case layout.Futurism:
		return futurismPage(p, w)
	case layout.Cyberpunk:
		return cyberpunkPage(p, w)
	case layout.Terminal:
		return terminalPage(p, w)
	case layout.Data:
		return dataPage(p, w)
	case layout.Algorithmic:
		return algorithmicPage(p, w)
	case layout.Luxury:
		return luxuryPage(p, w)
	case layout.Corporate:
		return corporatePage(p, w)
	case layout.Playful:
		return playfulPage(p, w)
	case layout.Handcrafted:
		return handcraftedPage(p, w)
	case layout.Retro:
		return retroPage(p, w)
	case layout.SwissGlass:
		return swissGlassPage(p, w)
	case layout.BrutalCyber:
		return brutalCyberPage(p, w)
	case layout.MinimalLuxury:
		return minimalLuxuryPage(p, w)
	case layout.EditorialMaximal:
		return editorialMaximalPage(p, w)
	case layout.RetroFuturism:
		return retroFuturismPage(p, w)
	case layout.NatureTech:
		return natureTechPage(p, w)
	case layout.Default:
		return defaultPage(p, w)
	}
	return defaultPage(p, w)
}

// cards renders n equal blocks across the canvas, cycling palette colors
// from offset.
func cards(c *canvas, p layout.Palette, n, offset int) string {
	cw := max((c.w-2-(n-1))/n, 1)
	segs := make([]string, 0, n*2)
	for i := range n {
		if i > 0 {
			segs = append(segs, c.gap(1))
		}
		segs = append(segs, swatch(p.At(offset+i), cw))
	}
	return strings.Join(segs, "")
}

func defaultPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, c.ink("Brand", p.Primary(), true))
	c.blank(1)
	c.text(alignCenter, "Welcome", p.Dark(), true)
	c.text(alignCenter, "Your tagline here", p.Secondary(), false)
	c.blank(1)
	card := cards(c, p, 3, 0)
	c.row(alignLeft, card).row(alignLeft, card)
	return c.String()
}

// Classic

func swissPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	block := swatch(p.Primary(), max(w/4, 2))
	c.row(alignLeft, c.ink("OBJECTIVE", p.Dark(), true), c.gap(max(w-len("OBJECTIVE")-w/4-3, 1)), block)
	c.row(alignLeft, c.ink("CLARITY", p.Dark(), true), c.gap(max(w-len("CLARITY")-w/4-3, 1)), block)
	c.rule(p.Dark())
	c.row(alignLeft, c.ink("Helvetica", p.Secondary(), false))
	c.blank(1)
	c.row(alignLeft, swatch(p.Dark(), max(w/2, 1)))
	c.row(alignLeft, c.ink("Grid / Order / Space", p.Dark(), false))
	return c.String()
}

func modernismPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.blank(1)
	c.text(alignLeft, "FORM", p.Dark(), true)
	c.text(alignLeft, "FOLLOWS FUNCTION", p.Dark(), true)
	c.blank(1)
	c.row(alignLeft, swatch(p.Dark(), max(w/3, 1)), c.gap(1), swatch(p.Accent(), max(w/3, 1)))
	c.blank(1)
	return c.String()
}

func bauhausPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignCenter,
		c.ink("●", p.Primary(), true), c.gap(3),
		c.ink("▲", p.Secondary(), true), c.gap(3),
		c.ink("■", p.Accent(), true))
	c.row(alignCenter, c.ink("⬤⬤", p.Primary(), false), c.gap(2), c.ink("▲▲", p.Secondary(), false), c.gap(2), swatch(p.Accent(), 4))
	c.blank(1)
	c.text(alignCenter, spaced("BAUHAUS"), p.Dark(), true)
	c.blank(1)
	c.row(alignLeft, swatch(p.Primary(), max(w/3, 1)), swatch(p.Secondary(), max(w/3, 1)), swatch(p.Accent(), max(w/3-2, 1)))
	return c.String()
}

func midCenturyPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Accent(), p.Dark())
	c.row(alignCenter, c.ink("◜", p.Primary(), true), c.gap(1), swatch(p.Secondary(), 8), c.gap(1), c.ink("◝", p.Primary(), true))
	c.row(alignCenter, swatch(p.Primary(), 4), c.gap(4), swatch(p.Secondary(), 4))
	c.blank(1)
	c.text(alignCenter, "Organic Modern", p.Dark(), true)
	c.text(alignCenter, "walnut, curves and sunlight", p.Primary(), false)
	c.row(alignCenter, c.ink("/", p.Dark(), false), c.gap(6), c.ink("\\", p.Dark(), false))
	return c.String()
}

func minimalismPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Primary(), p.Secondary())
	c.blank(2)
	c.text(alignCenter, "less", p.Secondary(), false)
	c.blank(1)
	c.text(alignCenter, "is more", p.Secondary(), false)
	c.blank(2)
	return c.String()
}

func editorialPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.text(alignCenter, "Vogue", p.Primary(), true)
	c.rule(p.Dark())
	c.text(alignLeft, "The Art of Fashion", p.Dark(), true)
	c.text(alignLeft, "Issue 42 · Spring collections reviewed in long form, with photography that breathes.", p.Secondary(), false)
	c.blank(1)
	col := max((w-4)/2, 1)
	c.row(alignLeft, swatch(p.Accent(), col), c.gap(1), swatch(p.Secondary(), col))
	return c.String()
}

// Contemporary

func flatPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, label(" ☰ "+strings.Repeat(" ", max(w-8, 1)), p.Light(), p.Primary(), true))
	c.blank(1)
	c.row(alignCenter, button("★", p.Light(), p.Primary()), c.gap(2), button("♥", p.Light(), p.Secondary()), c.gap(2), button("◆", p.Light(), p.Accent()))
	c.blank(1)
	card := cards(c, p, 3, 0)
	c.row(alignLeft, card).row(alignLeft, card)
	return c.String()
}

func materialPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, label(" Material "+strings.Repeat(" ", max(w-12, 1)), p.Light(), p.Primary(), true))
	c.blank(1)
	card := swatch(p.Secondary(), max(w-6, 1))
	c.row(alignLeft, card).row(alignLeft, card)
	c.row(alignLeft, c.ink("▁▁▁ elevation 2", p.Dark(), false))
	c.blank(1)
	c.row(alignRight, button("+", p.Light(), p.Accent()))
	return c.String()
}

func neumorphismPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Primary(), p.Dark())
	c.blank(1)
	c.row(alignCenter, label(" ✓ ", p.Accent(), p.Light(), true))
	c.blank(1)
	slider := max(w-10, 4)
	c.row(alignCenter, swatch(p.Accent(), slider/2), c.ink("●", p.Light(), true), swatch(p.Secondary(), slider-slider/2))
	c.blank(1)
	c.row(alignCenter, label(strings.Repeat(" ", max(w/2, 1)), p.Dark(), p.Light(), false))
	c.row(alignCenter, label(fmt.Sprintf("%-*s", max(w/2, 1), " soft card"), p.Dark(), p.Light(), false))
	return c.String()
}

func glassPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Primary(), p.Light())
	c.row(alignLeft, swatch(p.Secondary(), 6), c.gap(max(w-16, 1)), swatch(p.Accent(), 6))
	c.row(alignCenter, label("╭"+strings.Repeat("─", max(w/2, 4))+"╮", p.Light(), p.Primary(), false))
	c.row(alignCenter, label("│"+fmt.Sprintf("%-*s", max(w/2, 4), " frosted glass")+"│", p.Light(), p.Primary(), false))
	c.row(alignCenter, label("╰"+strings.Repeat("─", max(w/2, 4))+"╯", p.Light(), p.Primary(), false))
	c.row(alignRight, swatch(p.Secondary(), 8))
	return c.String()
}

func brutalistPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, label("!! WARNING !!", p.Light(), p.Primary(), true))
	c.blank(1)
	c.text(alignLeft, "RAW DATA", p.Dark(), true)
	c.row(alignLeft, c.ink("████ ██ ███████ █", p.Dark(), false))
	c.blank(1)
	c.row(alignLeft, label(" NO DESIGN IS GOOD DESIGN · NO DESIGN IS GOOD DESIGN ", p.Light(), p.Dark(), true))
	return c.String()
}

func cleanUIPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, c.ink("Brand", p.Dark(), true), c.gap(max(w-34, 2)), c.ink("Product  Features  Pricing", p.Secondary(), false))
	c.blank(1)
	c.text(alignCenter, "Simple.", p.Dark(), true)
	c.text(alignCenter, "Beautifully minimal.", p.Secondary(), false)
	c.blank(1)
	c.row(alignCenter, c.ink("Learn more →", p.Primary(), true))
	return c.String()
}

// Typography

func typographicPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignCenter, c.ink("A", p.Dark(), true), c.gap(4), c.ink("a", p.Primary(), false), c.gap(4), c.ink("!", p.Accent(), true))
	c.blank(1)
	c.text(alignCenter, "TYPOGRAPHY", p.Dark(), true)
	c.text(alignCenter, "IS THE DESIGN", p.Primary(), true)
	c.rule(p.Secondary())
	return c.String()
}

func swissTypographyPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, swatch(p.Primary(), max(w/5, 1)))
	c.text(alignLeft, "HELVETICA", p.Dark(), true)
	c.text(alignLeft, "NEUE", p.Dark(), true)
	c.row(alignRight, c.ink("57", p.Primary(), true))
	c.rule(p.Dark())
	return c.String()
}

func experimentalPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	c.row(alignLeft, c.ink("BRO", p.Primary(), true))
	c.row(alignCenter, c.ink("KEN", p.Secondary(), true))
	c.row(alignRight, c.ink("GRID", p.Accent(), true))
	c.blank(1)
	c.row(alignLeft, c.gap(w/3), c.ink("e x p e r i m e n t a l", p.Light(), false))
	return c.String()
}

func editorialMaxPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.text(alignLeft, "BIG", p.Primary(), true)
	c.text(alignLeft, "TYPE", p.Dark(), true)
	c.rule(p.Primary())
	c.text(alignRight, "oversized and dramatic", p.Secondary(), false)
	return c.String()
}

// Expressive

func maximalPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	shapes := []string{"●", "■", "▲", "◆", "★"}
	segs := make([]string, 0, len(shapes)*2)
	for i, s := range shapes {
		segs = append(segs, c.ink(s, p.At(i), true), c.gap(2))
	}
	c.row(alignCenter, segs...)
	c.row(alignLeft, cards(c, p, 5, 0))
	c.blank(1)
	c.text(alignCenter, "MORE IS MORE", p.Primary(), true)
	c.row(alignLeft, cards(c, p, 5, 2))
	return c.String()
}

func psychedelicPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	for i := range 3 {
		c.row(alignLeft, c.ink(strings.Repeat("∿", max(w-2, 1)), p.At(i), false))
	}
	c.text(alignCenter, "TRIPPY", p.Accent(), true)
	for i := 3; i < 5; i++ {
		c.row(alignLeft, c.ink(strings.Repeat("≈", max(w-2, 1)), p.At(i), false))
	}
	return c.String()
}

func surrealismPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	c.row(alignRight, c.ink("☾", p.Accent(), true))
	c.row(alignCenter, c.ink("◉", p.Primary(), true))
	c.row(alignLeft, c.ink("☁  ☁", p.Light(), false))
	c.blank(1)
	c.text(alignCenter, spaced("DREAM"), p.Secondary(), true)
	return c.String()
}

func collagePage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, swatch(p.Primary(), max(w/3, 1)), c.gap(2), label("COPY", p.Light(), p.Dark(), true))
	c.row(alignLeft, c.gap(4), swatch(p.Secondary(), max(w/3, 1)), label("▒▒tape▒▒", p.Dark(), p.Accent(), false))
	c.row(alignCenter, swatch(p.Accent(), max(w/4, 1)), c.ink(" cut & paste ", p.Dark(), false))
	c.row(alignRight, label("PASTE", p.Light(), p.Primary(), true))
	return c.String()
}

func illustrativePage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignRight, c.ink("☀", p.Accent(), true))
	c.row(alignLeft, c.gap(2), c.ink("♣", p.Secondary(), true))
	c.row(alignLeft, swatch(p.Secondary(), max(w-2, 1)))
	c.blank(1)
	c.text(alignCenter, "Hello World!", p.Primary(), true)
	return c.String()
}

// Tech

func futurismPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	c.row(alignCenter, c.ink("◯", p.Primary(), false))
	c.row(alignCenter, c.ink("( ◎ )", p.Secondary(), false))
	c.row(alignCenter, c.ink("◯", p.Primary(), false))
	c.blank(1)
	c.text(alignCenter, "2077", p.Accent(), true)
	return c.String()
}

func cyberpunkPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Primary())
	c.row(alignLeft, c.ink(strings.Repeat("▂▅▃▇▂▆", max(w/6, 1)), p.Secondary(), false))
	c.blank(1)
	c.row(alignCenter, c.ink("NEON", p.Primary(), true), c.gap(1), c.ink("CITY", p.Secondary(), true))
	c.blank(1)
	c.row(alignLeft, c.ink(strings.Repeat("═", max(w-2, 1)), p.Accent(), false))
	return c.String()
}

func terminalPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Primary())
	c.row(alignLeft, c.ink("● SYSTEM ONLINE", p.Primary(), true))
	c.text(alignLeft, "DRISHTI // AI COMMAND CENTER v2.0.14", p.Secondary(), true)
	c.row(alignLeft, c.ink("Neural Stream: ", p.Light(), false), c.ink("ACTIVE", p.Primary(), true))
	c.row(alignLeft, c.ink("Agent Swarm:   ", p.Light(), false), c.ink("READY", p.Accent(), true))
	c.row(alignLeft, c.ink("> Enter command... █", p.Primary(), false))
	c.row(alignLeft, c.ink("[12:04:01] handshake ok", p.Secondary(), false))
	c.row(alignLeft, c.ink("[12:04:02] 3 agents joined", p.Secondary(), false))
	return c.String()
}

func dataPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, c.ink("Revenue", p.Dark(), true), c.gap(max(w-22, 1)), c.ink("◔ share", p.Secondary(), false))
	bar := max(w-8, 4)
	for i, pct := range []int{60, 80, 45, 90} {
		c.row(alignLeft, swatch(p.At(i), bar*pct/100), c.ink(fmt.Sprintf(" %d%%", pct), p.Dark(), false))
	}
	return c.String()
}

func algorithmicPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	cell := max((w-2)/4, 1)
	for r := range 4 {
		segs := make([]string, 0, 4)
		for col := range 4 {
			i := r*4 + col
			color := p.At(2)
			switch {
			case i%3 == 0:
				color = p.At(0)
			case i%2 == 0:
				color = p.At(1)
			}
			segs = append(segs, swatch(color, cell))
		}
		c.row(alignLeft, segs...)
	}
	c.text(alignRight, "GEN-01", p.Light(), true)
	return c.String()
}

// Brand

func luxuryPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Primary(), p.Secondary())
	c.blank(1)
	c.text(alignCenter, "✦", p.Secondary(), false)
	c.text(alignCenter, spaced("MAISON"), p.Secondary(), true)
	c.text(alignCenter, "Since 1894", p.Accent(), false)
	c.blank(1)
	return c.String()
}

func corporatePage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, c.ink("◆ ACME Corp", p.Primary(), true))
	c.row(alignLeft, c.ink("Solutions | About | Contact", p.Secondary(), false))
	c.rule(p.Secondary())
	c.text(alignLeft, "Enterprise Solutions", p.Dark(), true)
	c.row(alignLeft, button("Get started", p.Light(), p.Primary()))
	return c.String()
}

func playfulPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignCenter, c.ink("●", p.Primary(), true), c.gap(2), c.ink("●", p.Secondary(), true), c.gap(2), c.ink("●", p.Accent(), true))
	c.blank(1)
	c.text(alignCenter, "Yay!", p.Primary(), true)
	c.blank(1)
	c.row(alignCenter, button("Start", p.Light(), p.Secondary()))
	return c.String()
}

func handcraftedPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignCenter, c.ink("~ ~ ~", p.Secondary(), false))
	c.text(alignCenter, "HANDMADE", p.Primary(), true)
	c.text(alignCenter, "Artisan", p.Dark(), false)
	c.row(alignCenter, c.ink("- - - - - - -", p.Accent(), false))
	return c.String()
}

func retroPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	sun := max(w/3, 4)
	for i := range 3 {
		c.row(alignCenter, swatch(p.At(i), sun-i*2))
	}
	c.text(alignCenter, spaced("COOL"), p.Light(), true)
	c.row(alignCenter, swatch(p.At(0), 2), c.gap(1), swatch(p.At(1), 2), c.gap(1), swatch(p.At(2), 2), c.gap(1), swatch(p.At(4), 2))
	return c.String()
}

// Mixed

func swissGlassPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Primary(), p.Light())
	c.row(alignLeft, c.ink("GRID", p.Light(), true), c.gap(max(w-16, 1)), swatch(p.Accent(), 6))
	c.row(alignCenter, label("╭"+strings.Repeat("─", max(w/2, 4))+"╮", p.Light(), p.Secondary(), false))
	c.row(alignCenter, label("│"+fmt.Sprintf("%-*s", max(w/2, 4), " precise / clear")+"│", p.Light(), p.Secondary(), false))
	c.row(alignCenter, label("╰"+strings.Repeat("─", max(w/2, 4))+"╯", p.Light(), p.Secondary(), false))
	c.rule(p.Dark())
	return c.String()
}

func brutalCyberPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Primary())
	c.row(alignLeft, label("!! SYSTEM BREACH !!", p.Dark(), p.Primary(), true))
	c.blank(1)
	c.text(alignLeft, "RAW NEON", p.Secondary(), true)
	c.row(alignLeft, c.ink(strings.Repeat("█▓▒░", max(w/4, 1)), p.Accent(), false))
	c.row(alignLeft, label(" NO RULES · NO LIGHTS · NO RULES ", p.Dark(), p.Light(), true))
	return c.String()
}

func minimalLuxuryPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Primary(), p.Secondary())
	c.blank(2)
	c.text(alignCenter, spaced("ATELIER"), p.Accent(), true)
	c.row(alignCenter, c.ink(strings.Repeat("─", 9), p.Accent(), false))
	c.text(alignCenter, "less, but gold", p.Secondary(), false)
	c.blank(2)
	return c.String()
}

func editorialMaximalPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Secondary())
	c.text(alignCenter, "THE ISSUE", p.Primary(), true)
	c.rule(p.Secondary())
	c.row(alignLeft, cards(c, p, 4, 0))
	c.text(alignLeft, "Abundance, printed large", p.Secondary(), true)
	c.row(alignLeft, cards(c, p, 4, 1))
	return c.String()
}

func retroFuturismPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Dark(), p.Light())
	sun := max(w/3, 4)
	c.row(alignCenter, swatch(p.Primary(), sun))
	c.row(alignCenter, swatch(p.Accent(), sun-2))
	c.row(alignLeft, c.ink(strings.Repeat("╱╲", max(w/2-1, 1)), p.Secondary(), false))
	c.text(alignCenter, "TOMORROW, 1985", p.Secondary(), true)
	return c.String()
}

func natureTechPage(p layout.Palette, w int) string {
	c := newCanvas(w, p.Light(), p.Dark())
	c.row(alignLeft, c.ink("❦", p.Primary(), true), c.gap(max(w-6, 1)), c.ink("⌬", p.Secondary(), true))
	c.row(alignLeft, swatch(p.Primary(), max(w/2-1, 1)), swatch(p.Secondary(), max(w/2-1, 1)))
	c.text(alignCenter, "grown, then computed", p.Dark(), false)
	c.row(alignLeft, swatch(p.Accent(), max(w/2-1, 1)), swatch(p.Dark(), max(w/2-1, 1)))
	return c.String()
}
