package catalog

// builtinStyles is the style table in display order. Order is significant:
// the first style of a category is its default selection.
var builtinStyles = []Style{
	// Classic & Timeless
	{
		ID:              "swiss",
		Name:            "Swiss / International Style",
		Category:        "classic",
		Description:     "Grid-based precision with clean sans-serif typography. Objective clarity meets mathematical layouts. Think Helvetica, asymmetric balance, and content that speaks for itself.",
		Colors:          []string{"#FF3B30", "#000000", "#FFFFFF", "#F5F5F5", "#1A1A1A"},
		Fonts:           Fonts{Display: "Helvetica Now Display", Body: "Inter"},
		Characteristics: []string{"Strict grid systems", "Asymmetric layouts", "Sans-serif typography", "Negative space", "Objective photography"},
		ExampleWebsite:  "Architecture Firm",
		Mood:            "Professional, Objective, Timeless",
	},
	{
		ID:              "modernism",
		Name:            "Modernism",
		Category:        "classic",
		Description:     "Form follows function. Extreme minimalism where every element must justify its existence. Rejection of ornamentation in favor of honest, functional design.",
		Colors:          []string{"#000000", "#FFFFFF", "#C0C0C0", "#333333", "#E8E8E8"},
		Fonts:           Fonts{Display: "Grotesk Nova", Body: "Inter"},
		Characteristics: []string{"Function over form", "Minimal ornamentation", "Honest materials", "Simplified geometry", "Clean lines"},
		ExampleWebsite:  "Design Studio",
		Mood:            "Pure, Honest, Essential",
	},
	{
		ID:              "bauhaus",
		Name:            "Bauhaus",
		Category:        "classic",
		Description:     "The marriage of art and industry. Geometric forms, primary colors, and the belief that design should serve humanity. Craftsmanship meets industrial production.",
		Colors:          []string{"#FF0000", "#0000FF", "#FFFF00", "#000000", "#FFFFFF"},
		Fonts:           Fonts{Display: "Bauhaus93", Body: "Work Sans"},
		Characteristics: []string{"Geometric shapes", "Primary colors", "Form follows function", "Industrial materials", "Functional furniture integration"},
		ExampleWebsite:  "Furniture Brand",
		Mood:            "Revolutionary, Geometric, Industrial",
	},
	{
		ID:              "midcentury",
		Name:            "Mid-Century Modern",
		Category:        "classic",
		Description:     "Organic curves meet clean lines. Warm minimalism that feels human. Think walnut wood, tapered legs, and forms inspired by nature.",
		Colors:          []string{"#8B4513", "#2E8B57", "#F5DEB3", "#1C1C1C", "#FF6B35"},
		Fonts:           Fonts{Display: "Futura PT", Body: "Nunito Sans"},
		Characteristics: []string{"Organic shapes", "Warm wood tones", "Tapered forms", "Natural inspiration", "Indoor-outdoor flow"},
		ExampleWebsite:  "Lifestyle Boutique",
		Mood:            "Warm, Organic, Timeless",
	},
	{
		ID:              "minimalism",
		Name:            "Minimalism",
		Category:        "classic",
		Description:     "Extreme restraint as a design philosophy. Clarity through reduction. When you remove everything unnecessary, the essential becomes undeniable.",
		Colors:          []string{"#FFFFFF", "#000000", "#F8F8F8", "#E0E0E0", "#333333"},
		Fonts:           Fonts{Display: "Söhne", Body: "Söhne"},
		Characteristics: []string{"Extreme reduction", "Maximum whitespace", "Limited palette", "Essential only", "Visual silence"},
		ExampleWebsite:  "Luxury Brand",
		Mood:            "Pure, Refined, Essential",
	},
	{
		ID:              "editorial",
		Name:            "Editorial / Print-Inspired",
		Category:        "classic",
		Description:     "Magazine-quality layouts translated to screen. Strong hierarchy, serif typography, and the drama of print design meets digital interactivity.",
		Colors:          []string{"#1A1A1A", "#FFFFFF", "#C9A959", "#8B0000", "#F4F4F4"},
		Fonts:           Fonts{Display: "Playfair Display", Body: "Source Serif Pro"},
		Characteristics: []string{"Strong hierarchy", "Serif typography", "Editorial layouts", "Dramatic contrasts", "White space as design"},
		ExampleWebsite:  "Fashion Magazine",
		Mood:            "Sophisticated, Editorial, Dramatic",
	},
	// Contemporary & Digital-First
	{
		ID:              "flat",
		Name:            "Flat Design",
		Category:        "contemporary",
		Description:     "No depth, no shadows, just pure shape and color. Flat design strips away skeuomorphism to reveal the essence of digital interfaces.",
		Colors:          []string{"#3498DB", "#E74C3C", "#2ECC71", "#F1C40F", "#9B59B6"},
		Fonts:           Fonts{Display: "Proxima Nova", Body: "Open Sans"},
		Characteristics: []string{"No depth/shadows", "Simple shapes", "Bold colors", "2D elements", "Clean icons"},
		ExampleWebsite:  "Mobile App",
		Mood:            "Clean, Modern, Approachable",
	},
	{
		ID:              "material",
		Name:            "Material Design",
		Category:        "contemporary",
		Description:     "Google's tactile UI language. Surfaces that lift, shadows that reveal depth, and motion that feels physical. Digital materials with real-world properties.",
		Colors:          []string{"#6200EE", "#03DAC6", "#FFFFFF", "#000000", "#BB86FC"},
		Fonts:           Fonts{Display: "Google Sans", Body: "Roboto"},
		Characteristics: []string{"Elevation system", "Tactile surfaces", "Motion physics", "Material metaphors", "Ink ripple effects"},
		ExampleWebsite:  "Productivity App",
		Mood:            "Tactile, Physical, Dynamic",
	},
	{
		ID:              "neumorphism",
		Name:            "Neumorphism",
		Category:        "contemporary",
		Description:     "Soft shadows create subtle depth. Elements that appear to extrude from the background. Tactile surfaces that beg to be touched.",
		Colors:          []string{"#E0E5EC", "#A3B1C6", "#FFFFFF", "#2D3436", "#636E72"},
		Fonts:           Fonts{Display: "Circular", Body: "Inter"},
		Characteristics: []string{"Soft shadows", "Subtle depth", "Tactile feel", "Monochrome palette", "Embossed elements"},
		ExampleWebsite:  "Smart Home App",
		Mood:            "Soft, Tactile, Calm",
	},
	{
		ID:              "glassmorphism",
		Name:            "Glassmorphism",
		Category:        "contemporary",
		Description:     "Frosted glass aesthetics with translucency and depth. Layers that float, blur that adds mystery, and transparency as design element.",
		Colors:          []string{"#FFFFFF", "#667EEA", "#764BA2", "#000000", "#F0F0F0"},
		Fonts:           Fonts{Display: "SF Pro Display", Body: "SF Pro Text"},
		Characteristics: []string{"Frosted glass effect", "Translucency", "Depth layering", "Blur backgrounds", "Floating elements"},
		ExampleWebsite:  "Music Player",
		Mood:            "Ethereal, Modern, Sleek",
	},
	{
		ID:              "brutalist",
		Name:            "Brutalist Web Design",
		Category:        "contemporary",
		Description:     "Raw, unpolished, intentionally harsh. Anti-design that rejects convention. Large type, bold colors, and the beauty of exposed structure.",
		Colors:          []string{"#FF0000", "#FFFF00", "#000000", "#FFFFFF", "#0000FF"},
		Fonts:           Fonts{Display: "Space Mono", Body: "JetBrains Mono"},
		Characteristics: []string{"Raw aesthetics", "Large typography", "Bold colors", "Exposed structure", "Anti-convention"},
		ExampleWebsite:  "Art Gallery",
		Mood:            "Raw, Bold, Unapologetic",
	},
	{
		ID:              "cleanui",
		Name:            "Minimal UI / Clean UI",
		Category:        "contemporary",
		Description:     "High whitespace, restrained color, and absolute clarity. Every pixel earns its place. The sophistication of saying less.",
		Colors:          []string{"#FFFFFF", "#F8F9FA", "#212529", "#DEE2E6", "#0DCAF0"},
		Fonts:           Fonts{Display: "DM Sans", Body: "DM Sans"},
		Characteristics: []string{"Generous whitespace", "Restrained colors", "Clear hierarchy", "Focused content", "Invisible UI"},
		ExampleWebsite:  "SaaS Dashboard",
		Mood:            "Clear, Focused, Sophisticated",
	},
	// Typography-Driven
	{
		ID:              "typographic",
		Name:            "Typographic / Type-First",
		Category:        "typography",
		Description:     "Layout built around text, not visuals. Typography IS the visual. Letterforms become imagery, and words become design elements.",
		Colors:          []string{"#000000", "#FFFFFF", "#FF4500", "#1A1A1A", "#F5F5F5"},
		Fonts:           Fonts{Display: "GT America", Body: "GT America"},
		Characteristics: []string{"Text as hero", "Expressive letterforms", "Variable fonts", "Word as image", "Type-driven layout"},
		ExampleWebsite:  "Typography Foundry",
		Mood:            "Bold, Expressive, Verbal",
	},
	{
		ID:              "swisstypography",
		Name:            "Swiss Typography Revival",
		Category:        "typography",
		Description:     "Helvetica meets the digital age. Grid-based precision with asymmetric layouts. The timeless power of Swiss design reimagined for screen.",
		Colors:          []string{"#FF0000", "#000000", "#FFFFFF", "#F0F0F0", "#0066CC"},
		Fonts:           Fonts{Display: "Helvetica Now", Body: "Inter"},
		Characteristics: []string{"Helvetica essence", "Strict grids", "Asymmetric balance", "Mathematical precision", "Swiss clarity"},
		ExampleWebsite:  "Financial Services",
		Mood:            "Precise, Mathematical, Clear",
	},
	{
		ID:              "experimental",
		Name:            "Experimental Typography",
		Category:        "typography",
		Description:     "Broken grids and expressive letterforms. Type that breaks rules, overlaps, distorts, and becomes unrecognizable as 'text'.",
		Colors:          []string{"#FF00FF", "#00FF00", "#000000", "#FFFFFF", "#FF6600"},
		Fonts:           Fonts{Display: "Druk Wide", Body: "ABC Favorit"},
		Characteristics: []string{"Broken grids", "Expressive forms", "Type distortion", "Overlapping elements", "Deconstructed reading"},
		ExampleWebsite:  "Creative Agency",
		Mood:            "Avant-Garde, Experimental, Bold",
	},
	{
		ID:              "editorialmax",
		Name:            "Editorial Maximal Typography",
		Category:        "typography",
		Description:     "Oversized type that dominates the frame. Dramatic contrast between tiny and massive. Typography as architectural element.",
		Colors:          []string{"#000000", "#FFDD00", "#FF0000", "#FFFFFF", "#1A1A1A"},
		Fonts:           Fonts{Display: "Ogg", Body: "Chronicle Text"},
		Characteristics: []string{"Oversized type", "Dramatic scale", "Architectural layout", "High contrast", "Theatrical presence"},
		ExampleWebsite:  "Cultural Institution",
		Mood:            "Theatrical, Dramatic, Grand",
	},
	// Expressive & Artistic
	{
		ID:              "maximalism",
		Name:            "Maximalism",
		Category:        "expressive",
		Description:     "More is more. Bold colors, dense visuals, and expressive chaos. The antidote to minimalist fatigue. Unapologetically rich and layered.",
		Colors:          []string{"#FF1493", "#00CED1", "#FFD700", "#8B008B", "#FF4500"},
		Fonts:           Fonts{Display: "Casablanca", Body: "Cooper Black"},
		Characteristics: []string{"Bold colors", "Dense layering", "Pattern mixing", "Excessive detail", "Celebration of more"},
		ExampleWebsite:  "Fashion Brand",
		Mood:            "Vibrant, Rich, Expressive",
	},
	{
		ID:              "psychedelic",
		Name:            "Psychedelic",
		Category:        "expressive",
		Description:     "Vibrant gradients and flowing forms. Surreal energy that bends perception. Colors that vibrate and shapes that flow.",
		Colors:          []string{"#FF00FF", "#00FFFF", "#FF6600", "#7B00FF", "#00FF00"},
		Fonts:           Fonts{Display: "VAG Rounded", Body: "Quicksand"},
		Characteristics: []string{"Vibrant gradients", "Flowing forms", "Surreal energy", "Color vibration", "Organic shapes"},
		ExampleWebsite:  "Music Festival",
		Mood:            "Trippy, Energetic, Surreal",
	},
	{
		ID:              "surrealism",
		Name:            "Surrealism",
		Category:        "expressive",
		Description:     "Dream-like imagery and unexpected juxtapositions. The familiar made strange. Logic subverted by imagination.",
		Colors:          []string{"#2C3E50", "#E74C3C", "#F39C12", "#FFFFFF", "#1A1A2E"},
		Fonts:           Fonts{Display: "Cormorant Garamond", Body: "EB Garamond"},
		Characteristics: []string{"Dream imagery", "Unexpected juxtapositions", "Surreal atmosphere", "Poetic logic", "Subverted reality"},
		ExampleWebsite:  "Art Foundation",
		Mood:            "Dreamy, Poetic, Strange",
	},
	{
		ID:              "collage",
		Name:            "Collage Style",
		Category:        "expressive",
		Description:     "Mixed media with cut-outs and layered textures. The aesthetic of found materials. Torn edges, overlapping planes, and handmade feel.",
		Colors:          []string{"#D4A574", "#8B4513", "#2F4F4F", "#DC143C", "#F5DEB3"},
		Fonts:           Fonts{Display: "Editorial New", Body: "Untitled Sans"},
		Characteristics: []string{"Mixed media", "Cut-out elements", "Layered textures", "Torn edges", "Found materials"},
		ExampleWebsite:  "Vintage Brand",
		Mood:            "Handmade, Layered, Nostalgic",
	},
	{
		ID:              "illustrative",
		Name:            "Illustrative Design",
		Category:        "expressive",
		Description:     "Hand-drawn or illustration-first layouts. Human touch in every stroke. Illustrations that tell stories and brands that show personality.",
		Colors:          []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"},
		Fonts:           Fonts{Display: "Fredoka One", Body: "Nunito"},
		Characteristics: []string{"Hand-drawn elements", "Illustration-first", "Storytelling visuals", "Warmth", "Personality"},
		ExampleWebsite:  "Kids Brand",
		Mood:            "Warm, Handmade, Friendly",
	},
	// Tech & Future-Facing
	{
		ID:              "futurism",
		Name:            "Futurism / Sci-Fi UI",
		Category:        "tech",
		Description:     "Neon accents in dark modes. Tech motifs and holographic elements. The aesthetic of tomorrow, today.",
		Colors:          []string{"#00FFFF", "#FF00FF", "#0A0A0F", "#1A1A2E", "#00FF88"},
		Fonts:           Fonts{Display: "Orbitron", Body: "Rajdhani"},
		Characteristics: []string{"Neon accents", "Dark mode default", "Tech motifs", "Holographic elements", "Glowing effects"},
		ExampleWebsite:  "Tech Startup",
		Mood:            "Futuristic, Tech, Glowing",
	},
	{
		ID:              "cyberpunk",
		Name:            "Cyberpunk",
		Category:        "tech",
		Description:     "High-contrast neon in urban dystopia. Glitch effects and digital decay. The beautiful chaos of a hacked future.",
		Colors:          []string{"#FF00FF", "#00FFFF", "#FF0066", "#0D0D0D", "#39FF14"},
		Fonts:           Fonts{Display: "Cyberpunk", Body: "Share Tech Mono"},
		Characteristics: []string{"High contrast neon", "Glitch effects", "Urban dystopia", "Digital decay", "Chromatic aberration"},
		ExampleWebsite:  "Gaming Platform",
		Mood:            "Edgy, Dystopian, Electric",
	},
	{
		ID:              "terminal",
		Name:            "Terminal / AI Command Center",
		Category:        "tech",
		Description:     "Futuristic, minimal, terminal-inspired UI that resembles an AI command center. Dark high-contrast aesthetic with system status language and HUD-like elements.",
		Colors:          []string{"#000000", "#00FF41", "#00FFFF", "#0066FF", "#0A0A0A"},
		Fonts:           Fonts{Display: "JetBrains Mono", Body: "IBM Plex Mono"},
		Characteristics: []string{"Dark background", "Neon green/cyan text", "Monospace fonts", "System status language", "Scanline effects", "Blinking cursor"},
		ExampleWebsite:  "AI Dashboard",
		Mood:            "Tech, Operational, Futuristic",
	},
	{
		ID:              "data",
		Name:            "Data-Driven / Infographic",
		Category:        "tech",
		Description:     "Charts, systems, and visualized logic. Information as beauty. Complex data rendered with clarity and elegance.",
		Colors:          []string{"#2196F3", "#4CAF50", "#FF9800", "#F44336", "#9C27B0"},
		Fonts:           Fonts{Display: "IBM Plex Mono", Body: "IBM Plex Sans"},
		Characteristics: []string{"Data visualization", "Chart integration", "System diagrams", "Logical layout", "Information beauty"},
		ExampleWebsite:  "Analytics Platform",
		Mood:            "Logical, Data-Rich, Clear",
	},
	{
		ID:              "algorithmic",
		Name:            "AI-Generated / Algorithmic",
		Category:        "tech",
		Description:     "Procedural patterns and generative visuals. Design that creates itself. Mathematics made visible.",
		Colors:          []string{"#6366F1", "#8B5CF6", "#EC4899", "#06B6D4", "#10B981"},
		Fonts:           Fonts{Display: "Space Grotesk", Body: "JetBrains Mono"},
		Characteristics: []string{"Procedural patterns", "Generative visuals", "Mathematical beauty", "Dynamic elements", "Self-creating design"},
		ExampleWebsite:  "AI Product",
		Mood:            "Procedural, Dynamic, Mathematical",
	},
	// Brand & Culture-Driven
	{
		ID:              "luxury",
		Name:            "Luxury Minimalism",
		Category:        "brand",
		Description:     "Sparse layouts with high-contrast serif typography. The power of less. Exclusivity through restraint.",
		Colors:          []string{"#000000", "#FFFFFF", "#C9A227", "#1A1A1A", "#D4AF37"},
		Fonts:           Fonts{Display: "Canela", Body: "Söhne"},
		Characteristics: []string{"Sparse layout", "High contrast serif", "Exclusivity", "Premium feel", "Restrained elegance"},
		ExampleWebsite:  "Luxury Fashion",
		Mood:            "Exclusive, Refined, Premium",
	},
	{
		ID:              "corporate",
		Name:            "Corporate Modern",
		Category:        "brand",
		Description:     "Safe, scalable, clean enterprise design. Trust through familiarity. Professional without being boring.",
		Colors:          []string{"#0052CC", "#FFFFFF", "#36B37E", "#FFAB00", "#172B4D"},
		Fonts:           Fonts{Display: "Gilroy", Body: "Roboto"},
		Characteristics: []string{"Safe and scalable", "Clean enterprise", "Trustworthy feel", "Professional", "Familiar patterns"},
		ExampleWebsite:  "Enterprise SaaS",
		Mood:            "Professional, Trustworthy, Clean",
	},
	{
		ID:              "playful",
		Name:            "Playful / Friendly",
		Category:        "brand",
		Description:     "Rounded type, bright colors, and approachability. Design that smiles. No sharp edges, no serious faces.",
		Colors:          []string{"#FF6B35", "#4ECDC4", "#FFE66D", "#95E1D3", "#F38181"},
		Fonts:           Fonts{Display: "Baloo 2", Body: "Quicksand"},
		Characteristics: []string{"Rounded typography", "Bright colors", "Approachable", "No sharp edges", "Friendly vibe"},
		ExampleWebsite:  "Kids App",
		Mood:            "Fun, Friendly, Approachable",
	},
	{
		ID:              "handcrafted",
		Name:            "Handcrafted / Organic",
		Category:        "brand",
		Description:     "Imperfect lines, natural textures, and warmth. The beauty of handmade in a digital world. Authenticity over perfection.",
		Colors:          []string{"#8B7355", "#D2B48C", "#556B2F", "#F5F5DC", "#2F4F4F"},
		Fonts:           Fonts{Display: "Recoleta", Body: "Untitled Sans"},
		Characteristics: []string{"Imperfect lines", "Natural textures", "Organic feel", "Handmade warmth", "Authentic"},
		ExampleWebsite:  "Artisan Brand",
		Mood:            "Authentic, Warm, Handmade",
	},
	{
		ID:              "retro",
		Name:            "Retro / Nostalgic",
		Category:        "brand",
		Description:     "70s-90s visual language reinterpreted for today. Nostalgia with a modern twist. The familiar past, freshly rendered.",
		Colors:          []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"},
		Fonts:           Fonts{Display: "Avenir Next", Body: "American Typewriter"},
		Characteristics: []string{"70s-90s aesthetics", "Nostalgic color", "Modern reinterpretation", "Vintage feel", "Retro patterns"},
		ExampleWebsite:  "Vintage Coffee Shop",
		Mood:            "Nostalgic, Vintage, Warm",
	},
}

var builtinMixed = []MixedStyle{
	{
		ID:             "swiss-glass",
		Name:           "Swiss + Glassmorphism",
		Description:    "The precision of Swiss grids meets ethereal glass layers. Structure meets translucency.",
		Colors:         []string{"#667EEA", "#764BA2", "#FF3B30", "#000000", "#FFFFFF"},
		ParentStyles:   []string{"Swiss / International", "Glassmorphism"},
		ExampleWebsite: "Fintech Dashboard",
	},
	{
		ID:             "brutal-cyber",
		Name:           "Brutalist + Cyberpunk",
		Description:    "Raw anti-design collided with neon dystopia. Harsh meets electric.",
		Colors:         []string{"#FF0066", "#00FFFF", "#FF0000", "#0D0D0D", "#FFFF00"},
		ParentStyles:   []string{"Brutalist", "Cyberpunk"},
		ExampleWebsite: "Gaming Brand",
	},
	{
		ID:             "minimal-luxury",
		Name:           "Minimalist + Luxury",
		Description:    "Extreme restraint meets high-end elegance. Less becomes exclusively more.",
		Colors:         []string{"#000000", "#FFFFFF", "#D4AF37", "#1A1A1A", "#C9A227"},
		ParentStyles:   []string{"Minimalism", "Luxury Minimalism"},
		ExampleWebsite: "High-End Jewelry",
	},
	{
		ID:             "editorial-max",
		Name:           "Editorial + Maximalism",
		Description:    "Dramatic print layouts embrace abundance. Sophistication meets celebration.",
		Colors:         []string{"#FF1493", "#000000", "#FFD700", "#FFFFFF", "#8B0000"},
		ParentStyles:   []string{"Editorial", "Maximalism"},
		ExampleWebsite: "Luxury Magazine",
	},
	{
		ID:             "retro-futurism",
		Name:           "Retro + Futurism",
		Description:    "Nostalgic past meets speculative future. Yesterday's tomorrow, today.",
		Colors:         []string{"#FF6B35", "#00FFFF", "#FF00FF", "#0A0A0F", "#FFA500"},
		ParentStyles:   []string{"Retro", "Futurism"},
		ExampleWebsite: "Music Platform",
	},
	{
		ID:             "nature-tech",
		Name:           "Organic + Algorithmic",
		Description:    "Natural imperfection meets mathematical precision. Human meets machine.",
		Colors:         []string{"#2ECC71", "#6366F1", "#8B7355", "#06B6D4", "#D2B48C"},
		ParentStyles:   []string{"Handcrafted", "AI-Generated"},
		ExampleWebsite: "Sustainable Tech",
	},
}

var builtinCategories = []Category{
	{ID: "classic", Name: "Classic & Timeless", Icon: "🏛️"},
	{ID: "contemporary", Name: "Contemporary", Icon: "💻"},
	{ID: "typography", Name: "Typography-Driven", Icon: "🔤"},
	{ID: "expressive", Name: "Expressive & Artistic", Icon: "🎭"},
	{ID: "tech", Name: "Tech & Future", Icon: "🚀"},
	{ID: "brand", Name: "Brand & Culture", Icon: "🏷️"},
	{ID: "mixed", Name: "Mixed Styles", Icon: "🧪"},
}
