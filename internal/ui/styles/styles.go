// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Names, headings
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"} // Badges, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Description/body text

	// Semantic color names - Border
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused panels
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Focused panel

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Sidebar selection
	SelectionIndicatorColor  = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#E6E6E6", Dark: "#2D3436"}
	CategoryActiveColor      = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#B197FC"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Selection indicator style (used for ">" prefix in the sidebar)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SelectionIndicatorColor).
				Background(SelectionBackgroundColor)

	CategoryActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(CategoryActiveColor)

	BadgeStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	DescriptionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
