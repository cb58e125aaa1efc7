package styles

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import the panels, but they can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both modes; the preset decides light or dark.
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:         &TextPrimaryColor,
		TokenTextSecondary:       &TextSecondaryColor,
		TokenTextMuted:           &TextMutedColor,
		TokenTextDescription:     &TextDescriptionColor,
		TokenBorderDefault:       &BorderDefaultColor,
		TokenBorderHighlight:     &BorderHighlightFocusColor,
		TokenStatusSuccess:       &StatusSuccessColor,
		TokenStatusWarning:       &StatusWarningColor,
		TokenStatusError:         &StatusErrorColor,
		TokenSelectionIndicator:  &SelectionIndicatorColor,
		TokenSelectionBackground: &SelectionBackgroundColor,
		TokenCategoryActive:      &CategoryActiveColor,
		TokenOverlayTitle:        &OverlayTitleColor,
		TokenOverlayBorder:       &OverlayBorderColor,
		TokenToastSuccess:        &ToastBorderSuccessColor,
		TokenToastError:          &ToastBorderErrorColor,
		TokenToastInfo:           &ToastBorderInfoColor,
		TokenToastWarn:           &ToastBorderWarnColor,
	}

	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// This is necessary because lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	SelectedItemStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(SelectionIndicatorColor).
		Background(SelectionBackgroundColor)

	CategoryActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(CategoryActiveColor)
	BadgeStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	DescriptionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

// isValidHexColor accepts #RGB and #RRGGBB.
func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}
