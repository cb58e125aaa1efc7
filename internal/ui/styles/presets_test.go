package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets_DefineEveryToken(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, name, preset.Name)
			for _, token := range AllTokens() {
				c, ok := preset.Colors[token]
				require.True(t, ok, "preset %q is missing %s", name, token)
				require.True(t, isValidHexColor(c), "preset %q has invalid %s: %s", name, token, c)
			}
		})
	}
}

func TestPresets_OnlyKnownTokens(t *testing.T) {
	for name, preset := range Presets {
		for token := range preset.Colors {
			require.True(t, isValidToken(token), "preset %q defines unknown token %s", name, token)
		}
	}
}

func TestPresetNames_Sorted(t *testing.T) {
	require.Equal(t, []string{
		"catppuccin-latte",
		"catppuccin-mocha",
		"default",
		"dracula",
		"high-contrast",
		"nord",
	}, PresetNames())
}

func TestApplyTheme_EveryPreset(t *testing.T) {
	defer func() { require.NoError(t, ApplyTheme(ThemeConfig{})) }()

	for _, name := range PresetNames() {
		require.NoError(t, ApplyTheme(ThemeConfig{Preset: name}), name)
		require.Equal(t, Presets[name].Colors[TokenTextPrimary], TextPrimaryColor.Dark, name)
		require.Equal(t, Presets[name].Colors[TokenToastSuccess], ToastBorderSuccessColor.Dark, name)
	}
}
