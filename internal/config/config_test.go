package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/stylebook/internal/clipboard"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.UI.ShowPrompt)
	require.True(t, cfg.UI.Mouse)
	require.Equal(t, 28, cfg.UI.SidebarWidth)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.Equal(t, "auto", cfg.Clipboard.Method)
	require.Empty(t, cfg.CatalogFile)
	require.Empty(t, cfg.StartCategory)
	require.NoError(t, Validate(cfg))
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, Defaults().UI, cfg.UI)
	require.Equal(t, Defaults().Clipboard, cfg.Clipboard)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
catalog_file: /tmp/catalog.yaml
start_category: brand
ui:
  show_prompt: false
  sidebar_width: 40
clipboard:
  method: osc52
`)

	require.Equal(t, "/tmp/catalog.yaml", cfg.CatalogFile)
	require.Equal(t, "brand", cfg.StartCategory)
	require.False(t, cfg.UI.ShowPrompt)
	require.Equal(t, 40, cfg.UI.SidebarWidth)
	require.True(t, cfg.UI.Mouse, "unset keys keep their defaults")

	method, err := cfg.ClipboardMethod()
	require.NoError(t, err)
	require.Equal(t, clipboard.MethodOSC52, method)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorContains(t, err, "reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ui:
  sidebar_width: 5
clipboard:
  method: carrier-pigeon
`), 0o644))

	_, err := Load(path)

	require.ErrorContains(t, err, "ui.sidebar_width")
	require.ErrorContains(t, err, "clipboard.method")
}

func TestValidateUI(t *testing.T) {
	tests := []struct {
		name    string
		ui      UIConfig
		wantErr string
	}{
		{"defaults", Defaults().UI, ""},
		{"min width", UIConfig{SidebarWidth: MinSidebarWidth}, ""},
		{"max width", UIConfig{SidebarWidth: MaxSidebarWidth}, ""},
		{"too narrow", UIConfig{SidebarWidth: MinSidebarWidth - 1}, "ui.sidebar_width"},
		{"too wide", UIConfig{SidebarWidth: MaxSidebarWidth + 1}, "ui.sidebar_width"},
		{"light markdown", UIConfig{SidebarWidth: 30, MarkdownStyle: "light"}, ""},
		{"bad markdown", UIConfig{SidebarWidth: 30, MarkdownStyle: "sepia"}, "ui.markdown_style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUI(tt.ui)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateTheme(t *testing.T) {
	for _, mode := range []string{"", "dark", "light"} {
		require.NoError(t, ValidateTheme(ThemeConfig{Mode: mode}), mode)
	}
	require.ErrorContains(t, ValidateTheme(ThemeConfig{Mode: "dim"}), "theme.mode")
}

func TestValidateClipboard(t *testing.T) {
	for _, method := range []string{"", "auto", "system", "osc52", "none", "OSC52"} {
		require.NoError(t, ValidateClipboard(ClipboardConfig{Method: method}), method)
	}
	require.ErrorContains(t, ValidateClipboard(ClipboardConfig{Method: "fax"}), "clipboard.method")
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &doc))

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults().UI, cfg.UI)
	require.Equal(t, Defaults().Clipboard, cfg.Clipboard)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stylebook", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path, err := DefaultConfigPath()

	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/tester", ".config", "stylebook", "config.yaml"), path)
}
