// Package config provides configuration types, defaults and loading for stylebook.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/stylebook/internal/clipboard"
	"github.com/zjrosen/stylebook/internal/log"
)

// Sidebar width bounds, in terminal cells.
const (
	MinSidebarWidth = 20
	MaxSidebarWidth = 60
)

// Config holds all configuration options for stylebook.
type Config struct {
	// CatalogFile replaces the built-in catalog with a YAML catalog.
	CatalogFile   string          `mapstructure:"catalog_file"`
	StartCategory string          `mapstructure:"start_category"`
	UI            UIConfig        `mapstructure:"ui"`
	Theme         ThemeConfig     `mapstructure:"theme"`
	Clipboard     ClipboardConfig `mapstructure:"clipboard"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowPrompt    bool   `mapstructure:"show_prompt"`    // Show the prompt section in the details panel
	SidebarWidth  int    `mapstructure:"sidebar_width"`  // Width of the category sidebar
	Mouse         bool   `mapstructure:"mouse"`          // Enable click targets
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens. Supports both nested YAML
	// and quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// ClipboardConfig selects how copies reach the user's clipboard.
type ClipboardConfig struct {
	Method string `mapstructure:"method"` // auto (default), system, osc52, none
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// ClipboardMethod parses the configured clipboard method.
func (c Config) ClipboardMethod() (clipboard.Method, error) {
	return clipboard.ParseMethod(c.Clipboard.Method)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			ShowPrompt:    true,
			SidebarWidth:  28,
			Mouse:         true,
			MarkdownStyle: "dark",
		},
		Clipboard: ClipboardConfig{
			Method: string(clipboard.MethodAuto),
		},
	}
}

// SetDefaults registers Defaults() on v so missing keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("ui::show_prompt", d.UI.ShowPrompt)
	v.SetDefault("ui::sidebar_width", d.UI.SidebarWidth)
	v.SetDefault("ui::mouse", d.UI.Mouse)
	v.SetDefault("ui::markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("clipboard::method", d.Clipboard.Method)
}

// NewViper returns a viper instance using "::" as key delimiter so dotted
// color tokens like "text.primary" stay single keys under theme.colors.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	SetDefaults(v)
	return v
}

// Load reads the config file at path on top of Defaults() and validates it.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return Unmarshal(v)
}

// Unmarshal decodes and validates the configuration held by v.
func Unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	log.Debug(log.CatConfig, "Config loaded", "file", v.ConfigFileUsed(),
		"catalog_file", cfg.CatalogFile, "clipboard", cfg.Clipboard.Method)
	return cfg, nil
}

// Validate checks every section and joins the failures.
func Validate(cfg Config) error {
	return errors.Join(
		ValidateUI(cfg.UI),
		ValidateTheme(cfg.Theme),
		ValidateClipboard(cfg.Clipboard),
	)
}

// ValidateUI checks the UI section.
func ValidateUI(ui UIConfig) error {
	if ui.SidebarWidth < MinSidebarWidth || ui.SidebarWidth > MaxSidebarWidth {
		return fmt.Errorf("ui.sidebar_width must be between %d and %d, got %d",
			MinSidebarWidth, MaxSidebarWidth, ui.SidebarWidth)
	}
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	return nil
}

// ValidateTheme checks the theme mode. Presets and color tokens are
// validated when the theme is applied.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\" or empty, got %q", theme.Mode)
	}
}

// ValidateClipboard checks the clipboard method.
func ValidateClipboard(cb ClipboardConfig) error {
	if _, err := clipboard.ParseMethod(cb.Method); err != nil {
		return fmt.Errorf("clipboard.method: %w", err)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/stylebook/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stylebook", "config.yaml"), nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Stylebook Configuration

# Replace the built-in gallery with your own YAML catalog
# (run 'stylebook list --yaml' to see the expected shape)
# catalog_file: ~/.config/stylebook/catalog.yaml

# Category selected at startup (default: first non-mixed category)
# start_category: tech

# UI settings
ui:
  show_prompt: true       # Show the AI image prompt in the details panel
  sidebar_width: 28       # Width of the category sidebar (20-60)
  mouse: true             # Click categories, styles and swatches
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default stylebook theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   category.active: "#B197FC"
  #   toast.success: "#73F59F"

# Clipboard
clipboard:
  # auto   - OSC 52 over SSH/tmux/screen, system clipboard otherwise
  # system - pbcopy / xclip / wl-copy / Windows clipboard
  # osc52  - terminal escape sequence (works over SSH)
  # none   - never touch the clipboard
  method: auto
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
