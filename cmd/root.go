package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/stylebook/internal/app"
	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/clipboard"
	"github.com/zjrosen/stylebook/internal/config"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/selection"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

func init() {
	// Query the terminal before bubbletea takes over stdin.
	_ = lipgloss.HasDarkBackground()
}

var (
	version     = "dev"
	cfgFile     string
	cfg         config.Config
	debugFlag   bool
	noClipboard bool
	noColor     bool
	cfgErr      error
)

var rootCmd = &cobra.Command{
	Use:   "stylebook",
	Short: "A terminal gallery of web design styles",
	Long: `Browse a catalog of web design styles by category, preview each one
as a small rendered page, copy palette colors and copy a ready-made prompt
for AI image generators.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	RunE:              runApp,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/stylebook/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log and enable the log overlay (ctrl+x)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "never write to the clipboard")
}

// initConfig resolves the config file. A missing default file is created
// with commented defaults; a missing explicit file is an error reported
// from preRun.
func initConfig() {
	v := config.NewViper()
	cfgErr = nil

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if path, err := config.DefaultConfigPath(); err == nil {
		v.SetConfigFile(path)
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			if writeErr := config.WriteDefaultConfig(path); writeErr != nil {
				log.Warn(log.CatConfig, "Could not create default config", "path", path, "error", writeErr)
				v.SetConfigFile("")
			}
		}
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgFile != "" || !errors.As(err, &notFound) {
				cfgErr = fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
				return
			}
		}
	}

	cfg, cfgErr = config.Unmarshal(v)
}

func preRun(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	return nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	debug := debugFlag || os.Getenv("STYLEBOOK_DEBUG") != ""
	if debug {
		cleanup, err := log.InitWithTeaLog("stylebook-debug.log", "stylebook")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "Starting stylebook", "version", version)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if cfg.StartCategory != "" {
		if _, ok := cat.Category(cfg.StartCategory); !ok {
			return fmt.Errorf("start_category %q is not in the catalog", cfg.StartCategory)
		}
	}

	method, err := cfg.ClipboardMethod()
	if err != nil {
		return err
	}
	if noClipboard {
		method = clipboard.MethodNone
	}

	ctlOpts := []selection.Option{selection.WithClipboard(clipboard.New(method, os.Stderr))}
	if cfg.StartCategory != "" {
		ctlOpts = append(ctlOpts, selection.WithInitialCategory(cfg.StartCategory))
	}
	ctl := selection.New(cat, ctlOpts...)

	model := app.New(app.Options{
		Controller: ctl,
		UI:         cfg.UI,
		Debug:      debug,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
