package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/layout"
	"github.com/zjrosen/stylebook/internal/ui/preview"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

var (
	showWidth     int
	showNoPreview bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a style's details and preview",
	Long: `Print the details of a style or mixed style followed by its rendered
preview page.

Examples:
  stylebook show swiss
  stylebook show brutal-cyber --width 100
  stylebook show terminal --no-preview`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 72, "render width in columns")
	showCmd.Flags().BoolVar(&showNoPreview, "no-preview", false, "skip the rendered preview")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if showWidth < 20 {
		return fmt.Errorf("--width must be at least 20, got %d", showWidth)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	rec, err := findRecord(cat, args[0])
	if err != nil {
		return err
	}

	out := renderRecord(cat, rec, showWidth)
	if !showNoPreview {
		out += "\n\n" + preview.Render(rec, showWidth)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// renderRecord formats rec as plain terminal text.
func renderRecord(cat *catalog.Catalog, rec catalog.Record, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	section := lipgloss.NewStyle().Bold(true).Foreground(styles.TextSecondaryColor)
	pos, _ := cat.Position(rec.ID())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styles.HintStyle.Render(fmt.Sprintf("%02d", pos)), title.Render(rec.Name()))
	fmt.Fprintf(&b, "%s\n\n", styles.HintStyle.Render(rec.ID()+" · layout "+layout.Resolve(rec.ID()).String()))
	b.WriteString(wordwrap.String(rec.Description(), width))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Colors") + "\n")
	for _, c := range rec.Colors() {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(c)).
			Foreground(styles.ContrastText(c)).
			Render("  " + c + "  ")
		b.WriteString(chip + " ")
	}
	b.WriteString("\n")

	switch {
	case rec.Style != nil:
		s := rec.Style
		fmt.Fprintf(&b, "\n%s\n", section.Render("Typography"))
		fmt.Fprintf(&b, "Display: %s\nBody:    %s\n", s.Fonts.Display, s.Fonts.Body)
		if len(s.Characteristics) > 0 {
			fmt.Fprintf(&b, "\n%s\n", section.Render("Key Characteristics"))
			for _, c := range s.Characteristics {
				fmt.Fprintf(&b, "• %s\n", c)
			}
		}
		if s.Mood != "" {
			fmt.Fprintf(&b, "\nMood: %s\n", s.Mood)
		}
	case rec.Mixed != nil:
		fmt.Fprintf(&b, "\n%s\n", section.Render("Parent Styles"))
		fmt.Fprintf(&b, "%s\n", strings.Join(rec.Mixed.ParentStyles, " + "))
	}

	fmt.Fprintf(&b, "\nBest for: %s", rec.ExampleWebsite())
	return b.String()
}
