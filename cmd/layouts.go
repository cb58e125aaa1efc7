package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/layout"
	"github.com/zjrosen/stylebook/internal/ui/preview"
)

var (
	layoutsRender string
	layoutsWidth  int
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [id...]",
	Short: "Show which preview layout each style uses",
	Long: `Print the preview layout each catalog id resolves to. Ids with no
dedicated layout resolve to "default".

Examples:
  # The full table
  stylebook layouts

  # Resolve specific ids
  stylebook layouts swiss typographic my-custom-style

  # Draw one layout with the palette of the first style using it
  stylebook layouts --render terminal`,
	RunE: runLayouts,
}

func init() {
	layoutsCmd.Flags().StringVar(&layoutsRender, "render", "", "draw the page for this layout")
	layoutsCmd.Flags().IntVarP(&layoutsWidth, "width", "w", 72, "render width in columns")
	rootCmd.AddCommand(layoutsCmd)
}

func runLayouts(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if layoutsRender != "" {
		tag, ok := layout.Parse(layoutsRender)
		if !ok {
			return fmt.Errorf("unknown layout %q", layoutsRender)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), preview.RenderTag(tag, paletteFor(cat, tag), layoutsWidth))
		return err
	}

	ids := args
	if len(ids) == 0 {
		for _, c := range cat.Categories() {
			ids = append(ids, cat.MemberIDs(c.ID)...)
		}
	}

	t := newTable("ID", "LAYOUT")
	for _, id := range ids {
		t.Row(id, layout.Resolve(id).String())
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}

// paletteFor returns the colors of the first record drawn with tag, or the
// first style's colors when no record uses it.
func paletteFor(cat *catalog.Catalog, tag layout.Tag) []string {
	for _, s := range cat.Styles() {
		if layout.Resolve(s.ID) == tag {
			return s.Colors
		}
	}
	for _, m := range cat.MixedStyles() {
		if layout.Resolve(m.ID) == tag {
			return m.Colors
		}
	}
	if styles := cat.Styles(); len(styles) > 0 {
		return styles[0].Colors
	}
	return nil
}
