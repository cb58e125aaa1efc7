package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/layout"
)

var (
	listCategory string
	listYAML     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the styles in the catalog",
	Long: `List every style and mixed style with its display number, category
and preview layout.

Examples:
  # Everything, grouped by category
  stylebook list

  # Only one category
  stylebook list --category tech
  stylebook list -C mixed

  # The catalog as YAML, ready to edit and load with catalog_file
  stylebook list --yaml > ~/.config/stylebook/catalog.yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "C", "", "only list this category id")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "print the catalog as YAML")
	listCmd.MarkFlagsMutuallyExclusive("category", "yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if listYAML {
		return cat.Encode(cmd.OutOrStdout())
	}

	categories := cat.Categories()
	if listCategory != "" {
		c, ok := cat.Category(listCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", listCategory)
		}
		categories = []catalog.Category{c}
	}

	t := newTable("#", "ID", "NAME", "CATEGORY", "LAYOUT")
	for _, c := range categories {
		for _, rec := range recordsIn(cat, c.ID) {
			pos, _ := cat.Position(rec.ID())
			t.Row(
				fmt.Sprintf("%02d", pos),
				rec.ID(),
				rec.Name(),
				c.Name,
				layout.Resolve(rec.ID()).String(),
			)
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d styles, %d mixed styles\n",
		len(cat.Styles()), len(cat.MixedStyles()))
	return err
}
