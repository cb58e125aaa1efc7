package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/clipboard"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

// newClipboard builds the clipboard used by non-interactive commands.
var newClipboard = func(method clipboard.Method, out io.Writer) clipboard.Clipboard {
	return clipboard.New(method, out)
}

// findRecord resolves id against styles first, then mixed styles.
func findRecord(cat *catalog.Catalog, id string) (catalog.Record, error) {
	if s, ok := cat.FindStyle(id); ok {
		return catalog.Record{Style: &s}, nil
	}
	if m, ok := cat.FindMixed(id); ok {
		return catalog.Record{Mixed: &m}, nil
	}
	return catalog.Record{}, fmt.Errorf("unknown style %q (run 'stylebook list' to see ids)", id)
}

// recordsIn returns the records listed under a category, in display order.
func recordsIn(cat *catalog.Catalog, categoryID string) []catalog.Record {
	var out []catalog.Record
	for _, id := range cat.MemberIDs(categoryID) {
		if rec, ok := cat.Lookup(categoryID, id); ok {
			out = append(out, rec)
		}
	}
	return out
}

func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
