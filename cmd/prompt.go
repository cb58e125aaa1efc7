package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/prompt"
)

var promptCopy bool

var promptCmd = &cobra.Command{
	Use:   "prompt <id>",
	Short: "Print the AI image prompt for a style",
	Long: `Print the image generator prompt for a style or mixed style.

Examples:
  stylebook prompt cyberpunk
  stylebook prompt swiss-glass --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().BoolVar(&promptCopy, "copy", false, "also copy the prompt to the clipboard")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	rec, err := findRecord(cat, args[0])
	if err != nil {
		return err
	}

	text := prompt.For(rec)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return err
	}
	if !promptCopy {
		return nil
	}

	method, err := cfg.ClipboardMethod()
	if err != nil {
		return err
	}
	if err := newClipboard(method, cmd.ErrOrStderr()).Copy(text); err != nil {
		log.ErrorErr(log.CatClipboard, "Prompt copy failed", err, "id", rec.ID())
		return fmt.Errorf("copying prompt: %w", err)
	}
	_, err = fmt.Fprintln(cmd.ErrOrStderr(), "Prompt copied to clipboard!")
	return err
}
