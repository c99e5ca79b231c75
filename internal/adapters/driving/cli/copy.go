package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

var copyIndex int

var copyCmd = &cobra.Command{
	Use:   "copy <search>",
	Short: "Search snippets and invoke a result",
	Long: `Searches the massCode snippet library and invokes the selected
result. For a snippet result the configured action runs: copy places the
fragment on the clipboard, paste additionally sends a paste keystroke to
the foreground application.

By default the first result is invoked; use --index to pick another.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().IntVarP(&copyIndex, "index", "i", 1, "1-based index of the result to invoke")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	items := queryService.Query(cmd.Context(), args[0])
	if len(items) == 0 {
		return errors.New("no results")
	}
	if copyIndex < 1 || copyIndex > len(items) {
		return fmt.Errorf("index %d out of range (1-%d)", copyIndex, len(items))
	}

	item := items[copyIndex-1]
	if item.Kind == domain.ResultKindDiagnostic || item.Kind == domain.ResultKindInfo {
		cmd.Printf("%s\n", item.Title)
		if item.Subtitle != "" {
			cmd.Printf("%s\n", item.Subtitle)
		}
		return nil
	}

	if err := item.Invoke(cmd.Context()); err != nil {
		return fmt.Errorf("invoke failed: %w", err)
	}

	cmd.Printf("Invoked: %s\n", item.Title)
	return nil
}
