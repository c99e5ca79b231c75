package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query [search]",
	Short: "Search snippets and print the results",
	Long: `Searches the massCode snippet library and prints the matching
fragments. Each result shows the snippet name and its fragment details.

Prefix terms to scope them: !title #text %folder |tag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	search := ""
	if len(args) > 0 {
		search = args[0]
	}

	items := queryService.Query(cmd.Context(), search)

	if queryJSON {
		return outputQueryJSON(cmd, items)
	}
	return outputQueryTable(cmd, items)
}

// queryItemJSON is the JSON projection of a result item. The bound action
// is not serialisable and is omitted.
type queryItemJSON struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Kind     string `json:"kind"`
}

func outputQueryJSON(cmd *cobra.Command, items []domain.ResultItem) error {
	out := make([]queryItemJSON, len(items))
	for i := range items {
		out[i] = queryItemJSON{
			Title:    items[i].Title,
			Subtitle: items[i].Subtitle,
			Kind:     string(items[i].Kind),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, items []domain.ResultItem) error {
	if len(items) == 0 {
		cmd.Println("No results.")
		return nil
	}

	for i := range items {
		cmd.Printf("  [%d] %s\n", i+1, items[i].Title)
		if items[i].Subtitle != "" {
			cmd.Printf("      %s\n", items[i].Subtitle)
		}
	}
	return nil
}
