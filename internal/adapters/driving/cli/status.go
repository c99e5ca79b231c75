package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show massCode connection status",
	Long: `Fetches the snippet library and reports how many snippets are
available. Useful to verify that massCode is running and reachable.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if snippetCache == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	settings := settingsService.Get()
	snippetCache.EnsureFresh(cmd.Context())

	cmd.Printf("Endpoint: %s\n", settings.BaseURL)

	if lastErr := snippetCache.LastError(); lastErr != "" && snippetCache.Count() == 0 {
		cmd.Println("Status:   unreachable")
		cmd.Printf("Error:    %s\n", lastErr)
		return nil
	}

	cmd.Println("Status:   connected")
	cmd.Printf("Snippets: %d\n", snippetCache.Count())
	return nil
}
