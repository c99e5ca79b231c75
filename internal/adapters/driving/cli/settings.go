package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage launcher settings",
	Long: `View and configure the massCode endpoint, the result action, and
the query prefixes. Settings persist in ~/.massbar/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <option> <value>",
	Short: "Set a single option",
	Long: `Set a single option and persist it.

Available options:
  baseUrl           massCode API endpoint (default http://localhost:4321)
  copySnippet       true = copy only, false = copy and paste (default true)
  excludeFavorites  drop favourite snippets from results (default false)
  titlePrefix       prefix scoping a term to snippet titles (default !)
  textPrefix        prefix scoping a term to fragment text (default #)
  folderPrefix      prefix scoping a term to folder names (default %)
  tagPrefix         prefix scoping a term to tags (default |)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[massCode]")
	cmd.Printf("  Base URL: %s\n", settings.BaseURL)
	cmd.Printf("  Exclude favourites: %t\n", settings.ExcludeFavorites)
	cmd.Println()

	cmd.Println("[Action]")
	cmd.Printf("  Mode: %s\n", settings.Action.Description())
	cmd.Println()

	cmd.Println("[Search Prefixes]")
	cmd.Printf("  Title:  %c\n", settings.Prefixes.Title)
	cmd.Printf("  Text:   %c\n", settings.Prefixes.Text)
	cmd.Printf("  Folder: %c\n", settings.Prefixes.Folder)
	cmd.Printf("  Tag:    %c\n", settings.Prefixes.Tag)

	return nil
}

//nolint:gocyclo // one case per settable option
func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	option, value := args[0], args[1]
	settings := settingsService.Get()

	switch option {
	case "baseUrl":
		settings.BaseURL = value
	case "copySnippet":
		copyOnly, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copySnippet expects true or false, got %q", value)
		}
		if copyOnly {
			settings.Action = domain.ActionModeCopy
		} else {
			settings.Action = domain.ActionModePaste
		}
	case "excludeFavorites":
		exclude, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("excludeFavorites expects true or false, got %q", value)
		}
		settings.ExcludeFavorites = exclude
	case "titlePrefix":
		settings.Prefixes.Title = parsePrefixValue(value)
	case "textPrefix":
		settings.Prefixes.Text = parsePrefixValue(value)
	case "folderPrefix":
		settings.Prefixes.Folder = parsePrefixValue(value)
	case "tagPrefix":
		settings.Prefixes.Tag = parsePrefixValue(value)
	default:
		return fmt.Errorf("unknown option %q, see 'massbar settings set --help'", option)
	}

	if err := settingsService.Update(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", option, strings.TrimSpace(value))
	return nil
}

// parsePrefixValue maps a raw option value to a prefix rune. Invalid
// values yield 0, which normalisation replaces with the default.
func parsePrefixValue(value string) rune {
	return domain.PrefixFromString(value)
}
