// Package cli provides the command-line interface for Massbar.
package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	systemclipboard "github.com/massbar-labs/massbar-cli/internal/adapters/driven/clipboard"
	fileconfig "github.com/massbar-labs/massbar-cli/internal/adapters/driven/config/file"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driven/input"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driven/masscode"
	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driving"
	"github.com/massbar-labs/massbar-cli/internal/core/services"
	"github.com/massbar-labs/massbar-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// configDirName is the directory under the user's home that holds the
// config file.
const configDirName = ".massbar"

var verbose bool

// Services wired at startup. Commands check for nil so tests can inject
// their own implementations.
var (
	queryService    driving.QueryService
	settingsService driving.SettingsService
	snippetAPI      driven.SnippetAPI
	snippetCache    *services.SnippetCache
	stopConfigWatch func()
)

var rootCmd = &cobra.Command{
	Use:   "massbar",
	Short: "Search, copy and paste massCode snippets",
	Long: `Massbar searches the snippet library of a locally running massCode
instance. Selecting a snippet copies its fragment to the clipboard, or
copies and pastes it into the foreground application.

Search terms can be scoped with single-character prefixes:
  !term   match snippet titles only
  #term   match fragment text only
  %term   match folder names only
  |term   match tags only

Unprefixed terms match across all fields.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the services and runs the root command.
func Execute() {
	if err := initServices(); err != nil {
		logger.Error("initialisation failed: %v", err)
		os.Exit(1)
	}
	defer shutdown()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// clientHolder holds the current massCode client and swaps it when the
// base URL changes. It implements driven.SnippetAPI by delegation, so
// consumers keep a stable reference across swaps.
type clientHolder struct {
	mu     sync.RWMutex
	client *masscode.Client
}

var _ driven.SnippetAPI = (*clientHolder)(nil)

func (h *clientHolder) current() *masscode.Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.client
}

func (h *clientHolder) swap(client *masscode.Client) {
	h.mu.Lock()
	h.client = client
	h.mu.Unlock()
}

func (h *clientHolder) ListSnippets(ctx context.Context, excludeFavorites bool) ([]domain.Snippet, error) {
	return h.current().ListSnippets(ctx, excludeFavorites)
}

func (h *clientHolder) CreateSnippet(ctx context.Context, name string, folderID *int) (int, error) {
	return h.current().CreateSnippet(ctx, name, folderID)
}

func (h *clientHolder) CreateContent(ctx context.Context, snippetID int, label, language, value string) (int, error) {
	return h.current().CreateContent(ctx, snippetID, label, language, value)
}

// settingsApplier reacts to published settings changes. A base-URL change
// rebuilds the client; base-URL and favourites-exclusion changes invalidate
// the cache. Prefix and action-mode changes need no reaction, so the cache
// stays warm across them.
type settingsApplier struct {
	api     driven.SnippetAPI
	rebuild func(baseURL string)
	cache   *services.SnippetCache
	last    domain.PluginSettings
}

func (a *settingsApplier) apply(s domain.PluginSettings) {
	baseChanged := s.BaseURL != a.last.BaseURL
	excludeChanged := s.ExcludeFavorites != a.last.ExcludeFavorites
	a.last = s

	if baseChanged {
		logger.Info("base URL changed to %s, rebuilding client", s.BaseURL)
		a.rebuild(s.BaseURL)
	}
	if baseChanged || excludeChanged {
		a.cache.Configure(a.api, s.ExcludeFavorites)
	}
}

// initServices builds the full service graph: config store, settings,
// massCode client, snippet cache, action executor, and query service.
func initServices() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	store, err := fileconfig.NewConfigStore(filepath.Join(home, configDirName))
	if err != nil {
		return err
	}

	settingsSvc := services.NewSettingsService(store)
	settings := settingsSvc.Get()

	holder := &clientHolder{client: masscode.NewClient(settings.BaseURL)}

	cache := services.NewSnippetCache(holder)
	cache.Configure(holder, settings.ExcludeFavorites)

	executor := services.NewActionExecutor(systemclipboard.New(), input.New())

	querySvc := services.NewQueryService(
		cache,
		func() driven.SnippetAPI { return holder },
		systemclipboard.New(),
		executor,
		settingsSvc,
	)

	// React to settings changes, whether via the CLI or an external edit
	// of the config file.
	applier := &settingsApplier{
		api:     holder,
		rebuild: func(baseURL string) { holder.swap(masscode.NewClient(baseURL)) },
		cache:   cache,
		last:    settings,
	}
	settingsSvc.Subscribe(applier.apply)

	stop, err := store.Watch(settingsSvc.Reload)
	if err != nil {
		logger.Warn("config watch unavailable: %v", err)
	} else {
		stopConfigWatch = stop
	}

	queryService = querySvc
	settingsService = settingsSvc
	snippetAPI = holder
	snippetCache = cache
	return nil
}

func shutdown() {
	if stopConfigWatch != nil {
		stopConfigWatch()
	}
}
