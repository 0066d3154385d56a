// Package cli implements the pep621 command-line interface.
//
// # Commands
//
//   - extract: Extract declared dependencies from a manifest
//   - serve: Run the HTTP extraction service
//   - cache: Manage the extraction result cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is carried in context.Context and bridged into extraction through
// deps.Options.Logger.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pep621/internal/config"
	"github.com/matzehuels/pep621/pkg/buildinfo"
	"github.com/matzehuels/pep621/pkg/cache"
	"github.com/matzehuels/pep621/pkg/observability"
	"github.com/matzehuels/pep621/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "pep621"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configFile string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Extract dependency declarations from Python project manifests",
		Long:              `pep621 reads pyproject.toml (PEP 621, PDM, Hatch) and requirements files and reports every declared dependency with its constraint, registries and locked version.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./pep621.toml or $XDG_CONFIG_HOME/pep621/pep621.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.extractCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := LogInfo
	if parsed, err := log.ParseLevel(cfg.Log.Level); err == nil {
		level = parsed
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	if level == LogDebug {
		observability.NewLogHooks(c.Logger).Register()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
// Keys are scoped by release so an upgrade never reads older results.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// openCache opens the configured backend. A redis backend that cannot
// be reached degrades to no caching.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config == nil {
		return cache.NewNullCache(), nil
	}
	store, err := cache.Open(ctx, c.cacheOptions())
	if err != nil {
		if c.Config.Cache.Backend == cache.BackendRedis {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return store, nil
}

func (c *CLI) cacheOptions() cache.Options {
	cfg := c.Config
	return cache.Options{
		Backend: cfg.Cache.Backend,
		Dir:     cfg.Cache.Dir,
		Size:    cfg.Cache.Size,
		Redis: cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
	}
}
