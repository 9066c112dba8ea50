package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/buildinfo"
	"github.com/matzehuels/gedtree/pkg/cache"
	"github.com/matzehuels/gedtree/pkg/config"
	"github.com/matzehuels/gedtree/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gedtree"

	// redisKeyPrefix scopes gedtree keys in a shared Redis instance.
	redisKeyPrefix = "gedtree:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gedtree reads GEDCOM genealogy files and answers family questions",
		Long:         `gedtree parses GEDCOM 5.5 files, recovering from the defects common in real exports, and lets you query, search, export and chart the family relationships they contain.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gedtree/config.toml)")

	// Register all subcommands
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file. Unknown keys are reported but not fatal.
func (c *CLI) loadConfig() error {
	cfg, undecoded, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, key := range undecoded {
		c.Logger.Warn("unknown config key", "key", key)
	}
	c.cfg = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cch, keyer, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cch, keyer, c.Logger)
	if ttl := c.cfg.Cache.TTL.Duration; ttl > 0 {
		r.DocumentTTL = ttl
	}
	return r, nil
}

// newCache builds the configured cache backend. An unreachable Redis falls
// back to the file cache so that commands keep working offline.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache || c.cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache(), nil, nil
	}
	if c.cfg.Cache.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: c.cfg.Cache.RedisAddr})
		if err == nil {
			return rc, cache.NewScopedKeyer(nil, redisKeyPrefix), nil
		}
		c.Logger.Warn("redis unavailable, using file cache", "addr", c.cfg.Cache.RedisAddr, "err", err)
	}

	dir, err := c.fileCacheDir()
	if err != nil {
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	return fc, nil, nil
}

// load parses file through a fresh runner.
func (c *CLI) load(ctx context.Context, file string, lf loadFlags) (*pipeline.Result, error) {
	runner, err := c.newRunner(ctx, lf.noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	return c.loadWith(ctx, runner, file, lf)
}

func (c *CLI) loadWith(ctx context.Context, runner *pipeline.Runner, file string, lf loadFlags) (*pipeline.Result, error) {
	return runner.Load(ctx, pipeline.Options{
		Path:    file,
		Strict:  lf.strict || c.cfg.Parse.Strict,
		Refresh: lf.refresh,
		Logger:  loggerFromContext(ctx),
	})
}

// loadFlags are the parse flags shared by every command that reads a file.
type loadFlags struct {
	strict  bool
	noCache bool
	refresh bool
}

func (lf *loadFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&lf.strict, "strict", false, "reject lines outside the GEDCOM 5.5 grammar")
	cmd.Flags().BoolVar(&lf.noCache, "no-cache", false, "disable the parse cache")
	cmd.Flags().BoolVar(&lf.refresh, "refresh", false, "re-parse even when a cached copy exists")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gedtree/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// fileCacheDir returns the configured cache directory or the XDG default.
func (c *CLI) fileCacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}
