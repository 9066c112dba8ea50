package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/internal/server"
	"github.com/matzehuels/gedtree/pkg/config"
	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/store"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		storeName string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve uploaded GEDCOM files over an HTTP API",
		Long: `Run the HTTP API. Uploaded files are kept in the configured store
(memory, sqlite or mongo) and parsed through the configured cache.`,
		Example: `  gedtree serve
  gedtree serve --addr :9000 --store sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			if storeName == "" {
				storeName = c.cfg.Server.Store
			}
			return c.serve(cmd.Context(), addr, storeName)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&storeName, "store", "", "document store: memory, sqlite, mongo")

	return cmd
}

func (c *CLI) serve(ctx context.Context, addr, storeName string) error {
	st, err := c.openStore(ctx, storeName)
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(st, runner, c.Logger, server.Config{
		Export: export.Options{DateLayout: c.cfg.Export.DateLayout},
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("starting gedtree API", "addr", addr, "store", storeName)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openStore opens the named document store using the server settings.
func (c *CLI) openStore(ctx context.Context, name string) (store.Store, error) {
	switch name {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreSQLite:
		st, err := store.NewSQLiteStore(store.SQLiteConfig{Path: c.cfg.Server.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return st, nil
	case config.StoreMongo:
		st, err := store.NewMongoStore(ctx, store.MongoConfig{
			URI:      c.cfg.Server.MongoURI,
			Database: c.cfg.Server.MongoDatabase,
		})
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return st, nil
	}
	return nil, fmt.Errorf("unknown store %q (must be 'memory', 'sqlite' or 'mongo')", name)
}
