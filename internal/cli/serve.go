package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/buildinfo"
	"github.com/01wneo/RollingText/pkg/cache"
	"github.com/01wneo/RollingText/pkg/config"
	"github.com/01wneo/RollingText/pkg/runs"
	"github.com/01wneo/RollingText/pkg/server"
)

// connectTimeout bounds the startup checks against Redis and MongoDB.
const connectTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   settingsFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolve, frames and graph endpoints over HTTP",
		Long: `Start an HTTP API. Settings from the config file and flags become the
defaults for every request; requests may override strategy and direction.

Rendered diagrams are cached in Redis when server.redis_url is set, and in
the local cache directory otherwise. Frames runs are recorded in MongoDB when
server.mongo_uri is set, and in memory otherwise.

Endpoints:
  GET  /healthz
  GET  /v1/resolve?from=19&to=23
  POST /v1/frames   {"from": "19", "to": "23", "fps": 30}
  GET  /v1/graph?from=19&to=23&format=svg
  GET  /v1/runs/{id}`,
		Example: `  rollingtext serve --addr :9090
  rollingtext serve --strategy carry-bit --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			store, keyer, err := serverCache(ctx, cfg.Server, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			runStore, err := runStore(ctx, cfg.Server)
			if err != nil {
				return err
			}
			defer runStore.Close(context.WithoutCancel(ctx))

			srv := server.New(cfg,
				server.WithCache(store, keyer),
				server.WithRunStore(runStore),
				server.WithLogger(logger),
			)

			err = srv.ListenAndServe(ctx, cfg.Server.Addr)
			if errors.Is(err, context.Canceled) {
				logger.Info("Server stopped")
				return nil
			}
			return err
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, or :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the diagram cache")

	return cmd
}

// serverCache picks Redis when configured, else the local file cache.
func serverCache(ctx context.Context, sc config.ServerConfig, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache || sc.RedisURL == "" {
		store, keyer := newCache(noCache)
		return store, keyer, nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	rc, err := cache.NewRedisCache(ctx, sc.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return cache.Observe(rc), keyer, nil
}

// runStore picks MongoDB when configured, else an in-memory store.
func runStore(ctx context.Context, sc config.ServerConfig) (runs.Store, error) {
	if sc.MongoURI == "" {
		return runs.NewMemoryStore(0), nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return runs.NewMongoStore(ctx, sc.MongoURI, sc.MongoDatabase)
}
