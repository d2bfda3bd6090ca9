package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/internal/server"
	"github.com/quadrat-art/quadrat/pkg/cache"
)

// shutdownTimeout bounds how long in-flight requests may run after SIGINT.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command, an HTTP server that renders
// drawings on demand.
func newServeCmd(cfg config.Config) *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve drawings over HTTP",
		Long: `Serve starts an HTTP server rendering drawings on demand.

Endpoints:
  GET /drawing.svg?seed=&quantity=&separation=&width=&height=&style=
  GET /drawing.json
  GET /healthz
  GET /metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			c, err := newCache(cfg.Cache, noCache)
			if err != nil {
				logger.Warnf("Cache disabled: %v", err)
				c = cache.NewNullCache()
			}
			defer c.Close()

			srv := &http.Server{
				Addr:    addr,
				Handler: server.New(logger, c, cfg.Drawing).Handler(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof("Listening on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				logger.Info("Shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.Server.Addr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// newCache builds the cache backend selected by the config.
func newCache(cfg config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == "redis" {
		return cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), nil
	}
	dir, err := config.CacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
