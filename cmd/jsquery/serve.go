package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/internal/presentation/tui"
	httpAdapter "github.com/aretw0/jsquery/pkg/adapters/http"
	"github.com/aretw0/jsquery/pkg/adapters/memory"
	"github.com/aretw0/jsquery/pkg/adapters/redis"
	"github.com/aretw0/jsquery/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP render server",
		Long: `Starts the render service, exposing the JSON API described by /openapi.yaml
and Prometheus metrics on /metrics.

With --redis-addr, rendered code is cached in Redis and replicas share a
render lock, so each chain is built once across the fleet. Without it the
cache lives in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			opts, closeStore, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()
			engine := a.engine(append(opts, jsquery.WithMetrics(observability.NewMetrics(reg)))...)

			handler, err := httpAdapter.NewHandler(engine,
				httpAdapter.WithLogger(a.logger),
				httpAdapter.WithGatherer(reg),
			)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", a.cfg.Serve.Port),
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			tui.PrintBanner(cmd.ErrOrStderr())

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("starting jsquery server", "addr", srv.Addr, "entries", a.catalog.Len())
				serverErrors <- srv.ListenAndServe()
			}()

			// Channel to listen for interrupt or terminate signals.
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)

			case sig := <-shutdown:
				a.logger.Info("start shutdown", "signal", sig.String())

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					a.logger.Error("graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
					if err := srv.Close(); err != nil {
						return fmt.Errorf("could not stop server: %w", err)
					}
				}
				a.logger.Info("jsquery server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	cmd.Flags().String("redis-addr", "", "Redis address (host:port) for the shared render cache")
	cmd.Flags().Duration("cache-ttl", 24*time.Hour, "Expiration of cached renders (0 keeps them)")
	cmd.Flags().Int("cache-size", 10000, "Maximum number of renders kept in the in-memory cache")
	bindFlag(cmd.Flags(), "port", "serve.port")
	bindFlag(cmd.Flags(), "redis-addr", "serve.redis_addr")
	bindFlag(cmd.Flags(), "cache-ttl", "serve.cache_ttl")
	bindFlag(cmd.Flags(), "cache-size", "serve.cache_size")
	return cmd
}

// store returns the cache and lock options of the serve configuration and a
// function releasing their connections.
func (a *app) store(ctx context.Context) ([]jsquery.Option, func(), error) {
	sc := a.cfg.Serve
	if sc.RedisAddr == "" {
		a.logger.Info("using in-memory render cache", "size", sc.CacheSize, "ttl", sc.CacheTTL)
		return []jsquery.Option{
			jsquery.WithCache(a.memoryCache()),
			jsquery.WithLocker(memory.NewLocker(), sc.LockTTL),
		}, func() {}, nil
	}

	c, err := a.redisCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("using redis render cache", "addr", sc.RedisAddr, "db", sc.RedisDB, "ttl", sc.CacheTTL)
	release := func() {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "err", err)
		}
	}
	return []jsquery.Option{
		jsquery.WithCache(c),
		jsquery.WithLocker(redis.NewLocker(c.Client(), sc.CachePrefix), sc.LockTTL),
	}, release, nil
}

func (a *app) memoryCache() *memory.Cache {
	sc := a.cfg.Serve
	return memory.NewCache(memory.WithTTL(sc.CacheTTL), memory.WithMaxEntries(sc.CacheSize))
}

func (a *app) redisCache(ctx context.Context) (*redis.Cache, error) {
	sc := a.cfg.Serve
	c := redis.New(sc.RedisAddr, sc.RedisPassword, sc.RedisDB,
		redis.WithPrefix(sc.CachePrefix),
		redis.WithTTL(sc.CacheTTL),
	)
	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.Client().Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", sc.RedisAddr, err)
	}
	return c, nil
}
