package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the shared render cache",
	}

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached render from Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Serve.RedisAddr == "" {
				return errors.New("no redis address configured (use --redis-addr or JSQUERY_SERVE_REDIS_ADDR)")
			}
			c, err := a.redisCache(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			n, err := c.Purge(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d cached renders\n", n)
			return nil
		},
	}
	purge.Flags().String("redis-addr", "", "Redis address (host:port)")
	bindFlag(purge.Flags(), "redis-addr", "serve.redis_addr")

	cmd.AddCommand(purge)
	return cmd
}
