package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/pkg/adapters/mcp"
	"github.com/aretw0/jsquery/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Starts jsquery as an MCP Server.
This allows AI agents to render chains and browse the jQuery API as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, _ := cmd.Flags().GetString("transport")
			port, _ := cmd.Flags().GetInt("port")

			engine := a.engine(jsquery.WithCache(memory.NewCache()))
			srv := mcp.NewServer(engine, a.logger)

			switch transport {
			case "stdio":
				// Ensure logs don't corrupt JSON-RPC on Stdout
				log.SetOutput(os.Stderr)
				a.logger.Info("starting jsquery MCP server (stdio)")
				return srv.ServeStdio()
			case "sse":
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				if err := srv.ServeSSE(ctx, port); err != nil {
					return err
				}
				a.logger.Info("MCP server stopped gracefully")
				return nil
			default:
				return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
			}
		},
	}
	cmd.Flags().StringP("transport", "t", "stdio", "Transport to use (stdio, sse)")
	cmd.Flags().IntP("port", "p", 8080, "Port for SSE server")
	return cmd
}
