package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shlokkku/Ageis-AI/internal/cli"
	"github.com/shlokkku/Ageis-AI/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the pipeline as an MCP Server.
This allows AI agents (like Claude Desktop) to ask pension questions as a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		rt, err := cli.BuildRuntime(cmd.Context(), cfg)
		if err != nil {
			log.Fatalf("Error initializing ageis: %v", err)
		}
		defer rt.Close()

		srv := mcp.NewServer(rt.Pipeline, rt.Logger)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			rt.Logger.Info("Starting Ageis MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				rt.Logger.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			rt.Logger.Info("Starting Ageis MCP Server (SSE)", "port", port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					rt.Logger.Error("MCP Server execution failed", "err", err)
					os.Exit(1)
				}
			}
			rt.Logger.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
