package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the agent's command surface",
	Long: `Start a Model Context Protocol (MCP) server exposing the accessibility
commands as tools: fetch_ui_elements, get_accessibility_snapshot,
start_accessibility_polling, stop_accessibility_polling,
perform_typing_action, and perform_named_action.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  ax-agent serve
  ax-agent serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from config)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (default from config)")
	serveCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	serveCfg := cfg.Serve
	if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
		serveCfg.Transport = transport
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		serveCfg.Port = port
	}
	interval := cfg.Poll.Interval
	if intervalMs, _ := cmd.Flags().GetInt("interval"); intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}

	srv, err := newMCPServer(interval)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.shutdown()

	return srv.serve(serveCfg)
}
