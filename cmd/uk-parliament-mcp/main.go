// Package main provides the CLI entry point for the uk-parliament-mcp server that connects to the UK Parliament APIs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/janisz/uk-parliament-mcp/internal/config"
	"github.com/janisz/uk-parliament-mcp/internal/server"
)

const appName = "uk-parliament-mcp"

var version = server.Version

const longDescription = `uk-parliament-mcp - UK Parliament MCP Server

This server provides access to UK Parliament data (members, bills, committees,
divisions, Hansard, written questions, treaties, statutory instruments and more)
through the Model Context Protocol (MCP) interface.

MODES:
  Default mode is stdio for use with MCP clients
  SSE mode provides real-time streaming with heartbeat (best for development/testing)
  HTTP mode is stateless and easier for production hosting with load balancers/caching

LOGGING:
  Logs are written to stderr in stdio, SSE, and HTTP modes
  Use --debug for detailed request/response logging

ENVIRONMENT:
  Every setting can also be given as PARLIAMENT_MCP_<SECTION>_<KEY>, for example
  PARLIAMENT_MCP_FETCH_TIMEOUT=10s or PARLIAMENT_MCP_CACHE_ENABLED=true.
  Command line flags win over the environment.`

const examples = `  uk-parliament-mcp                     # Start in stdio mode (default)
  uk-parliament-mcp --stdio             # Explicit stdio mode
  uk-parliament-mcp --sse               # Start SSE server on :8080
  uk-parliament-mcp --http              # Start HTTP server on :8080
  uk-parliament-mcp --sse --addr :9000  # Start SSE server on :9000
  uk-parliament-mcp --http --cache      # HTTP server with response caching
  uk-parliament-mcp --debug             # Enable debug logging`

// flagKeys maps command line flags onto configuration paths.
var flagKeys = map[string]string{
	"addr":     "server.addr",
	"debug":    "log.debug",
	"log-json": "log.json",
	"cache":    "cache.enabled",
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "UK Parliament MCP Server",
		Long:          longDescription,
		Example:       examples,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}}\n", appName))

	cmd.Flags().Bool("stdio", false, "Use stdio mode (default)")
	cmd.Flags().Bool("sse", false, "Start SSE stream server mode (real-time with heartbeat)")
	cmd.Flags().Bool("http", false, "Start HTTP server mode (stateless, easier for hosting/caching)")
	cmd.MarkFlagsMutuallyExclusive("stdio", "sse", "http")

	cmd.Flags().String("addr", ":8080", "Server address (used with --sse or --http)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().Bool("log-json", false, "Write logs as JSON instead of text")
	cmd.Flags().Bool("cache", false, "Cache upstream responses in memory")
	cmd.Flags().String("env-file", "", "Path to a .env file with PARLIAMENT_MCP_* variables")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
		},
	}
}

// resolveMode returns the transport chosen on the command line, or "" when no mode flag was set
// so the configured default applies.
func resolveMode(cmd *cobra.Command) (string, error) {
	for _, mode := range []string{config.ModeStdio, config.ModeSSE, config.ModeHTTP} {
		set, err := cmd.Flags().GetBool(mode)
		if err != nil {
			return "", fmt.Errorf("failed to get %s flag: %w", mode, err)
		}
		if set {
			return mode, nil
		}
	}
	return "", nil
}

// collectOverrides returns configuration overrides for the flags the user actually set.
func collectOverrides(cmd *cobra.Command) (map[string]any, error) {
	overrides := make(map[string]any)

	mode, err := resolveMode(cmd)
	if err != nil {
		return nil, err
	}
	if mode != "" {
		overrides["server.mode"] = mode
	}

	for flagName, key := range flagKeys {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		if flag.Value.Type() == "bool" {
			value, err := cmd.Flags().GetBool(flagName)
			if err != nil {
				return nil, fmt.Errorf("failed to get %s flag: %w", flagName, err)
			}
			overrides[key] = value
			continue
		}
		overrides[key] = flag.Value.String()
	}
	return overrides, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	overrides, err := collectOverrides(cmd)
	if err != nil {
		return nil, err
	}
	return config.Load(overrides)
}

func serverConfig(cfg *config.Config) server.Config {
	return server.Config{
		DebugMode: cfg.Log.Debug,
		LogJSON:   cfg.Log.JSON,
		Fetch:     cfg.FetchSettings(),
		Client:    cfg.ClientOptions(),
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	parliamentServer := server.NewParliamentServerWithConfig(serverConfig(cfg))

	stderr := cmd.ErrOrStderr()
	switch cfg.Server.Mode {
	case config.ModeSSE:
		fmt.Fprintf(stderr, "Starting %s SSE server on %s (debug=%v)\n", appName, cfg.Server.Addr, cfg.Log.Debug)
		fmt.Fprintf(stderr, "SSE mode provides real-time connection with heartbeat. Logs will be visible in this terminal. Use Ctrl+C to stop.\n")
		err = parliamentServer.RunSSE(ctx, cfg.Server.Addr)
	case config.ModeHTTP:
		fmt.Fprintf(stderr, "Starting %s HTTP server on %s (debug=%v)\n", appName, cfg.Server.Addr, cfg.Log.Debug)
		fmt.Fprintf(stderr, "HTTP mode is stateless and easier for hosting/caching. Logs will be visible in this terminal. Use Ctrl+C to stop.\n")
		err = parliamentServer.RunHTTP(ctx, cfg.Server.Addr)
	default:
		// stdio mode - don't print startup messages as stdout carries the MCP protocol
		err = parliamentServer.RunStdio(ctx)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
