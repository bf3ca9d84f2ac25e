package server

import (
	"io"
	"log/slog"
	"maps"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/janisz/uk-parliament-mcp/internal/catalog"
	"github.com/janisz/uk-parliament-mcp/internal/fetch"
	"github.com/janisz/uk-parliament-mcp/internal/httpclient"
)

const ServiceName = "uk-parliament-mcp"

// Version is reported to MCP clients and on the health endpoints. Set at build time.
var Version = "1.0.0"

// Config holds server configuration options
type Config struct {
	DebugMode bool
	LogJSON   bool
	// LogOutput defaults to stderr; stdout is reserved for the stdio transport.
	LogOutput io.Writer
	Fetch     fetch.Config
	Client    httpclient.Options
	// BaseURLs overrides upstream endpoints per API. Missing entries use catalog.BaseURLs.
	BaseURLs map[catalog.API]string
}

// DefaultConfig returns production settings with caching disabled.
func DefaultConfig() Config {
	return Config{
		Fetch: fetch.DefaultConfig(),
	}
}

// ParliamentServer exposes the UK Parliament APIs as MCP tools.
type ParliamentServer struct {
	server   *server.MCPServer
	fetcher  *fetch.Fetcher
	catalog  *catalog.Catalog
	bases    map[catalog.API]string
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *toolMetrics
	config   Config
}

// NewParliamentServer creates a new instance of ParliamentServer with default configuration.
func NewParliamentServer() *ParliamentServer {
	return NewParliamentServerWithConfig(DefaultConfig())
}

// NewParliamentServerWithConfig creates a new instance of ParliamentServer with custom configuration.
func NewParliamentServerWithConfig(config Config) *ParliamentServer {
	logger := newLogger(config)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, cache := httpclient.NewWithCache(config.Client)
	fetcher := fetch.New(client, config.Fetch, logger, fetch.NewMetrics(registry))

	bases := maps.Clone(catalog.BaseURLs)
	maps.Copy(bases, config.BaseURLs)

	fetchConfig := fetcher.Config()
	logger.Info("UK Parliament MCP server starting up",
		slog.String("version", Version),
		slog.Bool("debugMode", config.DebugMode),
		slog.Duration("timeout", fetchConfig.Timeout),
		slog.Int("maxAttempts", fetchConfig.MaxAttempts),
		slog.Duration("retryDelay", fetchConfig.RetryDelay),
		slog.Bool("cacheEnabled", cache != nil))

	s := &ParliamentServer{
		fetcher:  fetcher,
		catalog:  catalog.Default(),
		bases:    bases,
		logger:   logger,
		registry: registry,
		metrics:  newToolMetrics(registry),
		config:   config,
	}

	s.server = server.NewMCPServer(
		ServiceName,
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithLogging(),
	)
	s.registerTools()

	return s
}

// MCPServer returns the underlying protocol server.
func (s *ParliamentServer) MCPServer() *server.MCPServer {
	return s.server
}

// Registry returns the Prometheus registry holding the server's collectors.
func (s *ParliamentServer) Registry() *prometheus.Registry {
	return s.registry
}

// Logger returns the server's structured logger.
func (s *ParliamentServer) Logger() *slog.Logger {
	return s.logger
}

func newLogger(config Config) *slog.Logger {
	logLevel := slog.LevelInfo
	if config.DebugMode {
		logLevel = slog.LevelDebug
	}

	output := config.LogOutput
	if output == nil {
		output = os.Stderr
	}

	options := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}
	if config.LogJSON {
		return slog.New(slog.NewJSONHandler(output, options))
	}
	return slog.New(slog.NewTextHandler(output, options))
}
