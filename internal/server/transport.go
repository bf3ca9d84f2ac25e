package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/janisz/uk-parliament-mcp/internal/catalog"
)

const shutdownTimeout = 10 * time.Second

// RunStdio serves MCP over stdin/stdout until ctx is cancelled or stdin closes.
func (s *ParliamentServer) RunStdio(ctx context.Context) error {
	s.logger.Debug("Starting server in stdio mode")

	stdio := server.NewStdioServer(s.server)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// RunSSE serves MCP over Server-Sent Events on addr until ctx is cancelled.
func (s *ParliamentServer) RunSSE(ctx context.Context, addr string) error {
	s.logger.Info("Starting server in SSE mode", slog.String("address", addr))

	sseServer := server.NewSSEServer(s.server,
		server.WithSSEEndpoint("/mcp"),
		server.WithMessageEndpoint("/mcp/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(10*time.Second))

	mux := s.newMux(sseServer)
	mux.Handle("/mcp/message", sseServer.MessageHandler())

	return s.serve(ctx, addr, mux, sseServer.Shutdown)
}

// RunHTTP serves MCP over stateless streamable HTTP on addr until ctx is cancelled.
func (s *ParliamentServer) RunHTTP(ctx context.Context, addr string) error {
	s.logger.Info("Starting server in HTTP mode", slog.String("address", addr))

	httpServer := server.NewStreamableHTTPServer(s.server,
		server.WithEndpointPath("/mcp"),
		server.WithStateLess(true),
		server.WithHeartbeatInterval(30*time.Second))

	return s.serve(ctx, addr, s.newMux(httpServer), httpServer.Shutdown)
}

// newMux mounts the MCP handler on /mcp next to the health and metrics endpoints.
func (s *ParliamentServer) newMux(mcpHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/mcp/health", s.handleMCPHealth)
	mux.HandleFunc("/", s.handleRoot)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.Handle("/mcp", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("MCP request received",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("userAgent", r.Header.Get("User-Agent")),
			slog.String("contentType", r.Header.Get("Content-Type")))
		mcpHandler.ServeHTTP(w, r)
	}))
	return mux
}

func (s *ParliamentServer) serve(ctx context.Context, addr string, handler http.Handler, shutdownMCP func(context.Context) error) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		if strings.Contains(err.Error(), "address already in use") {
			s.logger.Error("Port already in use",
				slog.String("address", addr),
				slog.String("suggestion", "Try a different port with --addr :8081 or stop the existing process"))
		}
		return fmt.Errorf("failed to create listener on %s: %w", addr, err)
	}

	actualAddr := listener.Addr().String()
	_, port, _ := net.SplitHostPort(actualAddr)
	s.logger.Info("HTTP server will be available with endpoints",
		slog.String("actualAddress", actualAddr),
		slog.String("health", "http://localhost:"+port+"/health"),
		slog.String("metrics", "http://localhost:"+port+"/metrics"),
		slog.String("mcp", "http://localhost:"+port+"/mcp"))

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 30 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down HTTP server", slog.String("address", actualAddr))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if shutdownMCP != nil {
			if err := shutdownMCP(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("mcp transport shutdown: %w", err))
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func (s *ParliamentServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check request received", slog.String("method", r.Method), slog.String("path", r.URL.Path))
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"service": ServiceName,
		"version": Version,
	})
}

func (s *ParliamentServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Root endpoint request", slog.String("method", r.Method), slog.String("path", r.URL.Path))
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"service": ServiceName,
		"version": Version,
		"status":  "healthy",
		"mcp":     "/mcp",
		"metrics": "/metrics",
		"tools":   s.catalog.Len() + len(catalog.Prompts()),
	})
}

func (s *ParliamentServer) handleMCPHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("MCP health check request received", slog.String("method", r.Method), slog.String("path", r.URL.Path))
	s.writeJSON(w, map[string]interface{}{
		"jsonrpc": "2.0",
		"result": map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"logging": map[string]interface{}{},
				"tools": map[string]interface{}{
					"listChanged": false,
				},
			},
			"serverInfo": map[string]interface{}{
				"name":    ServiceName,
				"version": Version,
			},
		},
	})
}

func (s *ParliamentServer) writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("Failed to encode response", slog.Any("error", err))
	}
}
