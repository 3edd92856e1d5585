// Command contentful-mcp serves club site content from Contentful over
// the Model Context Protocol.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clubstack/contentful-mcp/config"
	"github.com/clubstack/contentful-mcp/contentful"
	"github.com/clubstack/contentful-mcp/resolver"
	"github.com/clubstack/contentful-mcp/search"
	"github.com/clubstack/contentful-mcp/server"
)

const version = "0.3.0"

func main() {
	var (
		transport  string
		addr       string
		configPath string
		debug      bool
	)

	root := &cobra.Command{
		Use:          "contentful-mcp",
		Short:        "MCP server for the club site's Contentful space",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), transport, addr, configPath, debug)
		},
	}

	root.Flags().StringVar(&transport, "transport", "stdio", "transport: stdio, http, or sse")
	root.Flags().StringVar(&addr, "addr", ":8080", "listen address for http/sse transports")
	root.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, transport, addr, configPath string, debug bool) error {
	logger, err := buildLogger(debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cfg.HasCredentials() {
		logger.Warn("no contentful credentials configured, serving empty content",
			zap.String("spaceIDVar", config.EnvSpaceID),
			zap.String("accessTokenVar", config.EnvAccessToken))
	}

	client := contentful.AcquireClient(contentful.Credentials{
		SpaceID:     cfg.SpaceID,
		AccessToken: cfg.AccessToken,
		Environment: cfg.Environment,
	}, logger)

	res := resolver.New(client, logger)
	agg := search.New(res, logger)
	srv := server.New(res, agg, server.Info{Name: "contentful-mcp", Version: version}, logger)

	switch transport {
	case "stdio":
		return server.ServeStdio(ctx, srv)
	case "http", "sse":
		return serveHTTP(ctx, srv, transport, addr, logger)
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	// stdout carries the protocol on stdio transport.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func serveHTTP(ctx context.Context, srv *server.Server, transport, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	switch transport {
	case "sse":
		mux.Handle("/sse", server.ServeSSE(srv))
	default:
		mux.Handle("/mcp", server.ServeHTTP(srv))
	}

	hs := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("transport", transport))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
