package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alburdette619/docthis/languages"
	"github.com/alburdette619/docthis/logging"
	"github.com/alburdette619/docthis/metrics"
	"github.com/alburdette619/docthis/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func runMCPServer(ctx context.Context, metricsAddr string) error {
	if metricsAddr != "" {
		toolsConfig.Metrics = metrics.New()
		go serveMetrics(ctx, metricsAddr, toolsConfig.Metrics)
	}

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "docthis",
		Version: "1.0.0",
	}, nil)

	// Register document_this tool
	mcp.AddTool(s, tools.DocumentThisTool(), tools.DocumentThisHandler(toolsConfig))

	// Register apply_documentation tool
	mcp.AddTool(s, tools.ApplyDocumentationTool(), tools.ApplyDocumentationHandler(toolsConfig))

	// Register trace_node tool
	mcp.AddTool(s, tools.TraceNodeTool(), tools.TraceNodeHandler(toolsConfig))

	// Register list_documentable tool
	mcp.AddTool(s, tools.ListDocumentableTool(), tools.ListDocumentableHandler(toolsConfig))

	logging.Logger().Infow("mcp server starting", "transport", "stdio", "languages", languages.RegisteredLanguages())
	return s.Run(ctx, &mcp.StdioTransport{})
}

// serveMetrics serves the Prometheus endpoint until ctx is done.
func serveMetrics(ctx context.Context, addr string, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Logger().Infow("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Logger().Errorw("metrics endpoint failed", "addr", addr, "err", err)
	}
}
