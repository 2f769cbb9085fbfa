package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpadapter "github.com/aretw0/tradein/pkg/adapters/http"
	"github.com/aretw0/tradein/pkg/adapters/mcp"
)

const shutdownTimeout = 5 * time.Second

// NewHTTPHandler builds the REST API handler of app.
func NewHTTPHandler(app *App, withMetrics bool) http.Handler {
	opts := []httpadapter.Option{httpadapter.WithLogger(app.Logger)}
	if withMetrics {
		opts = append(opts, httpadapter.WithMetricsHandler(app.Metrics.Handler()))
	}
	return httpadapter.NewHandler(app.Service, opts...)
}

// RunServe serves the REST API until ctx is done, then shuts down gracefully.
func RunServe(ctx context.Context, app *App, port int, withMetrics bool) error {
	if err := app.WatchCatalogs(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewHTTPHandler(app, withMetrics),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting tradein server", "address", srv.Addr, "metrics", withMetrics)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		app.Logger.Info("Start shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		app.Logger.Info("Server stopped gracefully")
		return nil
	}
}

// RunMCP serves the wizard tools over stdio, or over SSE when sse is set.
func RunMCP(ctx context.Context, app *App, sse bool, port int) error {
	srv := mcp.NewServer(app.Service,
		mcp.WithLogger(app.Logger),
		mcp.WithCurrency(app.Config.Symbol()),
	)
	if sse {
		return srv.ServeSSE(ctx, port)
	}
	return srv.ServeStdio()
}
