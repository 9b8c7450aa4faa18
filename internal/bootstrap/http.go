package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bookcourier/ui-gateway/config"
	httpx "github.com/bookcourier/ui-gateway/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

const shutdownTimeout = 10 * time.Second

// RunHTTPServer starts the gateway HTTP server and blocks until ctx is
// cancelled, then drains in-flight requests before returning.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Sessions:     cfg.Services.Sessions,
		Books:        cfg.Services.Books,
		Orders:       cfg.Services.Orders,
		Wishlist:     cfg.Services.Wishlist,
		Reviews:      cfg.Services.Reviews,
		Admin:        cfg.Services.Admin,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		CookieSecure: cfg.Config.HTTP.CookieSecure,
		Logger:       logger,
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
