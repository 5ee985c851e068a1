package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/finn-client/api/openapi"
	"github.com/donaldgifford/finn-client/internal/api/handlers"
	"github.com/donaldgifford/finn-client/internal/api/middleware"
	"github.com/donaldgifford/finn-client/internal/finn"
	"github.com/donaldgifford/finn-client/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON proxy API",
		Long: "Serves FINN searches and ads as JSON under /api/v1, with\n" +
			"/healthz for liveness, /metrics for Prometheus and the API\n" +
			"reference at /swagger/index.html.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	shutdownTelemetry, err := telemetry.Setup(cmd.Context(), cfg.Tracing, Version, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	e := newServer(newClient(cfg, log), log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "base_url", cfg.API.BaseURL)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Warn("flushing telemetry", "err", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer wires middleware, operational endpoints and the Huma API.
func newServer(client finn.ListingClient, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("finn-client")))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	e.GET("/healthz", handlers.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("finn-client", Version))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(client))
	handlers.RegisterAdRoutes(api, handlers.NewAdHandler(client))
	openapi.RegisterRoutes(e, "finn-client API")

	return e
}
