package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PauloHFS/goth-paginator/internal/config"
	"github.com/PauloHFS/goth-paginator/internal/i18n"
	"github.com/PauloHFS/goth-paginator/internal/logging"
	"github.com/PauloHFS/goth-paginator/internal/middleware"
	"github.com/PauloHFS/goth-paginator/internal/routes"
	"github.com/PauloHFS/goth-paginator/internal/telemetry"
	"github.com/PauloHFS/goth-paginator/internal/view"
	"github.com/PauloHFS/goth-paginator/internal/web"
)

// loadCatalog returns the built-in tables when no file is configured.
func loadCatalog(cfg *config.Config) (*i18n.Catalog, error) {
	if cfg.LabelsFile == "" {
		return i18n.NewCatalog(), nil
	}
	return i18n.LoadCatalog(cfg.LabelsFile)
}

func newRenderer(cfg *config.Config, catalog *i18n.Catalog) *view.Renderer {
	return view.NewRenderer(web.CatalogLabels(catalog), view.WithCacheSize(cfg.LabelCacheSize))
}

func RunServer() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logFormat := "json"
	if cfg.Env == "dev" {
		logFormat = "text"
	}
	logging.Init(logging.Options{Level: cfg.LogLevel, Format: logFormat})
	logger := logging.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		Exporter: cfg.OTelExporter,
		Endpoint: cfg.OTelEndpoint,
		Service:  "goth-paginator",
	})
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		panic(err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		logger.Error("failed to load label catalog", "error", err)
		panic(err)
	}
	if cfg.LabelsFile != "" {
		if err := catalog.Watch(ctx, cfg.LabelsFile); err != nil {
			logger.Warn("label catalog hot reload disabled", "error", err)
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(ctx)

	mux := http.NewServeMux()
	mux.Handle("GET "+routes.Metrics, promhttp.Handler())

	// Registrar handlers de negócio
	web.RegisterRoutes(mux, web.HandlerDeps{
		Config:   cfg,
		Renderer: newRenderer(cfg, catalog),
	})

	handler := middleware.Recovery(
		limiter.Middleware(
			middleware.SecurityHeaders(cfg.Env == "prod")(
				middleware.Logger(
					middleware.Locale(mux),
				),
			),
		),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           gzhttp.GzipHandler(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server started", "port", cfg.Port, "style", cfg.Style, "max_pages", cfg.MaxPagesToShow)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("server stopping")

	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited properly")
}
