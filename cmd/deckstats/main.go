package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/deckstats/deckstats/internal/app"
	"github.com/deckstats/deckstats/internal/chart"
	"github.com/deckstats/deckstats/internal/dashboard"
	dashboardhttp "github.com/deckstats/deckstats/internal/dashboard/http"
	"github.com/deckstats/deckstats/internal/observability"
	"github.com/deckstats/deckstats/internal/page"
	"github.com/deckstats/deckstats/internal/theme"
	"github.com/deckstats/deckstats/internal/view"
	"github.com/deckstats/deckstats/web"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	themes := theme.NewRegistry(cfg.DefaultTheme)
	if err := themes.LoadFS(web.Themes, "themes"); err != nil {
		logger.Error("load bundled themes", slog.Any("error", err))
		os.Exit(1)
	}
	if err := themes.LoadFile(cfg.ThemeFile); err != nil {
		logger.Error("load theme file", slog.String("path", cfg.ThemeFile), slog.Any("error", err))
		os.Exit(1)
	}
	if !themes.Has(cfg.DefaultTheme) {
		logger.Error("default theme not registered", slog.String("theme", cfg.DefaultTheme), slog.Any("available", themes.Names()))
		os.Exit(1)
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	metrics.Registerer().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	demo := chart.DemoData{}
	service := dashboard.NewService(dashboard.Options{
		Themes:    themes,
		Providers: page.Providers{Trend: demo, Cards: demo, Matchups: demo},
		Legacy:    demo,
		PlotlySrc: cfg.PlotlySrc,
		Recorder:  metrics,
		Logger:    logger,
	})
	if cfg.PlotlySrc == "" {
		logger.Warn("PLOTLY_SRC is empty, charts will show the not-loaded diagnostic")
	}
	dashboardHandler := dashboardhttp.NewHandler(logger, service, themes, templates, cfg.ExportRateLimitPerMinute)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		DashboardHandler: dashboardHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("theme", themes.Default()),
			slog.Any("themes", themes.Names()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
