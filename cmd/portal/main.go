package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/velvet-portal/velvet-portal/internal/app"
	"github.com/velvet-portal/velvet-portal/internal/auth"
	"github.com/velvet-portal/velvet-portal/internal/catalog"
	"github.com/velvet-portal/velvet-portal/internal/observability"
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
	if cfg.UsesDefaultSecret() {
		logger.Warn("using the development signing secret; set JWT_SECRET before deploying")
	}

	directory, err := auth.NewStaticDirectory(auth.DefaultSeeds())
	if err != nil {
		logger.Error("build identity directory", slog.Any("error", err))
		os.Exit(1)
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(directory)
	authHandler := auth.NewHandler(logger, authService, tokens)

	catalogProvider := catalog.NewFileProvider(cfg.CatalogPath)
	catalogHandler := catalog.NewHandler(logger, catalogProvider)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		AuthHandler:    authHandler,
		CatalogHandler: catalogHandler,
		Guard:          auth.RequireAuth(tokens),
		Metrics:        metrics,
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
			slog.String("feedback_form", cfg.FeedbackFormURL),
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
