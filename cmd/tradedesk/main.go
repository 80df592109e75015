package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tradedesk/tradedesk/internal/catalog"
	"github.com/tradedesk/tradedesk/internal/config"
	"github.com/tradedesk/tradedesk/internal/engine"
	"github.com/tradedesk/tradedesk/internal/handler"
	"github.com/tradedesk/tradedesk/internal/service"
	"github.com/tradedesk/tradedesk/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/api/v1/health, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/health", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Instrument catalog: built-in table, or a YAML file when configured.
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	logger.Info("catalog loaded", slog.Int("instruments", cat.Len()))

	// Stores.
	orderStore := store.NewOrderStore()
	tradeStore := store.NewTradeStore()
	portfolioStore := store.NewPortfolioStore()

	// Engine.
	ledger := engine.NewLedger(portfolioStore)
	executor := engine.NewExecutor(cat, orderStore, tradeStore, ledger)

	// Services.
	orderSvc := service.NewOrderService(executor, cat, orderStore, tradeStore)
	portfolioSvc := service.NewPortfolioService(portfolioStore, cat)
	instrumentSvc := service.NewInstrumentService(cat)

	// Router.
	router := handler.NewRouter(orderSvc, portfolioSvc, instrumentSvc, logger)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown. In-memory state is simply discarded.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
