package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/nmehta/movebot/internal/auth"
	"github.com/nmehta/movebot/internal/authz"
	"github.com/nmehta/movebot/internal/bot"
	"github.com/nmehta/movebot/internal/config"
	"github.com/nmehta/movebot/internal/credstore"
	"github.com/nmehta/movebot/internal/database"
	"github.com/nmehta/movebot/internal/delta"
	"github.com/nmehta/movebot/internal/listing"
	"github.com/nmehta/movebot/internal/metrics"
	"github.com/nmehta/movebot/internal/telegram"
	"github.com/nmehta/movebot/internal/version"
)

func main() {
	// .env is optional; config values can reference its variables.
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/movebot.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting movebot",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"bot_api_url", cfg.Bot.APIURL,
		"exchange_url", cfg.Exchange.BaseURL,
		"allowed_users", len(cfg.Auth.AllowedUserIDs),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to the credential store database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	cipher, err := credstore.NewCipher(cfg.Encryption.Key)
	if err != nil {
		logger.Error("failed to initialize credential cipher", "error", err)
		os.Exit(1)
	}
	creds := credstore.New(pool, cipher, logger)

	allowlist := authz.NewAllowlist(cfg.Auth.AllowedUserIDs, logger)

	// Each flow opens a fresh exchange session bound to the caller's
	// decrypted credential pair.
	newClient := func(apiKey, apiSecret string) listing.ProductSource {
		return delta.NewClient(
			cfg.Exchange.BaseURL,
			auth.NewSigner(apiKey, apiSecret),
			delta.WithLogger(logger),
			delta.WithTimeout(cfg.Exchange.Timeout),
			delta.WithRetries(cfg.Exchange.MaxRetries, time.Second),
		)
	}

	lister := listing.NewService(allowlist, creds, newClient,
		listing.Config{FetchTimeout: cfg.Listing.FetchTimeout}, logger)

	// Chat transport and routing
	tgClient := telegram.NewClient(cfg.Bot.APIURL, cfg.Bot.Token, telegram.WithLogger(logger))
	router := telegram.NewRouter(tgClient, cfg.Bot.PollTimeout, logger)

	handler := bot.NewMoveListHandler(tgClient, lister, logger)
	handler.Register(router)

	// Metrics and health server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createMetricsHandler(cfg.Metrics.Path, pool),
	}

	go func() {
		logger.Info("starting metrics server", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	logger.Info("movebot running",
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
	)

	// Poll for updates until shutdown
	if err := router.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("update loop failed", "error", err)
	}

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	metricsServer.Shutdown(shutdownCtx)

	logger.Info("movebot stopped")
}

// createMetricsHandler serves Prometheus metrics plus a health check
// covering the credential store connection.
func createMetricsHandler(metricsPath string, pool *pgxpool.Pool) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricsPath, metrics.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
