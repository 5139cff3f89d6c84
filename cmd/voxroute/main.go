// voxroute engine server — answers carrier webhooks, routes calls, and
// streams call/agent events to tenant dashboards.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/voxroute/voxroute/pkg/api"
	"github.com/voxroute/voxroute/pkg/callstate"
	"github.com/voxroute/voxroute/pkg/config"
	"github.com/voxroute/voxroute/pkg/database"
	"github.com/voxroute/voxroute/pkg/events"
	"github.com/voxroute/voxroute/pkg/masking"
	"github.com/voxroute/voxroute/pkg/routing"
	"github.com/voxroute/voxroute/pkg/secrets"
	"github.com/voxroute/voxroute/pkg/services"
	"github.com/voxroute/voxroute/pkg/store"
	"github.com/voxroute/voxroute/pkg/webhook"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting voxroute", "http_port", cfg.HTTPPort)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Connect the shared store
	st := store.New(store.Config{
		Addr:      cfg.RedisAddr,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		OpTimeout: cfg.StoreOpTimeout,
	})
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}()
	if err := st.Ping(ctx); err != nil {
		// The engine degrades without Redis (no idempotency, round-robin
		// resets); routing itself still works, so this is not fatal.
		slog.Warn("Shared store unreachable at startup", "addr", cfg.RedisAddr, "error", err)
	} else {
		slog.Info("Connected to shared store", "addr", cfg.RedisAddr)
	}

	// 4. Credential encryption and domain services
	encryptor, err := secrets.NewAESEncryptor(cfg.EncryptionKey)
	if err != nil {
		slog.Error("Failed to initialize credential encryption", "error", err)
		os.Exit(1)
	}

	tenantService := services.NewTenantService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	recordService := services.NewRecordService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	directoryService := services.NewDirectoryService(dbClient.Client, encryptor)
	maskingService := masking.NewService()
	slog.Info("Services initialized")

	// 5. Routing engine, state machine, webhook pipeline
	engine := routing.NewEngine(directoryService, st)
	machine := callstate.NewMachine(dbClient.Client, st)
	ledger := webhook.NewLedger(st)
	publisher := events.NewPublisher(st)

	pipeline := webhook.NewPipeline(
		tenantService,
		sessionService,
		recordService,
		eventService,
		engine,
		machine,
		ledger,
		publisher,
		maskingService,
	)

	// 6. Streaming infrastructure
	connManager := events.NewConnectionManager(cfg.WSWriteTimeout)
	listener := events.NewListener(st, connManager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop()
	connManager.SetListener(listener)
	slog.Info("Streaming infrastructure initialized")

	// 7. HTTP server
	httpServer := api.NewServer(cfg, dbClient, st, pipeline, tenantService, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("voxroute started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop accepting webhooks first, then tear down
	// the event relay so in-flight broadcasts drain.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
