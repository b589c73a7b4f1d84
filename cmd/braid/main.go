// Braid orchestration server — turns chat requests into verified
// multi-service workflows and serves the HTTP API in front of the engine.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/braid-labs/braid/pkg/api"
	"github.com/braid-labs/braid/pkg/catalog"
	"github.com/braid-labs/braid/pkg/cleanup"
	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/database"
	"github.com/braid-labs/braid/pkg/executor"
	"github.com/braid-labs/braid/pkg/guides"
	"github.com/braid-labs/braid/pkg/links"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/masking"
	"github.com/braid-labs/braid/pkg/observability"
	"github.com/braid-labs/braid/pkg/orchestrator"
	"github.com/braid-labs/braid/pkg/pending"
	"github.com/braid-labs/braid/pkg/planner"
	"github.com/braid-labs/braid/pkg/registry"
	"github.com/braid-labs/braid/pkg/rollout"
	"github.com/braid-labs/braid/pkg/services"
	"github.com/braid-labs/braid/pkg/slots"
	"github.com/braid-labs/braid/pkg/tools"
	"github.com/braid-labs/braid/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadSealer builds the token sealer from TOKEN_ENCRYPTION_KEY
// (hex-encoded 32 bytes).
func loadSealer() (*services.TokenSealer, error) {
	keyHex := os.Getenv("TOKEN_ENCRYPTION_KEY")
	if keyHex == "" {
		return nil, errors.New("TOKEN_ENCRYPTION_KEY is not set")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.New("TOKEN_ENCRYPTION_KEY is not valid hex")
	}
	return services.NewTokenSealer(key)
}

func main() {
	// Parse command-line flags
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

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting braid",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

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

	// 3. Domain services
	sealer, err := loadSealer()
	if err != nil {
		slog.Error("Failed to initialize token sealer", "error", err)
		os.Exit(1)
	}
	tokenService := services.NewTokenService(dbClient.Client, sealer)
	pendingService := services.NewPendingActionService(dbClient.Client)
	linkService := services.NewLinkService(dbClient.Client)
	commandLogService := services.NewCommandLogService(dbClient.Client)
	stepLogService := services.NewStepLogService(dbClient.Client)
	recorder := observability.NewRecorder(commandLogService, stepLogService, masking.NewService())
	slog.Info("Services initialized")

	// 4. Tool registry and skill contracts
	toolRegistry := registry.NewRegistry(cfg.Registry.SpecsDir)
	if _, err := toolRegistry.ListServices(); err != nil {
		slog.Error("Failed to load tool specs", "dir", cfg.Registry.SpecsDir, "error", err)
		os.Exit(1)
	}
	contracts := registry.NewContractStore(cfg.Registry.ContractsDir)
	if err := contracts.Load(); err != nil {
		slog.Error("Failed to load skill contracts", "dir", cfg.Registry.ContractsDir, "error", err)
		os.Exit(1)
	}
	normalizer, err := slots.New(cfg.Registry.SlotsOverrideFile)
	if err != nil {
		slog.Error("Failed to load slot schemas", "error", err)
		os.Exit(1)
	}

	// 5. LLM clients. Planning degrades to the rule planner when no
	// provider is configured, so an LLM failure is not fatal.
	llmClients, err := llm.BuildClients(cfg)
	if err != nil {
		slog.Warn("LLM unavailable, planning falls back to rules", "error", err)
		llmClients = nil
	}

	// 6. Engine wiring
	toolTimeout := time.Duration(cfg.Executor.ToolTimeoutSec) * time.Second
	invoker := tools.NewHTTPInvoker(toolRegistry, tokenService, toolTimeout)
	catalogCache := catalog.New()
	guideLoader := guides.NewLoader(cfg.Guides)

	var plannerClient, autofillClient executor.Summarizer
	deps := orchestrator.Deps{
		Registry: toolRegistry,
		Rule:     planner.NewRulePlanner(toolRegistry, guideLoader, cfg.Executor),
		Invoker:  invoker,
		Scopes:   tokenService,
		Slots:    normalizer,
		Links:    links.NewWriter(linkService),
		Recorder: recorder,
		Rollout:  rollout.NewController(cfg.FeatureRegistry),
		Config:   cfg,
	}
	if llmClients != nil {
		plannerClient = llmClients.Planner
		autofillClient = llmClients.Autofill
		deps.LLM = planner.NewLLMPlanner(toolRegistry, llmClients.Planner)
		deps.Stepwise = planner.NewStepwisePlanner(toolRegistry, catalogCache, llmClients.Planner, cfg)
		deps.Action = llmClients.Planner
	}
	deps.Executor = executor.New(invoker, toolRegistry, contracts, plannerClient, autofillClient, cfg.Executor)

	switch cfg.Pending.Store {
	case config.PendingStoreMemory:
		deps.Pending = pending.NewMemoryStore()
	case config.PendingStoreDB:
		deps.Pending = pending.NewDBStore(pendingService)
	default:
		deps.Pending = pending.NewAutoStore(pendingService)
	}

	engine := orchestrator.New(deps)
	slog.Info("Engine initialized", "pending_store", cfg.Pending.Store)

	// 7. Retention loop
	cleanupService := cleanup.NewService(cfg.Retention, pendingService, commandLogService, stepLogService, catalogCache)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	server := api.NewServer(dbClient, engine, tokenService, linkService, stepLogService, deps.Pending)
	httpServer := server.NewHTTPServer(":" + httpPort)

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}
