package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"showcase/internal/auth"
	"showcase/internal/config"
	"showcase/internal/handler"
	"showcase/internal/middleware"
	"showcase/internal/repository/postgres"
	"showcase/internal/roles"
	"showcase/internal/service"
	authz "showcase/internal/service/auth"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.OpenLogFile(cfg.LogDir)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token verifier for the identity provider's JWKS endpoint
	verifier, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()

	// Database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Role privileges for the authorization gate
	roleRegistry, err := roles.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load role registry: %v", err)
	}
	gate := authz.NewGate(roleRegistry)

	// Services
	interactionService := service.NewInteractionService(projectRepo, txManager, gate, logger)
	lifecycleService := service.NewLifecycleService(projectRepo, txManager, gate, logger)
	queryService := service.NewQueryService(projectRepo, gate, logger)

	// Handlers
	projectHandler := handler.NewProjectHandler(queryService, logger)
	interactionHandler := handler.NewInteractionHandler(interactionService, logger)
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", projectHandler.HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("DELETE /api/projects/{id}", lifecycleHandler.SoftDelete)

	// Interaction routes
	mux.HandleFunc("POST /api/projects/{id}/like", interactionHandler.ToggleLike)
	mux.HandleFunc("POST /api/projects/{id}/share", interactionHandler.RecordShare)
	mux.HandleFunc("POST /api/projects/{id}/comments", interactionHandler.AddComment)
	mux.HandleFunc("PATCH /api/projects/{id}/comments/{commentID}", interactionHandler.EditComment)
	mux.HandleFunc("DELETE /api/projects/{id}/comments/{commentID}", interactionHandler.DeleteComment)

	// Lifecycle routes
	mux.HandleFunc("POST /api/projects/{id}/restore", lifecycleHandler.Restore)
	mux.HandleFunc("GET /api/projects/{id}/restore", lifecycleHandler.CheckRestoreEligibility)
	mux.HandleFunc("GET /api/users/me/deleted-projects", lifecycleHandler.ListMyDeleted)

	// Build middleware chain (applied in reverse order, they wrap each other)
	// Order: CORS -> Recovery -> Auth -> Routes
	var root http.Handler = mux
	root = middleware.AuthMiddleware(verifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
