// cmd/textbook-rsa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "textbook_rsa_service/internal/api/rest/v1"
	"textbook_rsa_service/internal/app"
	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/infrastructure/cryptography"
	"textbook_rsa_service/internal/infrastructure/persistence"
	"textbook_rsa_service/internal/infrastructure/persistence/models"
	"textbook_rsa_service/internal/pkg/config"
	"textbook_rsa_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	keypairService keys.KeypairService
	messageService keys.MessageService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.KeypairModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repository
	keypairRepo, err := persistence.NewGormKeypairRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair repository: %w", err)
	}

	// Initialize the arithmetic components
	oracle, err := cryptography.NewFermatOracle(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality oracle: %w", err)
	}

	searcher, err := cryptography.NewPrimeSearcher(oracle, cfg.KeyGen.MaxSearchAttempts, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime searcher: %w", err)
	}

	solver, err := cryptography.NewModularInverseSolver(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create modular inverse solver: %w", err)
	}

	generator, err := cryptography.NewKeypairGenerator(searcher, solver, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair generator: %w", err)
	}

	codec, err := cryptography.NewBlockCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create block codec: %w", err)
	}

	cipher, err := cryptography.NewCipher(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	messageCipher, err := cryptography.NewMessageCipher(codec, cipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message cipher: %w", err)
	}

	// Initialize services
	keypairService, err := app.NewKeypairService(generator, keypairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair service: %w", err)
	}

	messageService, err := app.NewMessageService(keypairRepo, messageCipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		keypairService: keypairService,
		messageService: messageService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.keypairService, deps.messageService)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
