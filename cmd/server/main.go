package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storecopy-backend/internal/ai"
	"storecopy-backend/internal/api"
	"storecopy-backend/internal/config"
	"storecopy-backend/internal/handlers"
	"storecopy-backend/internal/mailer"
	"storecopy-backend/internal/services"
	"storecopy-backend/internal/storage"
	"storecopy-backend/internal/store/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	log.Println("Starting StoreCopy Backend...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize Database Connection Pool
	dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer dbCancel()

	dbpool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Unable to create database connection pool: %v\n", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(dbCtx); err != nil {
		log.Fatalf("FATAL: Unable to ping database: %v\n", err)
	}
	log.Println("Database connection pool established and pinged successfully.")

	// 3. Initialize Dependencies (Store, Gateway, Services, Handlers)
	pgStore := postgres.NewPostgresStore(dbpool)
	log.Println("Postgres store initialized.")

	gateway := ai.NewOpenAIGateway(cfg.OpenAIKey, cfg.OpenAIModel, cfg.AIMaxTokens, float32(cfg.AITemperature), cfg.AITimeout)
	log.Printf("AI gateway initialized (model=%s).", cfg.OpenAIModel)

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		log.Printf("SMTP mailer initialized (host=%s).", cfg.SMTPHost)
	} else {
		mail = mailer.LogMailer{}
		log.Println("No SMTP host configured, using log mailer.")
	}

	uploader, err := storage.NewLocalUploader(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize upload storage: %v", err)
	}
	log.Printf("Local uploader initialized (dir=%s).", cfg.UploadDir)

	// --- Initialize Services ---
	authService := services.NewAuthService(pgStore, mail, cfg)
	log.Println("AuthService initialized.")
	generationService := services.NewGenerationService(gateway, cfg.MaxImageBytes)
	log.Println("GenerationService initialized.")
	contentService := services.NewContentService(pgStore)
	log.Println("ContentService initialized.")
	storeService := services.NewStoreService(pgStore)
	log.Println("StoreService initialized.")
	productService := services.NewProductService(pgStore)
	log.Println("ProductService initialized.")

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	generationHandler := handlers.NewGenerationHandler(generationService, cfg.MaxImageBytes)
	contentHandler := handlers.NewContentHandler(contentService)
	storeHandler := handlers.NewStoreHandler(storeService)
	productHandler := handlers.NewProductHandler(productService)
	uploadHandler := handlers.NewUploadHandler(uploader, cfg.MaxImageBytes)
	log.Println("Handlers initialized.")

	// 4. Setup Router & Inject Dependencies
	routerDeps := api.RouterDependencies{
		AuthHandler:       authHandler,
		GenerationHandler: generationHandler,
		ContentHandler:    contentHandler,
		StoreHandler:      storeHandler,
		ProductHandler:    productHandler,
		UploadHandler:     uploadHandler,
		Config:            cfg,
	}
	router := api.NewRouter(routerDeps)
	log.Println("HTTP router configured.")

	// 5. Configure and Start HTTP Server
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// Production hardening: Set timeouts to avoid Slowloris attacks.
		// WriteTimeout must cover a full generation round trip including
		// the gateway's retry.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting and listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on %s: %v\n", cfg.HTTPPort, err)
		}
		log.Println("Server listener routine stopped.")
	}()

	<-stopChan
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server graceful shutdown failed: %v", err)
		log.Fatal("Forcing shutdown due to error.")
	}

	log.Println("Server shutdown complete.")
}
