package main

import (
	"database/sql"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	httpapi "joke-api/internal/api/http"
	"joke-api/internal/config"
	"joke-api/internal/jobs"
	"joke-api/internal/logger"
	"joke-api/internal/repository/postgres"
	"joke-api/internal/scheduler"
	"joke-api/internal/security"
	"joke-api/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting joke-api...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	catalogSvc := service.NewCatalogService(store.JokeRepository, rng)
	moderationSvc := service.NewModerationService(store.JokeRepository)
	authSvc := service.NewAuthService(
		store.UserRepository,
		tokenManager,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)
	analyticsSvc := service.NewAnalyticsService(store.AnalyticsRepository, cfg.Analytics)
	rateLimitSvc := service.NewRateLimitService(store.APIKeyRepository, store.AccessLogRepository, cfg.RateLimit)

	// Initialize scheduled jobs
	jobRunner := jobs.NewJobRunner(store.AccessLogRepository, store.AnalyticsRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Catalog:    catalogSvc,
		Moderation: moderationSvc,
		Auth:       authSvc,
		Analytics:  analyticsSvc,
		RateLimit:  rateLimitSvc,
		AccessLogs: store.AccessLogRepository,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
