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

	"go-ats-dashboard/config"
	_ "go-ats-dashboard/docs" // swagger spec
	v1 "go-ats-dashboard/internal/delivery/http/v1"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/repository/memory"
	"go-ats-dashboard/internal/repository/postgres"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/auth"
	"go-ats-dashboard/pkg/database"
	"go-ats-dashboard/pkg/logger"
	"go-ats-dashboard/pkg/redis"
	"go-ats-dashboard/pkg/storage"
	"go-ats-dashboard/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           ATS Dashboard API
// @version         1.0
// @description     Candidate and job tracking API behind the ATS dashboard.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting ATS dashboard API", "port", cfg.Port, "backend", cfg.StoreBackend)
	gin.SetMode(cfg.GinMode)

	auditLog := audit.New("ats-api", cfg.GinMode)
	defer func() { _ = auditLog.Sync() }()

	ctx := context.Background()
	checks := map[string]usecase.HealthCheck{}

	// 3. Setup Repositories
	var (
		candidateRepo domain.CandidateRepository
		jobRepo       domain.JobRepository
		userRepo      domain.UserRepository
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := postgres.Bootstrap(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to bootstrap schema", "error", err)
			os.Exit(1)
		}
		if cfg.SeedData {
			if err := postgres.SeedIfEmpty(ctx, dbPool, memory.SeedCandidates(), memory.SeedJobs()); err != nil {
				logger.Log.Error("Failed to seed database", "error", err)
				os.Exit(1)
			}
		}
		candidateRepo = postgres.NewCandidateRepository(dbPool)
		jobRepo = postgres.NewJobRepository(dbPool)
		userRepo = postgres.NewUserRepository(dbPool)
		checks["database"] = dbPool.Ping
	default:
		latency := memory.Latency{}
		if cfg.SimulatedLatency {
			latency = memory.DefaultLatency().Scaled(cfg.LatencyScale)
		}
		var (
			seedCandidates []domain.Candidate
			seedJobs       []domain.Job
		)
		if cfg.SeedData {
			seedCandidates, seedJobs = memory.SeedCandidates(), memory.SeedJobs()
		}
		candidateRepo = memory.NewCandidateRepository(latency, seedCandidates)
		jobRepo = memory.NewJobRepository(latency, seedJobs)
		userRepo = memory.NewUserRepository()
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	opts := []usecase.Option{usecase.WithAudit(auditLog)}
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
		} else {
			defer func() { _ = redis.Close() }()
			redisClient = redis.Client()
			opts = append(opts, usecase.WithStatsCache(redis.NewCache(redisClient)))
			checks["redis"] = redis.HealthCheck
		}
	}

	// 5. Setup Export Archive (optional)
	var archive storage.Archive
	if cfg.ExportArchiveEnabled() {
		archive, err = storage.NewS3Archive(ctx, storage.Config{
			Provider:        storage.Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.ExportBucket,
			WasabiEndpoint:  cfg.WasabiEndpoint,
		})
		if err != nil {
			logger.Log.Warn("Export archive disabled", "error", err)
			archive = nil
		}
	}

	// 6. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, opts...)
	jobUC := usecase.NewJobUsecase(jobRepo, validate, opts...)
	dashboardUC := usecase.NewDashboardUsecase(candidateUC, jobUC, cfg.StatsCacheTTL, opts...)
	exportUC := usecase.NewExportUsecase(candidateUC, jobUC, archive, opts...)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, opts...)
	healthUC := usecase.NewHealthUsecase(cfg.StoreBackend, checks)

	if err := usecase.SeedAdmin(ctx, userRepo, cfg.AdminEmail, cfg.AdminPasswordHash); err != nil {
		logger.Log.Error("Failed to seed admin user", "error", err)
		os.Exit(1)
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		JobUC:       jobUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		HealthUC:    healthUC,
		Tokens:      tokens,
		Audit:       auditLog,
		Redis:       redisClient,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
