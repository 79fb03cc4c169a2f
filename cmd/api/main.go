package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	adapterHTTP "github.com/danielv14/skymning/internal/adapters/handler/http"
	"github.com/danielv14/skymning/internal/adapters/cache"
	"github.com/danielv14/skymning/internal/adapters/repository"
	"github.com/danielv14/skymning/internal/config"
	"github.com/danielv14/skymning/internal/core/domain"
	"github.com/danielv14/skymning/internal/core/services"
	"github.com/danielv14/skymning/internal/core/workers"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	rdb := connectRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	userRepo := repository.NewPostgresUserRepository(db.DB)

	var entryRepo domain.EntryRepository = repository.NewPostgresEntryRepository(db)
	var insightCache services.InsightMessageCache
	if rdb != nil {
		entryRepo = repository.NewCachedEntryRepository(entryRepo, rdb)
		insightCache = cache.NewRedisInsightCache(rdb)
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	streakWorker := workers.NewStreakWorker(userRepo, entryRepo)
	streakWorker.Start(workerCtx)

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenDuration, userRepo)
	entryService := services.NewEntryService(entryRepo, streakWorker)
	analyticsService := services.NewAnalyticsService(entryRepo, insightCache)
	summaryService := services.NewSummaryService(entryRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, tokenService),
		EntryHandler:     adapterHTTP.NewEntryHandler(entryService),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(analyticsService, userRepo),
		SummaryHandler:   adapterHTTP.NewSummaryHandler(summaryService),
		TokenService:     tokenService,
		DB:               db,
		Redis:            rdb,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Skymning journal API running on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

// connectRedis returns nil when redis is not configured or unreachable; the
// API then runs without the rate limiter and the caches.
func connectRedis(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled() {
		log.Println("Redis not configured, running without cache and rate limiter.")
		return nil
	}

	rdb, err := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Warning: redis unavailable, continuing without it: %v", err)
		return nil
	}

	log.Println("Redis connected successfully.")
	return rdb
}
