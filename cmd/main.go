// @title Fashion Recommendation API
// @version 1.0
// @description Style quiz, aesthetic profiling and outfit recommendations
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	_ "FASHIONREC_BACK-END/docs" // This is required for swagger
	"FASHIONREC_BACK-END/internal/aesthetic"
	"FASHIONREC_BACK-END/internal/aiclient"
	"FASHIONREC_BACK-END/internal/cache"
	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/database"
	"FASHIONREC_BACK-END/internal/handlers"
	"FASHIONREC_BACK-END/internal/logging"
	"FASHIONREC_BACK-END/internal/metrics"
	"FASHIONREC_BACK-END/internal/middleware"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/routes"
)

func main() {
	log := logging.New("info")

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.SetLevel(log, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	recCache, closeCache := openCache(ctx, cfg, log)
	defer closeCache()

	m := metrics.New()

	ai := aiclient.New(cfg.AI.BaseURL, cfg.AI.Timeout, log, m)
	var remote aesthetic.RemoteAnalyzer
	var recommender handlers.Recommender
	if cfg.IsAIConfigured() {
		remote, recommender = ai, ai
	}
	analyzer := aesthetic.NewAnalyzer(remote, cfg.AI.Timeout, log, m)

	// --- HTTP Handlers ---
	h := routes.Handlers{
		Auth:            handlers.NewAuthHandler(store, &cfg.JWT, log),
		GoogleAuth:      handlers.NewGoogleAuthHandler(store.Users, cfg, log),
		Health:          handlers.NewHealthHandler(store),
		Quiz:            handlers.NewQuizHandler(store.Quizzes, analyzer, recCache, log),
		Recommendations: handlers.NewRecommendationHandler(store, recommender, recCache, cfg.Redis.CacheTTL, m, log),
		Users:           handlers.NewUserHandler(store, log),
		Outfits:         handlers.NewOutfitHandler(store, log),
	}

	opts := routes.Options{
		Config:        cfg,
		Logger:        log,
		Metrics:       m,
		Authenticator: middleware.NewAuthenticator(store.Users, &cfg.JWT, log),
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).
			TrustProxy(cfg.RateLimit.TrustProxy)
	}

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           routes.SetupRoutes(h, opts),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
	log.Info("Server stopped.")
}

func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*repository.Store, func()) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Info("Using in-memory storage")
		return repository.NewMemoryStore(), func() {}
	}

	pool, err := database.NewPool(ctx, cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if cfg.Database.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := database.Migrate(migrateCtx, pool); err != nil {
			pool.Close()
			log.Fatalf("migrate: %v", err)
		}
		log.Info("Database schema is up to date")
	}
	return repository.NewPostgresStore(pool, log), pool.Close
}

func openCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (cache.Cache, func()) {
	if !cfg.Redis.CacheEnabled {
		return cache.Noop{}, func() {}
	}
	if !cfg.IsRedisConfigured() {
		return cache.NewMemory(), func() {}
	}
	rc, err := cache.NewRedis(ctx, cfg.Redis, log)
	if err != nil {
		log.Warnf("Redis unavailable, caching recommendations in memory: %v", err)
		return cache.NewMemory(), func() {}
	}
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Warnf("redis close: %v", err)
		}
	}
}
