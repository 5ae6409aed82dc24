package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	_ "github.com/redmonkez12/mini-auth-api/docs" // Swagger docs (generated)
	"github.com/redmonkez12/mini-auth-api/internal/auth"
	"github.com/redmonkez12/mini-auth-api/internal/cache"
	"github.com/redmonkez12/mini-auth-api/internal/config"
	"github.com/redmonkez12/mini-auth-api/internal/database"
	httpServer "github.com/redmonkez12/mini-auth-api/internal/http"
	"github.com/redmonkez12/mini-auth-api/internal/logging"
	"github.com/redmonkez12/mini-auth-api/internal/supabase"
	"github.com/redmonkez12/mini-auth-api/internal/user"
)

// @title           Mini User Authentication System API
// @version         1.0
// @description     User registration and profile lookup backed by a hosted Postgres store.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"supabase_url", cfg.Store.URL,
		"supabase_key", cfg.Store.MaskedKey(),
	)

	ctx := context.Background()

	// Initialize user store
	store, closeStore, err := initStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer closeStore()

	// Initialize optional profile cache
	var profileCache user.ProfileCache
	if cfg.Redis.CacheEnabled() {
		redisClient, err := initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()

		profileCache = cache.NewProfileCache(redisClient, cfg.Redis.TTL)
		logger.Info("profile cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL.String())
	}

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	// Initialize user service and HTTP handlers
	userService := user.NewService(store, hasher, profileCache, logger)
	userHandler := user.NewHandler(userService)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpServer.NewMetrics(registry)

	// Initialize router
	router := httpServer.NewRouter(cfg, userHandler, userService, metrics, logger)

	// Initialize HTTP server
	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initStore builds the user store for the configured driver and returns a matching close func
func initStore(ctx context.Context, cfg config.StoreConfig) (user.Store, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverPostgREST:
		client, err := supabase.NewRESTClient(cfg.URL, cfg.Key)
		if err != nil {
			return nil, nil, err
		}
		return user.NewPostgRESTRepository(client), func() {}, nil

	case config.StoreDriverPostgres:
		db, err := database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		return user.NewRepository(db), func() { db.Close() }, nil
	}

	return nil, nil, errors.New("unsupported store driver: " + cfg.Driver)
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
