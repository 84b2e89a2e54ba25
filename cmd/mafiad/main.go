package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/mafiad/internal/common/clock"
	"github.com/KirkDiggler/mafiad/internal/common/uuid"
	"github.com/KirkDiggler/mafiad/internal/config"
	"github.com/KirkDiggler/mafiad/internal/handlers/api"
	"github.com/KirkDiggler/mafiad/internal/metrics"
	"github.com/KirkDiggler/mafiad/internal/random"
	"github.com/KirkDiggler/mafiad/internal/repositories/game"
	"github.com/KirkDiggler/mafiad/internal/services/mafia"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Env)

	// Cancel on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
		TTL:         cfg.ArchiveTTL,
	})
	if err != nil {
		logger.Error("redis connect", "err", err)
		os.Exit(1)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(registry)
	if err != nil {
		logger.Error("metrics", "err", err)
		os.Exit(1)
	}

	// Initialize mafia service
	mafiaSvc, err := mafia.New(&mafia.Config{
		GameRepo:      gameRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Random:        random.New(&random.Config{Seed: cfg.RandomSeed}),
		Metrics:       m,
		Logger:        logger,
		Capacity:      cfg.RoomCapacity,
		MinPlayers:    cfg.MinPlayers,
	})
	if err != nil {
		logger.Error("mafia service", "err", err)
		os.Exit(1)
	}

	server, err := api.New(&api.Config{
		Addr:         cfg.HTTPAddr,
		CORSAllow:    cfg.CORSAllow,
		MafiaService: mafiaSvc,
		Metrics:      metrics.Handler(registry),
		Logger:       logger,
	})
	if err != nil {
		logger.Error("server", "err", err)
		os.Exit(1)
	}

	if err := server.Start(); err != nil {
		logger.Error("server start", "err", err)
		os.Exit(1)
	}

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("server.shutdown.start")

	// release blocked callers and end every stream before draining requests
	mafiaSvc.Close()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("server.shutdown", "err", err)
	}

	logger.Info("server.shutdown.complete")
}
