package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/turfbooking/config"
	"github.com/Domenick1991/turfbooking/internal/bootstrap"
	"github.com/Domenick1991/turfbooking/internal/cache"
	"github.com/Domenick1991/turfbooking/internal/kafka"
	"github.com/Domenick1991/turfbooking/internal/obs"
	"github.com/Domenick1991/turfbooking/internal/repository"
	"github.com/Domenick1991/turfbooking/internal/service/checkin"
	"github.com/Domenick1991/turfbooking/internal/service/moderation"
	"github.com/Domenick1991/turfbooking/internal/service/turfs"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	obs.Init()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.TurfsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	turfRepo := repository.NewTurfRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	turfService := turfs.NewTurfService(turfRepo, redisCache)
	moderationService := moderation.NewModerationService(turfRepo, redisCache, producer, cfg.Kafka.NotificationsTopic)
	checkInService := checkin.NewCheckInService(bookingRepo, turfRepo, producer, cfg.Kafka.NotificationsTopic)

	if err := bootstrap.Run(ctx, cfg, turfService, moderationService, checkInService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
