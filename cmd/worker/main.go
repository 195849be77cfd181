package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/Domenick1991/turfbooking/config"
	"github.com/Domenick1991/turfbooking/internal/kafka"
	"github.com/Domenick1991/turfbooking/internal/notify"
)

// The worker bridges the notifications topic to the delivery sink. Delivery is
// at-most-once: a message that cannot be delivered is logged and skipped, never
// redelivered.
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewLogSender()

	var delivered, failed atomic.Int64

	if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.NotificationEvent) error {
		if err := sender.Send(ctx, event); err != nil {
			log.Printf("deliver event %s error: %v", event.EventID, err)
			failed.Add(1)
			return nil
		}
		delivered.Add(1)
		return nil
	}); err != nil && ctx.Err() == nil {
		log.Printf("consumer stopped: %v", err)
	}

	log.Printf("worker shutting down: delivered=%d failed=%d", delivered.Load(), failed.Load())
}
