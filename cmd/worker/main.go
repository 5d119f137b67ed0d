// Command worker subscribes to the CareHub event channels on Redis and logs
// every domain event it receives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jwalitptl/carehub-api/internal/config"
	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/messaging/redis"
	"github.com/jwalitptl/carehub-api/pkg/metrics"
)

var eventTypes = []string{
	model.EventPatientUpdated,
	model.EventAppointmentCreated,
	model.EventAppointmentUpdated,
	model.EventAppointmentCancelled,
	model.EventNoteCreated,
	model.EventNotificationRead,
	model.EventNotificationsReadAll,
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level: logger.ParseLevel(cfg.Log.Level),
		JSON:  cfg.Log.JSON,
	}).With("event_worker")

	if cfg.Redis.URL == "" {
		log.Fatal(fmt.Errorf("redis url is empty"), "the worker needs CAREHUB_REDIS_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewMetrics(cfg.Metrics.Namespace, prometheus.NewRegistry())
	broker, err := redis.NewRedisBroker(ctx, redis.Config{
		URL:           cfg.Redis.URL,
		ChannelPrefix: cfg.Redis.ChannelPrefix,
		MaxRetries:    cfg.Redis.MaxRetries,
		RetryBackoff:  cfg.Redis.RetryBackoff,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
	}, log, m)
	if err != nil {
		log.Fatal(err, "failed to connect to Redis")
	}
	defer broker.Close()

	var wg sync.WaitGroup
	for _, eventType := range eventTypes {
		msgs, err := broker.Subscribe(ctx, eventType)
		if err != nil {
			log.Fatal(err, "failed to subscribe", "channel", broker.Channel(eventType))
		}
		wg.Add(1)
		go func(channel string) {
			defer wg.Done()
			for msg := range msgs {
				log.Info("Event received",
					"channel", channel,
					"event_type", msg.Type,
					"payload", string(msg.Payload))
			}
		}(broker.Channel(eventType))
	}

	log.Info("Worker started", "channels", len(eventTypes))
	wg.Wait()
	log.Info("Worker stopped")
}
