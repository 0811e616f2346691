// The worker tails the domain event channel and logs every event. It is the
// consumer side of the broker the API publishes to; downstream integrations
// hang off the same channel.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/healthnet/admin-api/internal/config"
	"github.com/healthnet/admin-api/internal/service/event"
	"github.com/healthnet/admin-api/pkg/logger"
	"github.com/healthnet/admin-api/pkg/messaging"
	messagingredis "github.com/healthnet/admin-api/pkg/messaging/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{Level: cfg.Log.Level, Console: cfg.Log.Console})

	if !cfg.Redis.Enabled {
		log.Fatal(nil, "worker requires the redis broker to be enabled")
	}
	broker, err := messagingredis.NewBroker(cfg.Redis.ToBrokerConfig(), log.Zerolog())
	if err != nil {
		log.Fatal(err, "failed to connect to redis broker")
	}
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := broker.Subscribe(ctx, event.Channel)
	if err != nil {
		log.Fatal(err, "failed to subscribe to event channel")
	}
	log.With("channel", event.Channel).Info("worker listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			log.Info("worker stopping")
			return
		case raw, ok := <-messages:
			if !ok {
				log.Info("event channel closed")
				return
			}
			var evt messaging.Event
			if err := json.Unmarshal(raw, &evt); err != nil {
				log.Error(err, "failed to decode event")
				continue
			}
			log.With("type", evt.Type).With("occurred_at", evt.OccurredAt).Info("event received")
		}
	}
}
