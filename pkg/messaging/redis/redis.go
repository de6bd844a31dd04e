package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/healthbridge-seeder/pkg/circuitbreaker"
	"github.com/jwalitptl/healthbridge-seeder/pkg/messaging"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
)

type RedisBroker struct {
	client  *redis.Client
	cb      *circuitbreaker.CircuitBreaker
	logger  *zerolog.Logger
	metrics *metrics.Metrics
}

type Config struct {
	URL          string
	MaxRetries   int
	RetryBackoff time.Duration
	PoolSize     int
	DialTimeout  time.Duration
}

// DefaultConfig suits a handful of publishes per process.
func DefaultConfig(url string) Config {
	return Config{
		URL:          url,
		MaxRetries:   2,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     2,
		DialTimeout:  3 * time.Second,
	}
}

func NewRedisBroker(ctx context.Context, config Config, logger *zerolog.Logger, m *metrics.Metrics) (messaging.Broker, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.MaxRetries = config.MaxRetries
	opts.MinRetryBackoff = config.RetryBackoff
	opts.PoolSize = config.PoolSize
	if config.DialTimeout > 0 {
		opts.DialTimeout = config.DialTimeout
	}

	cb := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
		Name:        "redis-broker",
		MaxFailures: 3,
		Timeout:     5 * time.Second,
	})

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBroker{
		client:  client,
		cb:      cb,
		logger:  logger,
		metrics: m,
	}, nil
}

func (b *RedisBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = b.cb.Execute(func() error {
		return b.client.Publish(ctx, channel, payload).Err()
	})
	if b.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		b.metrics.RedisOperations.WithLabelValues("publish", status).Inc()
	}
	if err != nil {
		return err
	}

	b.logger.Debug().Str("channel", channel).Int("bytes", len(payload)).Msg("published message")
	return nil
}

func (b *RedisBroker) Close() error {
	return b.client.Close()
}
