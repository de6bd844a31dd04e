package redis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisBroker_BadURL(t *testing.T) {
	logger := zerolog.Nop()
	_, err := NewRedisBroker(context.Background(), DefaultConfig("http://not-redis"), &logger, nil)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("redis://localhost:6379/0")
	assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
	assert.Positive(t, cfg.DialTimeout)
}
