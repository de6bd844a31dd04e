package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroker struct {
	channel string
	message interface{}
	err     error
	closed  bool
}

func (b *recordingBroker) Publish(_ context.Context, channel string, message interface{}) error {
	b.channel = channel
	b.message = message
	return b.err
}

func (b *recordingBroker) Close() error {
	b.closed = true
	return nil
}

func TestBrokerAdapter_WrapsEnvelope(t *testing.T) {
	broker := &recordingBroker{}
	a := NewBrokerAdapter(broker, "healthbridge:seeder")

	require.NoError(t, a.Publish(context.Background(), "seeder.run.completed", map[string]int{"inserted": 3}))
	assert.Equal(t, "healthbridge:seeder", broker.channel)
	assert.Equal(t, Message{Type: "seeder.run.completed", Payload: map[string]int{"inserted": 3}}, broker.message)

	require.NoError(t, a.Close())
	assert.True(t, broker.closed)
}

func TestBrokerAdapter_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	a := NewBrokerAdapter(&recordingBroker{err: boom}, "ch")

	err := a.Publish(context.Background(), "evt", nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "evt")
}

func TestNopBroker(t *testing.T) {
	var b Broker = NopBroker{}
	assert.NoError(t, b.Publish(context.Background(), "ch", "msg"))
	assert.NoError(t, b.Close())
}
