package messaging

import (
	"context"
	"fmt"
)

// BrokerAdapter turns a Broker into a Publisher that wraps every event in a
// Message envelope on one fixed channel.
type BrokerAdapter struct {
	broker  Broker
	channel string
}

func NewBrokerAdapter(broker Broker, channel string) *BrokerAdapter {
	return &BrokerAdapter{broker: broker, channel: channel}
}

func (a *BrokerAdapter) Publish(ctx context.Context, eventType string, payload interface{}) error {
	msg := Message{Type: eventType, Payload: payload}
	if err := a.broker.Publish(ctx, a.channel, msg); err != nil {
		return fmt.Errorf("failed to publish %s on %s: %w", eventType, a.channel, err)
	}
	return nil
}

func (a *BrokerAdapter) Close() error {
	return a.broker.Close()
}
