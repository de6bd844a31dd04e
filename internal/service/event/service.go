package event

import (
	"context"
	"time"

	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/messaging"
)

const publishTimeout = 3 * time.Second

type EventService struct {
	publisher messaging.Publisher
	logger    *logger.Logger
}

func NewEventService(publisher messaging.Publisher, log *logger.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		logger:    log,
	}
}

// Emit publishes one event. Failures are logged and swallowed: telemetry
// never fails a run.
func (s *EventService) Emit(ctx context.Context, eventType string, payload interface{}) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		s.logger.Error(err, "failed to publish event", "event_type", eventType)
		return
	}
	s.logger.Debug("event published", "event_type", eventType)
}

func (s *EventService) RunCompleted(ctx context.Context, run RunCompleted) {
	s.Emit(ctx, TypeRunCompleted, run)
}
