package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/pkg/logger"
)

// Emitter records domain events for later publication.
type Emitter interface {
	Emit(ctx context.Context, eventType string, payload interface{}) error
}

type EventService struct {
	outboxRepo repository.OutboxRepository
	logger     *logger.Logger
}

func NewEventService(outboxRepo repository.OutboxRepository, log *logger.Logger) *EventService {
	return &EventService{
		outboxRepo: outboxRepo,
		logger:     log,
	}
}

// Emit writes an event to the outbox. The outbox processor publishes it.
func (s *EventService) Emit(ctx context.Context, eventType string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	event := &model.OutboxEvent{
		EventType: eventType,
		Payload:   payloadJSON,
	}
	if id := logger.RequestID(ctx); id != "" {
		event.Headers = map[string]string{"request_id": id}
	}

	if err := s.outboxRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}

// Record emits and only logs a failure; a mutation that already succeeded is
// never failed because its event could not be stored.
func Record(ctx context.Context, e Emitter, log *logger.Logger, eventType string, payload interface{}) {
	if e == nil {
		return
	}
	if err := e.Emit(ctx, eventType, payload); err != nil {
		log.Error(err, "Failed to record event", "event_type", eventType)
	}
}
