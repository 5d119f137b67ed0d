package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
)

type OutboxRepository struct {
	s   *Store
	now func() time.Time
}

func NewOutboxRepository(s *Store) *OutboxRepository {
	return &OutboxRepository{s: s, now: time.Now}
}

var _ repository.OutboxRepository = (*OutboxRepository)(nil)

func (r *OutboxRepository) Create(ctx context.Context, event *model.OutboxEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.Payload == nil {
		return fmt.Errorf("event payload cannot be nil")
	}

	event.ID = uuid.New()
	event.CreatedAt = r.now().UTC()
	event.Status = model.OutboxStatusPending

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.outbox = append(r.s.outbox, cloneEvent(event))
	return nil
}

// GetPendingEvents returns up to limit pending events, oldest first.
func (r *OutboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var events []*model.OutboxEvent
	for _, e := range r.s.outbox {
		if limit > 0 && len(events) >= limit {
			break
		}
		if e.Status == model.OutboxStatusPending {
			events = append(events, cloneEvent(e))
		}
	}
	return events, nil
}

func (r *OutboxRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.outbox {
		if e.ID != id {
			continue
		}
		e.Status = status
		e.ErrorMessage = errMsg
		switch status {
		case model.OutboxStatusProcessed:
			now := r.now().UTC()
			e.ProcessedAt = &now
		case model.OutboxStatusFailed:
			e.RetryCount++
		}
		return nil
	}
	return repository.ErrNotFound
}

// DeleteProcessedBefore drops processed events older than before.
func (r *OutboxRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.outbox[:0]
	var removed int64
	for _, e := range r.s.outbox {
		if e.Status == model.OutboxStatusProcessed && e.ProcessedAt != nil && e.ProcessedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(r.s.outbox); i++ {
		r.s.outbox[i] = nil
	}
	r.s.outbox = kept
	return removed, nil
}

func cloneEvent(e *model.OutboxEvent) *model.OutboxEvent {
	c := *e
	if e.Headers != nil {
		c.Headers = make(map[string]string, len(e.Headers))
		for k, v := range e.Headers {
			c.Headers[k] = v
		}
	}
	return &c
}
