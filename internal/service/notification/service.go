package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/internal/service/event"
	apperrors "github.com/jwalitptl/carehub-api/pkg/errors"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
)

type Service interface {
	List(ctx context.Context) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id string) (*model.Notification, error)
	MarkAllRead(ctx context.Context) error
}

type service struct {
	repo   repository.NotificationRepository
	sim    *simulate.Simulator
	events event.Emitter
	logger *logger.Logger
}

func NewService(repo repository.NotificationRepository, sim *simulate.Simulator, events event.Emitter, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		sim:    sim,
		events: events,
		logger: log.With("notification_service"),
	}
}

func (s *service) List(ctx context.Context) ([]*model.Notification, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead is idempotent; an already-read notification is returned unchanged.
func (s *service) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	n, err := s.repo.Update(ctx, id, func(n *model.Notification) error {
		n.Read = true
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Notification", err)
		}
		return nil, err
	}

	event.Record(ctx, s.events, s.logger, model.EventNotificationRead, map[string]string{"id": n.ID})
	return n, nil
}

func (s *service) MarkAllRead(ctx context.Context) error {
	if err := s.sim.Delay(ctx); err != nil {
		return err
	}

	count, err := s.repo.UpdateAll(ctx, func(n *model.Notification) { n.Read = true })
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	event.Record(ctx, s.events, s.logger, model.EventNotificationsReadAll, map[string]int{"count": count})
	return nil
}
