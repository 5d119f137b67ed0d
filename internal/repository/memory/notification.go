package memory

import (
	"context"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
)

type NotificationRepository struct {
	s *Store
}

func NewNotificationRepository(s *Store) *NotificationRepository {
	return &NotificationRepository{s: s}
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) List(ctx context.Context) ([]*model.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.notifications, shallow[model.Notification]), nil
}

func (r *NotificationRepository) Update(ctx context.Context, id string, mutate func(*model.Notification) error) (*model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.ID != id {
			continue
		}
		next := shallow(n)
		if err := mutate(next); err != nil {
			return nil, err
		}
		next.ID = id
		*n = *next
		return shallow(n), nil
	}
	return nil, repository.ErrNotFound
}

// UpdateAll applies mutate to every notification in place and returns how
// many records were visited.
func (r *NotificationRepository) UpdateAll(ctx context.Context, mutate func(*model.Notification)) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		mutate(n)
	}
	return len(r.s.notifications), nil
}
