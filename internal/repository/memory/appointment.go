package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
)

type AppointmentRepository struct {
	s *Store
}

func NewAppointmentRepository(s *Store) *AppointmentRepository {
	return &AppointmentRepository{s: s}
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)

func (r *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.appointments, shallow[model.Appointment]), nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.appointments {
		if a.ID == id {
			return shallow(a), nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create appends to the end of the collection; no resort happens.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	if appointment == nil {
		return fmt.Errorf("appointment cannot be nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.appointments = append(r.s.appointments, shallow(appointment))
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, mutate func(*model.Appointment) error) (*model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.appointments {
		if a.ID != id {
			continue
		}
		next := shallow(a)
		if err := mutate(next); err != nil {
			return nil, err
		}
		next.ID = id
		r.s.appointments[i] = next
		return shallow(next), nil
	}
	return nil, repository.ErrNotFound
}
