package memory

import (
	"context"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
)

type PatientRepository struct {
	s *Store
}

func NewPatientRepository(s *Store) *PatientRepository {
	return &PatientRepository{s: s}
}

var _ repository.PatientRepository = (*PatientRepository)(nil)

func (r *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.patients, (*model.Patient).Clone), nil
}

func (r *PatientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.patients {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PatientRepository) Update(ctx context.Context, id string, mutate func(*model.Patient) error) (*model.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.patients {
		if p.ID != id {
			continue
		}
		next := p.Clone()
		if err := mutate(next); err != nil {
			return nil, err
		}
		next.ID = id
		r.s.patients[i] = next
		return next.Clone(), nil
	}
	return nil, repository.ErrNotFound
}
