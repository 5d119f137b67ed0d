package memory

import (
	"context"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
)

type ProviderRepository struct {
	s *Store
}

func NewProviderRepository(s *Store) *ProviderRepository {
	return &ProviderRepository{s: s}
}

var _ repository.ProviderRepository = (*ProviderRepository)(nil)

func (r *ProviderRepository) List(ctx context.Context) ([]*model.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.providers, shallow[model.Provider]), nil
}

func (r *ProviderRepository) Get(ctx context.Context, id string) (*model.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.providers {
		if p.ID == id {
			return shallow(p), nil
		}
	}
	return nil, repository.ErrNotFound
}
