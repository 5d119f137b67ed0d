package provider

import (
	"context"
	"fmt"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/query"
	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
)

type ProviderService interface {
	ListProviders(ctx context.Context) ([]*model.Provider, error)
	GetSchedule(ctx context.Context, providerID string, filters model.AppointmentFilters) ([]*model.Appointment, error)
}

type Service struct {
	repo            repository.ProviderRepository
	appointmentRepo repository.AppointmentRepository
	sim             *simulate.Simulator
}

func NewService(repo repository.ProviderRepository, appointmentRepo repository.AppointmentRepository, sim *simulate.Simulator) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		sim:             sim,
	}
}

func (s *Service) ListProviders(ctx context.Context) ([]*model.Provider, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	providers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// GetSchedule lists a provider's appointments in the optional date range.
// Unknown provider ids yield an empty schedule rather than an error.
func (s *Service) GetSchedule(ctx context.Context, providerID string, filters model.AppointmentFilters) ([]*model.Appointment, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	appts, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return query.ProviderSchedule(appts, providerID, filters.StartDate, filters.EndDate), nil
}
