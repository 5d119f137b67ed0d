package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/query"
	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/internal/service/event"
	apperrors "github.com/jwalitptl/carehub-api/pkg/errors"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
)

type AppointmentService interface {
	ListAppointments(ctx context.Context, filters model.AppointmentFilters) ([]*model.Appointment, error)
	CheckConflicts(ctx context.Context, q model.ConflictQuery) (model.ConflictResult, error)
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, patch []byte) (*model.Appointment, error)
	CancelAppointment(ctx context.Context, id string) (*model.Appointment, error)
}

type Service struct {
	repo   repository.AppointmentRepository
	sim    *simulate.Simulator
	events event.Emitter
	logger *logger.Logger
}

func NewService(repo repository.AppointmentRepository, sim *simulate.Simulator, events event.Emitter, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		sim:    sim,
		events: events,
		logger: log.With("appointment_service"),
	}
}

var _ AppointmentService = (*Service)(nil)

func (s *Service) ListAppointments(ctx context.Context, filters model.AppointmentFilters) ([]*model.Appointment, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	appts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return query.Appointments(appts, filters), nil
}

// CheckConflicts reports bookings that share the slot's date and start hour.
func (s *Service) CheckConflicts(ctx context.Context, q model.ConflictQuery) (model.ConflictResult, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return model.ConflictResult{}, err
	}

	appts, err := s.repo.List(ctx)
	if err != nil {
		return model.ConflictResult{}, fmt.Errorf("failed to list appointments: %w", err)
	}
	return query.Conflicts(appts, q.Date, q.StartTime, q.ExcludeID), nil
}

// CreateAppointment fills defaults and appends the record. Fields are stored
// as sent; nothing checks that the patient or provider exist.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		ID:           model.NewID("appt"),
		PatientID:    req.PatientID,
		PatientName:  req.PatientName,
		ProviderID:   orDefault(req.ProviderID, model.DefaultProviderID),
		ProviderName: orDefault(req.ProviderName, model.DefaultProviderName),
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Type:         orDefault(req.Type, model.AppointmentTypeCheckUp),
		Status:       orDefault(req.Status, model.AppointmentStatusScheduled),
		Room:         orDefault(req.Room, model.DefaultRoom),
		Notes:        req.Notes,
		Reason:       req.Reason,
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	event.Record(ctx, s.events, s.logger, model.EventAppointmentCreated, appt)
	return appt, nil
}

// UpdateAppointment shallow-merges patch onto the stored record. Denormalized
// names are taken from the patch as given and never re-derived.
func (s *Service) UpdateAppointment(ctx context.Context, id string, patch []byte) (*model.Appointment, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, func(a *model.Appointment) error {
		if err := model.ApplyPatch(a, patch); err != nil {
			return apperrors.BadRequest("Invalid request body", err)
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	event.Record(ctx, s.events, s.logger, model.EventAppointmentUpdated, updated)
	return updated, nil
}

// CancelAppointment is the logical delete. Cancelling twice is a no-op.
func (s *Service) CancelAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	cancelled, err := s.repo.Update(ctx, id, func(a *model.Appointment) error {
		a.Status = model.AppointmentStatusCancelled
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	event.Record(ctx, s.events, s.logger, model.EventAppointmentCancelled, cancelled)
	return cancelled, nil
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("Appointment", err)
	}
	return err
}
