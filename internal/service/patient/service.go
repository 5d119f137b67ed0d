package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/query"
	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/internal/service/event"
	apperrors "github.com/jwalitptl/carehub-api/pkg/errors"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
)

// VitalsUnavailableMessage is returned when the injected vitals failure fires.
const VitalsUnavailableMessage = "Internal server error - vitals service temporarily unavailable"

type PatientService interface {
	ListPatients(ctx context.Context, filters model.PatientFilters) (model.PaginatedResponse[*model.Patient], error)
	GetPatient(ctx context.Context, id string) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, patch []byte) (*model.Patient, error)
	ListAppointments(ctx context.Context, patientID string) ([]*model.Appointment, error)
	ListVitals(ctx context.Context, patientID string) ([]*model.Vital, error)
	ListNotes(ctx context.Context, patientID string) ([]*model.Note, error)
	CreateNote(ctx context.Context, patientID string, req *model.CreateNoteRequest) (*model.Note, error)
}

type Service struct {
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	vitalRepo       repository.VitalRepository
	noteRepo        repository.NoteRepository
	sim             *simulate.Simulator
	events          event.Emitter
	logger          *logger.Logger
	now             func() time.Time
}

func NewService(
	repo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	vitalRepo repository.VitalRepository,
	noteRepo repository.NoteRepository,
	sim *simulate.Simulator,
	events event.Emitter,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		vitalRepo:       vitalRepo,
		noteRepo:        noteRepo,
		sim:             sim,
		events:          events,
		logger:          log.With("patient_service"),
		now:             time.Now,
	}
}

var _ PatientService = (*Service)(nil)

func (s *Service) ListPatients(ctx context.Context, filters model.PatientFilters) (model.PaginatedResponse[*model.Patient], error) {
	var empty model.PaginatedResponse[*model.Patient]
	if err := s.sim.Delay(ctx); err != nil {
		return empty, err
	}

	patients, err := s.repo.List(ctx)
	if err != nil {
		return empty, fmt.Errorf("failed to list patients: %w", err)
	}
	var appts []*model.Appointment
	if filters.HasUpcoming != nil && *filters.HasUpcoming {
		if appts, err = s.appointmentRepo.List(ctx); err != nil {
			return empty, fmt.Errorf("failed to list appointments: %w", err)
		}
	}

	return query.Patients(patients, appts, filters, model.FormatDate(s.now())), nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return patient, nil
}

// UpdatePatient shallow-merges patch onto the stored record and stamps
// updatedAt. Omitted fields are preserved and the id cannot change.
func (s *Service) UpdatePatient(ctx context.Context, id string, patch []byte) (*model.Patient, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, func(p *model.Patient) error {
		if err := model.ApplyPatch(p, patch); err != nil {
			return apperrors.BadRequest("Invalid request body", err)
		}
		p.UpdatedAt = model.FormatTimestamp(s.now())
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	event.Record(ctx, s.events, s.logger, model.EventPatientUpdated, updated)
	return updated, nil
}

func (s *Service) ListAppointments(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	appts, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return query.PatientAppointments(appts, patientID), nil
}

// ListVitals is the one read with injected unreliability.
func (s *Service) ListVitals(ctx context.Context, patientID string) ([]*model.Vital, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}
	if s.sim.ShouldFail("list_vitals") {
		s.logger.Warn("Injected vitals failure", "patient_id", patientID)
		return nil, apperrors.Transient(VitalsUnavailableMessage)
	}

	vitals, err := s.vitalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	return query.PatientVitals(vitals, patientID), nil
}

func (s *Service) ListNotes(ctx context.Context, patientID string) ([]*model.Note, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return query.PatientNotes(notes, patientID), nil
}

// CreateNote attributes the note to the default provider and prepends it.
// The patient id is not checked against the directory.
func (s *Service) CreateNote(ctx context.Context, patientID string, req *model.CreateNoteRequest) (*model.Note, error) {
	if err := s.sim.Delay(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	note := &model.Note{
		ID:           model.NewID("note"),
		PatientID:    patientID,
		ProviderID:   model.DefaultProviderID,
		ProviderName: model.DefaultProviderName,
		Date:         model.FormatDate(now),
		Type:         req.Type,
		Title:        req.Title,
		Content:      req.Content,
		UpdatedAt:    model.FormatTimestamp(now),
	}
	if note.Type == "" {
		note.Type = model.NoteTypeProgress
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	event.Record(ctx, s.events, s.logger, model.EventNoteCreated, note)
	return note, nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("Patient", err)
	}
	return err
}
