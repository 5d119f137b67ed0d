package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/carehub-api/internal/model"
)

// ErrNotFound is returned when an id is absent from its collection.
var ErrNotFound = errors.New("record not found")

// Update methods take a mutate callback that runs on a private copy of the
// current record while the collection is locked. Returning an error from
// mutate discards the change.
type (
	PatientRepository interface {
		List(ctx context.Context) ([]*model.Patient, error)
		Get(ctx context.Context, id string) (*model.Patient, error)
		Update(ctx context.Context, id string, mutate func(*model.Patient) error) (*model.Patient, error)
	}

	ProviderRepository interface {
		List(ctx context.Context) ([]*model.Provider, error)
		Get(ctx context.Context, id string) (*model.Provider, error)
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]*model.Appointment, error)
		Get(ctx context.Context, id string) (*model.Appointment, error)
		Create(ctx context.Context, appointment *model.Appointment) error
		Update(ctx context.Context, id string, mutate func(*model.Appointment) error) (*model.Appointment, error)
	}

	VitalRepository interface {
		List(ctx context.Context) ([]*model.Vital, error)
	}

	NoteRepository interface {
		List(ctx context.Context) ([]*model.Note, error)
		Create(ctx context.Context, note *model.Note) error
	}

	NotificationRepository interface {
		List(ctx context.Context) ([]*model.Notification, error)
		Update(ctx context.Context, id string, mutate func(*model.Notification) error) (*model.Notification, error)
		UpdateAll(ctx context.Context, mutate func(*model.Notification)) (int, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, err *string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
