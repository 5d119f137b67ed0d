// Package memory is the process-memory backing for every repository. A Store
// is built once from a seeded dataset and handed to the services; tests build
// a fresh one per case.
package memory

import (
	"sync"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/seed"
)

// Store owns all collections behind a single lock. Readers receive copies and
// writers go through mutate callbacks, so no caller ever holds a pointer into
// the store.
type Store struct {
	mu sync.RWMutex

	providers     []*model.Provider
	patients      []*model.Patient
	appointments  []*model.Appointment
	vitals        []*model.Vital
	notes         []*model.Note
	notifications []*model.Notification
	outbox        []*model.OutboxEvent
}

// NewStore takes ownership of ds. Callers must not keep using it.
func NewStore(ds *seed.Dataset) *Store {
	return &Store{
		providers:     ds.Providers,
		patients:      ds.Patients,
		appointments:  ds.Appointments,
		vitals:        ds.Vitals,
		notes:         ds.Notes,
		notifications: ds.Notifications,
	}
}

// Repositories bundles the per-collection views over one Store.
type Repositories struct {
	Patients      *PatientRepository
	Providers     *ProviderRepository
	Appointments  *AppointmentRepository
	Vitals        *VitalRepository
	Notes         *NoteRepository
	Notifications *NotificationRepository
	Outbox        *OutboxRepository
}

func (s *Store) Repositories() *Repositories {
	return &Repositories{
		Patients:      NewPatientRepository(s),
		Providers:     NewProviderRepository(s),
		Appointments:  NewAppointmentRepository(s),
		Vitals:        NewVitalRepository(s),
		Notes:         NewNoteRepository(s),
		Notifications: NewNotificationRepository(s),
		Outbox:        NewOutboxRepository(s),
	}
}

func cloneAll[T any](items []*T, clone func(*T) *T) []*T {
	out := make([]*T, len(items))
	for i, it := range items {
		out[i] = clone(it)
	}
	return out
}

func shallow[T any](v *T) *T {
	c := *v
	return &c
}
