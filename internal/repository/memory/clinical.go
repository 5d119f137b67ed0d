package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
)

// VitalRepository is read-only; vitals are immutable once seeded.
type VitalRepository struct {
	s *Store
}

func NewVitalRepository(s *Store) *VitalRepository {
	return &VitalRepository{s: s}
}

var _ repository.VitalRepository = (*VitalRepository)(nil)

func (r *VitalRepository) List(ctx context.Context) ([]*model.Vital, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.vitals, shallow[model.Vital]), nil
}

type NoteRepository struct {
	s *Store
}

func NewNoteRepository(s *Store) *NoteRepository {
	return &NoteRepository{s: s}
}

var _ repository.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) List(ctx context.Context) ([]*model.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.notes, shallow[model.Note]), nil
}

// Create prepends so the collection stays newest first.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	if note == nil {
		return fmt.Errorf("note cannot be nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notes = append([]*model.Note{shallow(note)}, r.s.notes...)
	return nil
}
