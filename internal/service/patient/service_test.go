package patient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository/memory"
	"github.com/jwalitptl/carehub-api/internal/seed"
	"github.com/jwalitptl/carehub-api/internal/service/event"
	apperrors "github.com/jwalitptl/carehub-api/pkg/errors"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
)

var refTime = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, sim *simulate.Simulator) (*Service, *memory.Repositories) {
	t.Helper()
	repos := memory.NewStore(seed.Generate(refTime)).Repositories()
	events := event.NewEventService(repos.Outbox, logger.Nop())
	svc := NewService(repos.Patients, repos.Appointments, repos.Vitals, repos.Notes, sim, events, logger.Nop())
	clock := refTime
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, repos
}

func TestUpdatePatientMergesAndStamps(t *testing.T) {
	svc, repos := newTestService(t, simulate.Disabled())
	ctx := context.Background()

	before, err := svc.GetPatient(ctx, "pat-01")
	require.NoError(t, err)

	updated, err := svc.UpdatePatient(ctx, "pat-01", []byte(`{"phone":"(555) 999-9999","id":"pat-xx"}`))
	require.NoError(t, err)

	assert.Equal(t, "pat-01", updated.ID)
	assert.Equal(t, "(555) 999-9999", updated.Phone)
	assert.Greater(t, updated.UpdatedAt, before.UpdatedAt)

	before.Phone = updated.Phone
	before.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, before, updated)

	pending, err := repos.Outbox.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, model.EventPatientUpdated, pending[0].EventType)
}

func TestUpdatePatientReplacesAddressWholesale(t *testing.T) {
	svc, _ := newTestService(t, simulate.Disabled())
	ctx := context.Background()

	before, err := svc.GetPatient(ctx, "pat-01")
	require.NoError(t, err)
	require.NotEmpty(t, before.Address.Street)

	updated, err := svc.UpdatePatient(ctx, "pat-01", []byte(`{"address":{"city":"Boston"}}`))
	require.NoError(t, err)

	assert.Equal(t, model.Address{City: "Boston"}, updated.Address)
	assert.Equal(t, before.Phone, updated.Phone)
	assert.Equal(t, before.Allergies, updated.Allergies)

	stored, err := svc.GetPatient(ctx, "pat-01")
	require.NoError(t, err)
	assert.Equal(t, model.Address{City: "Boston"}, stored.Address)
}

func TestUpdatePatientErrors(t *testing.T) {
	svc, _ := newTestService(t, simulate.Disabled())
	ctx := context.Background()

	_, err := svc.UpdatePatient(ctx, "pat-404", []byte(`{}`))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
	assert.EqualError(t, err, "Patient not found: record not found")

	_, err = svc.UpdatePatient(ctx, "pat-01", []byte(`{"phone":12}`))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadRequest))

	p, err := svc.GetPatient(ctx, "pat-01")
	require.NoError(t, err)
	assert.NotEqual(t, "12", p.Phone)
}

func TestCreateNoteAppearsFirst(t *testing.T) {
	svc, _ := newTestService(t, simulate.Disabled())
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "pat-01", &model.CreateNoteRequest{Title: "Follow-up", Content: "Stable"})
	require.NoError(t, err)
	assert.Equal(t, model.NoteTypeProgress, note.Type)
	assert.Equal(t, model.DefaultProviderID, note.ProviderID)
	assert.Equal(t, model.DefaultProviderName, note.ProviderName)
	assert.Regexp(t, `^note-[0-9a-f-]{36}$`, note.ID)

	notes, err := svc.ListNotes(ctx, "pat-01")
	require.NoError(t, err)
	assert.Equal(t, note.ID, notes[0].ID)
}

func TestListVitalsInjectedFailure(t *testing.T) {
	svc, _ := newTestService(t, simulate.New(simulate.Config{FailureRate: 1, Seed: 1}, nil))

	_, err := svc.ListVitals(context.Background(), "pat-01")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTransient, appErr.Code)
	assert.Equal(t, VitalsUnavailableMessage, appErr.Message)

	// Other reads are never subject to injected failures.
	_, err = svc.ListNotes(context.Background(), "pat-01")
	assert.NoError(t, err)
}

func TestListVitals(t *testing.T) {
	svc, _ := newTestService(t, simulate.Disabled())
	vitals, err := svc.ListVitals(context.Background(), "pat-07")
	require.NoError(t, err)
	assert.Len(t, vitals, 6)
}

func TestListPatientsHasUpcoming(t *testing.T) {
	svc, _ := newTestService(t, simulate.Disabled())
	upcoming := true
	res, err := svc.ListPatients(context.Background(), model.PatientFilters{HasUpcoming: &upcoming, Limit: 50})
	require.NoError(t, err)
	assert.NotZero(t, res.Pagination.Total)
	assert.LessOrEqual(t, res.Pagination.Total, 50)
}

func TestDelayCancellationPropagates(t *testing.T) {
	svc, _ := newTestService(t, simulate.New(simulate.Config{MinDelay: time.Second, MaxDelay: time.Second}, nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetPatient(ctx, "pat-01")
	assert.ErrorIs(t, err, context.Canceled)
}
