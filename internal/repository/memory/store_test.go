package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository"
	"github.com/jwalitptl/carehub-api/internal/seed"
)

func newRepos(t *testing.T) *Repositories {
	t.Helper()
	return NewStore(seed.Generate(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))).Repositories()
}

func TestPatientGetReturnsCopy(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	p, err := repos.Patients.Get(ctx, "pat-01")
	require.NoError(t, err)
	p.FirstName = "Changed"
	p.Conditions = append(p.Conditions[:0], "Mutated")

	again, err := repos.Patients.Get(ctx, "pat-01")
	require.NoError(t, err)
	assert.Equal(t, "James", again.FirstName)
	assert.NotEqual(t, "Mutated", again.Conditions[0])

	_, err = repos.Patients.Get(ctx, "pat-99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPatientUpdateDiscardsOnError(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := repos.Patients.Update(ctx, "pat-02", func(p *model.Patient) error {
		p.Phone = "nope"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := repos.Patients.Get(ctx, "pat-02")
	require.NoError(t, err)
	assert.NotEqual(t, "nope", p.Phone)

	_, err = repos.Patients.Update(ctx, "missing", func(*model.Patient) error { return nil })
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPatientUpdateKeepsID(t *testing.T) {
	repos := newRepos(t)
	updated, err := repos.Patients.Update(context.Background(), "pat-03", func(p *model.Patient) error {
		p.ID = "hijack"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "pat-03", updated.ID)
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repos.Notifications.Update(ctx, "notif-01", func(n *model.Notification) error {
				n.Message += "x"
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := repos.Notifications.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list[0].Message, len("James Smith has a check-up scheduled for today at 10:00 AM")+50)
}

func TestAppointmentCreateAppends(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	before, err := repos.Appointments.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repos.Appointments.Create(ctx, &model.Appointment{ID: "appt-new", Date: "2000-01-01"}))
	after, err := repos.Appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "appt-new", after[len(after)-1].ID)

	got, err := repos.Appointments.Get(ctx, "appt-new")
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", got.Date)
}

func TestNoteCreatePrepends(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Notes.Create(ctx, &model.Note{ID: "note-new", PatientID: "pat-01"}))
	notes, err := repos.Notes.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "note-new", notes[0].ID)
}

func TestNotificationUpdateAll(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	n, err := repos.Notifications.UpdateAll(ctx, func(n *model.Notification) { n.Read = true })
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	list, err := repos.Notifications.List(ctx)
	require.NoError(t, err)
	for _, item := range list {
		assert.True(t, item.Read)
	}
}

func TestOutboxLifecycle(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	clock := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	repos.Outbox.now = func() time.Time { return clock }

	assert.Error(t, repos.Outbox.Create(ctx, &model.OutboxEvent{EventType: "x"}))

	for _, typ := range []string{model.EventNoteCreated, model.EventPatientUpdated, model.EventNotificationRead} {
		require.NoError(t, repos.Outbox.Create(ctx, &model.OutboxEvent{EventType: typ, Payload: json.RawMessage(`{}`)}))
	}

	pending, err := repos.Outbox.GetPendingEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, model.EventNoteCreated, pending[0].EventType)

	require.NoError(t, repos.Outbox.UpdateStatus(ctx, pending[0].ID, model.OutboxStatusProcessed, nil))
	msg := "broker down"
	require.NoError(t, repos.Outbox.UpdateStatus(ctx, pending[1].ID, model.OutboxStatusFailed, &msg))

	pending, err = repos.Outbox.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, model.EventNotificationRead, pending[0].EventType)

	removed, err := repos.Outbox.DeleteProcessedBefore(ctx, clock.Add(time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	assert.ErrorIs(t, repos.Outbox.UpdateStatus(ctx, uuid.Nil, model.OutboxStatusProcessed, nil), repository.ErrNotFound)
}
