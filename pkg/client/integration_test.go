package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentHandler "github.com/jwalitptl/carehub-api/internal/handler/appointment"
	"github.com/jwalitptl/carehub-api/internal/handler/health"
	notificationHandler "github.com/jwalitptl/carehub-api/internal/handler/notification"
	patientHandler "github.com/jwalitptl/carehub-api/internal/handler/patient"
	providerHandler "github.com/jwalitptl/carehub-api/internal/handler/provider"
	"github.com/jwalitptl/carehub-api/internal/middleware"
	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/repository/memory"
	"github.com/jwalitptl/carehub-api/internal/router"
	"github.com/jwalitptl/carehub-api/internal/seed"
	appointmentService "github.com/jwalitptl/carehub-api/internal/service/appointment"
	notificationService "github.com/jwalitptl/carehub-api/internal/service/notification"
	patientService "github.com/jwalitptl/carehub-api/internal/service/patient"
	providerService "github.com/jwalitptl/carehub-api/internal/service/provider"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/metrics"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
)

// newAPIClient serves a freshly seeded API without latency or injected
// failures.
func newAPIClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.Nop()
	sim := simulate.Disabled()
	repos := memory.NewStore(seed.Generate(time.Now())).Repositories()

	r := router.NewRouter(
		router.RouterConfig{ServiceName: "carehub-client-test", CORSConfig: middleware.DefaultCORSConfig()},
		log,
		metrics.NewMetrics("carehub", prometheus.NewRegistry()),
		nil,
		health.NewHandler(),
		patientHandler.NewHandler(patientService.NewService(repos.Patients, repos.Appointments, repos.Vitals, repos.Notes, sim, nil, log)),
		appointmentHandler.NewHandler(appointmentService.NewService(repos.Appointments, sim, nil, log)),
		providerHandler.NewHandler(providerService.NewService(repos.Providers, repos.Appointments, sim)),
		notificationHandler.NewHandler(notificationService.NewService(repos.Notifications, sim, nil, log)),
	)
	r.Setup()

	srv := httptest.NewServer(r.Engine())
	t.Cleanup(srv.Close)
	return New(srv.URL, WithStaleTime(time.Minute), WithRetryInterval(time.Millisecond))
}

func TestClientAgainstAPI(t *testing.T) {
	c := newAPIClient(t)
	ctx := context.Background()

	page, err := c.Patients(ctx, model.PatientFilters{Search: "MRN", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, page.Pagination.Total)

	p, err := c.Patient(ctx, "pat-01")
	require.NoError(t, err)
	assert.Equal(t, "James", p.FirstName)

	updated, err := c.UpdatePatient(ctx, "pat-01", map[string]string{"phone": "(555) 999-9999"})
	require.NoError(t, err)
	assert.Equal(t, "(555) 999-9999", updated.Phone)

	// The update invalidated the cached detail.
	p, err = c.Patient(ctx, "pat-01")
	require.NoError(t, err)
	assert.Equal(t, "(555) 999-9999", p.Phone)

	_, err = c.UpdateAppointment(ctx, "nonexistent", map[string]string{"status": "confirmed"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Appointment not found", apiErr.Message)
}

func TestClientNotesAndNotifications(t *testing.T) {
	c := newAPIClient(t)
	ctx := context.Background()

	_, err := c.PatientNotes(ctx, "pat-02")
	require.NoError(t, err)

	note, err := c.CreateNote(ctx, "pat-02", model.CreateNoteRequest{Title: "Phone follow-up", Content: "Doing well"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(note.ID, "note-"))

	notes, err := c.PatientNotes(ctx, "pat-02")
	require.NoError(t, err)
	assert.Equal(t, note.ID, notes[0].ID)

	_, err = c.Notifications(ctx)
	require.NoError(t, err)
	n, err := c.MarkNotificationRead(ctx, "notif-01")
	require.NoError(t, err)
	assert.True(t, n.Read)

	require.NoError(t, c.MarkAllNotificationsRead(ctx))
	list, err := c.Notifications(ctx)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Read)
	}
}

func TestClientAppointmentLifecycle(t *testing.T) {
	c := newAPIClient(t)
	ctx := context.Background()

	before, err := c.Appointments(ctx, model.AppointmentFilters{StartDate: "2031-05-05", EndDate: "2031-05-05"})
	require.NoError(t, err)
	assert.Empty(t, before)

	appt, err := c.CreateAppointment(ctx, model.CreateAppointmentRequest{PatientID: "pat-04", Date: "2031-05-05", StartTime: "10:00"})
	require.NoError(t, err)

	after, err := c.Appointments(ctx, model.AppointmentFilters{StartDate: "2031-05-05", EndDate: "2031-05-05"})
	require.NoError(t, err)
	require.Len(t, after, 1)

	conflicts, err := c.CheckConflicts(ctx, model.ConflictQuery{Date: "2031-05-05", StartTime: "10:30"})
	require.NoError(t, err)
	assert.True(t, conflicts.Conflict)

	require.NoError(t, c.CancelAppointment(ctx, appt.ID))
	require.NoError(t, c.CancelAppointment(ctx, appt.ID))

	schedule, err := c.ProviderSchedule(ctx, model.DefaultProviderID, "2031-05-05", "2031-05-05")
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, model.AppointmentStatusCancelled, schedule[0].Status)
}

func TestPollNotifications(t *testing.T) {
	c := newAPIClient(t)
	ctx, cancel := context.WithCancel(context.Background())

	polls := 0
	err := c.PollNotifications(ctx, 10*time.Millisecond, func(list []*model.Notification, err error) {
		assert.NoError(t, err)
		assert.NotEmpty(t, list)
		polls++
		if polls == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, polls)
}

func TestPatientSearchSendsDebouncedTerm(t *testing.T) {
	c := newAPIClient(t)

	results := make(chan model.PaginatedResponse[*model.Patient], 4)
	search := c.NewPatientSearch(context.Background(), model.PatientFilters{Page: 3, Limit: 50}, 20*time.Millisecond,
		func(page model.PaginatedResponse[*model.Patient], err error) {
			assert.NoError(t, err)
			results <- page
		})
	defer search.Stop()

	search.Type("J")
	search.Type("Ja")
	search.Type("James")

	select {
	case page := <-results:
		assert.Equal(t, 1, page.Pagination.Page)
		require.NotEmpty(t, page.Data)
		assert.Equal(t, "pat-01", page.Data[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("search never ran")
	}
}
