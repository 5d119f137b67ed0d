package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/seed"
)

func TestAppointmentsDateRange(t *testing.T) {
	ds := seed.Generate(refTime)
	f := model.AppointmentFilters{StartDate: "2025-01-13", EndDate: "2025-01-17"}
	res := Appointments(ds.Appointments, f)

	require.NotEmpty(t, res)
	for i, a := range res {
		assert.GreaterOrEqual(t, a.Date, f.StartDate)
		assert.LessOrEqual(t, a.Date, f.EndDate)
		if i > 0 {
			prev := res[i-1]
			ordered := prev.Date < a.Date || (prev.Date == a.Date && prev.StartTime <= a.StartTime)
			assert.True(t, ordered, "%s %s before %s %s", prev.Date, prev.StartTime, a.Date, a.StartTime)
		}
	}
}

func TestAppointmentsProviderFilter(t *testing.T) {
	ds := seed.Generate(refTime)
	res := Appointments(ds.Appointments, model.AppointmentFilters{ProviderID: "prov-4"})
	require.NotEmpty(t, res)
	for _, a := range res {
		assert.Equal(t, "prov-4", a.ProviderID)
	}

	sched := ProviderSchedule(ds.Appointments, "prov-4", "", "")
	assert.Equal(t, res, sched)
}

func TestAppointmentsNoFiltersReturnsAll(t *testing.T) {
	ds := seed.Generate(refTime)
	assert.Len(t, Appointments(ds.Appointments, model.AppointmentFilters{}), len(ds.Appointments))
}

func TestPatientSubResourcesNewestFirst(t *testing.T) {
	ds := seed.Generate(refTime)

	vitals := PatientVitals(ds.Vitals, "pat-02")
	require.Len(t, vitals, 6)
	for i := 1; i < len(vitals); i++ {
		assert.GreaterOrEqual(t, vitals[i-1].Date, vitals[i].Date)
	}

	notes := PatientNotes(ds.Notes, "pat-02")
	require.NotEmpty(t, notes)
	for i := 1; i < len(notes); i++ {
		assert.GreaterOrEqual(t, notes[i-1].Date, notes[i].Date)
	}
	assert.Empty(t, PatientNotes(ds.Notes, "pat-45"))
	assert.NotNil(t, PatientNotes(ds.Notes, "pat-45"))

	appts := PatientAppointments([]*model.Appointment{
		{ID: "1", PatientID: "p", Date: "2025-01-01"},
		{ID: "2", PatientID: "x", Date: "2025-01-09"},
		{ID: "3", PatientID: "p", Date: "2025-01-05"},
	}, "p")
	require.Len(t, appts, 2)
	assert.Equal(t, "3", appts[0].ID)
}

func TestPatientNotesKeepsPrependedFirstOnSameDay(t *testing.T) {
	notes := []*model.Note{
		{ID: "new", PatientID: "p", Date: "2025-01-15"},
		{ID: "old", PatientID: "p", Date: "2025-01-15"},
	}
	res := PatientNotes(notes, "p")
	assert.Equal(t, "new", res[0].ID)
}

func TestConflicts(t *testing.T) {
	appts := []*model.Appointment{
		{ID: "a", Date: "2025-01-15", StartTime: "09:00"},
		{ID: "b", Date: "2025-01-15", StartTime: "09:30"},
		{ID: "c", Date: "2025-01-15", StartTime: "10:00"},
		{ID: "d", Date: "2025-01-16", StartTime: "09:00"},
		{ID: "e", Date: "2025-01-15", StartTime: "09:00", Status: model.AppointmentStatusCancelled},
	}

	res := Conflicts(appts, "2025-01-15", "09:15", "")
	assert.True(t, res.Conflict)
	require.Len(t, res.Appointments, 2)
	assert.Equal(t, "a", res.Appointments[0].ID)
	assert.Equal(t, "b", res.Appointments[1].ID)

	res = Conflicts(appts, "2025-01-15", "10:00", "c")
	assert.False(t, res.Conflict)
	assert.Empty(t, res.Appointments)
}
