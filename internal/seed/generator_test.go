package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, so the window runs Wed 8th .. Wed 22nd with 11 weekdays.
var refTime = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestRandomIsPinned(t *testing.T) {
	assert.Equal(t, Random(42), Random(42))
	v := Random(1)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
	assert.InDelta(t, 0.7098480789645691, v, 1e-9)
}

func TestPickMultipleAvoidsDuplicates(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	got := pickMultiple(pool, 4, 3)
	require.Len(t, got, 4)
	assert.ElementsMatch(t, pool, got)

	// Pool exhaustion falls back to repeats instead of looping forever.
	over := pickMultiple([]string{"x", "y"}, 3, 5)
	assert.Len(t, over, 3)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(refTime)
	b := Generate(refTime)
	assert.Equal(t, a, b)
}

func TestGeneratePatients(t *testing.T) {
	ds := Generate(refTime)
	require.Len(t, ds.Patients, PatientCount)

	first := ds.Patients[0]
	assert.Equal(t, "pat-01", first.ID)
	assert.Equal(t, "James", first.FirstName)
	assert.Equal(t, "Smith", first.LastName)
	assert.Equal(t, "MRN-100000", first.MRN)
	assert.Equal(t, "james.smith@email.com", first.Email)
	assert.Equal(t, "prov-1", first.PrimaryProviderID)
	assert.Equal(t, "pat-50", ds.Patients[49].ID)

	ids := map[string]bool{}
	mrns := map[string]bool{}
	for _, p := range ds.Patients {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		assert.False(t, mrns[p.MRN], "duplicate mrn %s", p.MRN)
		ids[p.ID] = true
		mrns[p.MRN] = true

		assert.NotEmpty(t, p.Conditions)
		assert.LessOrEqual(t, len(p.Conditions), 4)
		assert.LessOrEqual(t, len(p.Allergies), 2)
		assert.Len(t, p.DateOfBirth, len("1990-01-01"))
		assert.False(t, strings.ContainsAny(strings.TrimPrefix(p.MRN, "MRN-"), "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	}
}

func TestGenerateAppointmentsWindow(t *testing.T) {
	ds := Generate(refTime)

	perDay := map[string]int{}
	for _, a := range ds.Appointments {
		d, err := time.Parse("2006-01-02", a.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.GreaterOrEqual(t, a.Date, "2025-01-08")
		assert.LessOrEqual(t, a.Date, "2025-01-22")
		perDay[a.Date]++

		assert.NotEmpty(t, a.PatientName)
		assert.True(t, strings.HasPrefix(a.ProviderName, "Dr. "))
		if a.Date < "2025-01-15" {
			assert.Contains(t, []string{"completed", "no-show", "cancelled"}, string(a.Status))
		} else {
			assert.Contains(t, []string{"scheduled", "confirmed"}, string(a.Status))
		}
	}

	assert.Len(t, perDay, 11)
	for day, n := range perDay {
		assert.GreaterOrEqual(t, n, 8, day)
		assert.LessOrEqual(t, n, 12, day)
	}
	assert.Equal(t, "appt-01", ds.Appointments[0].ID)
}

func TestGenerateVitalsAndNotes(t *testing.T) {
	ds := Generate(refTime)
	assert.Len(t, ds.Vitals, PatientCount*VitalsPerPatient)

	perPatient := map[string]int{}
	for _, v := range ds.Vitals {
		perPatient[v.PatientID]++
		assert.GreaterOrEqual(t, v.BloodPressureSystolic, 110)
		assert.Less(t, v.BloodPressureSystolic, 150)
		assert.GreaterOrEqual(t, v.Temperature, 97.0)
		assert.LessOrEqual(t, v.Temperature, 100.0)
	}
	for _, n := range perPatient {
		assert.Equal(t, VitalsPerPatient, n)
	}
	assert.Equal(t, "vital-pat-01-0", ds.Vitals[0].ID)
	assert.Equal(t, "2025-01-15", ds.Vitals[0].Date)
	assert.Equal(t, "2024-12-15", ds.Vitals[1].Date)

	notes := map[string]int{}
	for _, n := range ds.Notes {
		notes[n.PatientID]++
	}
	assert.Len(t, notes, PatientsWithNotes)
	for id, n := range notes {
		assert.LessOrEqual(t, id, "pat-30")
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
	}
}

func TestGenerateNotifications(t *testing.T) {
	ds := Generate(refTime)
	require.Len(t, ds.Notifications, 10)

	unread := 0
	for _, n := range ds.Notifications {
		if !n.Read {
			unread++
		}
	}
	assert.Equal(t, 4, unread)
	assert.Equal(t, "2025-01-15T12:00:00.000Z", ds.Notifications[0].CreatedAt)
	assert.Equal(t, "2025-01-15T11:30:00.000Z", ds.Notifications[1].CreatedAt)
	assert.Empty(t, ds.Notifications[4].PatientID)
}
