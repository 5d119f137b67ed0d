package query

import (
	"sort"

	"github.com/jwalitptl/carehub-api/internal/model"
)

// Appointments applies the inclusive date range and provider filters of
// GET /appointments and returns the result ordered by (date, startTime).
func Appointments(appts []*model.Appointment, f model.AppointmentFilters) []*model.Appointment {
	out := make([]*model.Appointment, 0, len(appts))
	for _, a := range appts {
		if f.StartDate != "" && a.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && a.Date > f.EndDate {
			continue
		}
		if f.ProviderID != "" && a.ProviderID != f.ProviderID {
			continue
		}
		out = append(out, a)
	}
	sortChronological(out)
	return out
}

// ProviderSchedule is Appointments pinned to one provider.
func ProviderSchedule(appts []*model.Appointment, providerID, startDate, endDate string) []*model.Appointment {
	return Appointments(appts, model.AppointmentFilters{
		StartDate:  startDate,
		EndDate:    endDate,
		ProviderID: providerID,
	})
}

// PatientAppointments returns one patient's appointments, newest date first.
func PatientAppointments(appts []*model.Appointment, patientID string) []*model.Appointment {
	out := make([]*model.Appointment, 0)
	for _, a := range appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// PatientVitals returns one patient's readings, newest date first.
func PatientVitals(vitals []*model.Vital, patientID string) []*model.Vital {
	out := make([]*model.Vital, 0)
	for _, v := range vitals {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// PatientNotes returns one patient's notes, newest date first. Notes sharing
// a date keep collection order, so a freshly prepended note stays on top.
func PatientNotes(notes []*model.Note, patientID string) []*model.Note {
	out := make([]*model.Note, 0)
	for _, n := range notes {
		if n.PatientID == patientID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func sortChronological(appts []*model.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].StartTime < appts[j].StartTime
	})
}
