package query

import (
	"strings"

	"github.com/jwalitptl/carehub-api/internal/model"
)

// Conflicts lists the non-cancelled appointments on date that start in the
// same hour as startTime, ignoring excludeID. Overlaps are reported only;
// nothing prevents double booking.
func Conflicts(appts []*model.Appointment, date, startTime, excludeID string) model.ConflictResult {
	hour := startHour(startTime)
	out := make([]*model.Appointment, 0)
	for _, a := range appts {
		if a.ID == excludeID || a.Date != date || a.Status == model.AppointmentStatusCancelled {
			continue
		}
		if startHour(a.StartTime) == hour {
			out = append(out, a)
		}
	}
	sortChronological(out)
	return model.ConflictResult{Conflict: len(out) > 0, Appointments: out}
}

func startHour(hhmm string) string {
	h, _, _ := strings.Cut(hhmm, ":")
	return h
}
