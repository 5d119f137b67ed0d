// Package seed builds the deterministic synthetic dataset the in-memory store
// starts from. Everything is a pure function of the supplied reference time.
package seed

import (
	"fmt"
	"math"
	"time"

	"github.com/jwalitptl/carehub-api/internal/model"
)

const (
	PatientCount       = 50
	VitalsPerPatient   = 6
	PatientsWithNotes  = 30
	AppointmentWindow  = 7 // days either side of the reference date
	minAppointmentsDay = 8
)

var appointmentHours = []int{8, 9, 10, 11, 13, 14, 15, 16}

// Dataset holds the five seeded collections plus the fixed notifications.
type Dataset struct {
	Providers     []*model.Provider
	Patients      []*model.Patient
	Appointments  []*model.Appointment
	Vitals        []*model.Vital
	Notes         []*model.Note
	Notifications []*model.Notification
}

// Generate produces the dataset anchored at now. Two calls with the same now
// return identical collections.
func Generate(now time.Time) *Dataset {
	now = now.UTC()
	ds := &Dataset{Providers: Providers()}
	ds.Patients = generatePatients(ds.Providers)
	ds.Appointments = generateAppointments(now, ds.Patients, ds.Providers)
	ds.Vitals = generateVitals(now, ds.Patients, ds.Providers)
	ds.Notes = generateNotes(now, ds.Patients, ds.Providers)
	ds.Notifications = generateNotifications(now)
	return ds
}

// Providers returns the fixed provider roster.
func Providers() []*model.Provider {
	return []*model.Provider{
		{ID: "prov-1", FirstName: "Sarah", LastName: "Chen", Title: "MD", Specialty: "Internal Medicine", Email: "sarah.chen@carehub.com", Phone: "(555) 100-0001", Color: "#3B82F6"},
		{ID: "prov-2", FirstName: "Michael", LastName: "Okafor", Title: "DO", Specialty: "Family Medicine", Email: "michael.okafor@carehub.com", Phone: "(555) 100-0002", Color: "#10B981"},
		{ID: "prov-3", FirstName: "Emily", LastName: "Park", Title: "MD", Specialty: "Cardiology", Email: "emily.park@carehub.com", Phone: "(555) 100-0003", Color: "#F59E0B"},
		{ID: "prov-4", FirstName: "David", LastName: "Martinez", Title: "MD", Specialty: "Endocrinology", Email: "david.martinez@carehub.com", Phone: "(555) 100-0004", Color: "#8B5CF6"},
		{ID: "prov-5", FirstName: "Rachel", LastName: "Thompson", Title: "NP", Specialty: "Primary Care", Email: "rachel.thompson@carehub.com", Phone: "(555) 100-0005", Color: "#EC4899"},
	}
}

func pad(n int) string {
	return fmt.Sprintf("%02d", n)
}

func generatePatients(providers []*model.Provider) []*model.Patient {
	statuses := []model.PatientStatus{
		model.PatientStatusActive, model.PatientStatusActive, model.PatientStatusActive,
		model.PatientStatusActive, model.PatientStatusInactive, model.PatientStatusDeceased,
	}
	risks := []model.RiskLevel{
		model.RiskLevelLow, model.RiskLevelLow, model.RiskLevelMedium,
		model.RiskLevelMedium, model.RiskLevelHigh, model.RiskLevelCritical,
	}
	genders := []model.Gender{model.GenderMale, model.GenderFemale, model.GenderOther}

	patients := make([]*model.Patient, 0, PatientCount)
	for i := 0; i < PatientCount; i++ {
		s := float64(i + 1)
		fn := firstNames[i%len(firstNames)]
		ln := lastNames[i%len(lastNames)]
		cityIdx := index(len(cities), s*3)
		dobYear := 1940 + index(60, s*7)
		dobMonth := 1 + index(12, s*11)
		dobDay := 1 + index(28, s*13)
		numAllergies := index(3, s*17)
		numConditions := 1 + index(4, s*19)
		phoneTail := fmt.Sprintf("%d", 1000+i*7)
		phoneTail = phoneTail[len(phoneTail)-4:]

		patients = append(patients, &model.Patient{
			ID:          "pat-" + pad(i+1),
			MRN:         fmt.Sprintf("MRN-%d", 100000+i*137),
			FirstName:   fn,
			LastName:    ln,
			DateOfBirth: fmt.Sprintf("%d-%s-%s", dobYear, pad(dobMonth), pad(dobDay)),
			Gender:      pick(genders, s*23),
			Email:       fmt.Sprintf("%s.%s@email.com", lower(fn), lower(ln)),
			Phone:       fmt.Sprintf("(555) %d-%s", 200+i, phoneTail),
			Address: model.Address{
				Street: fmt.Sprintf("%d %s", 100+i*13, pick(streets, s*29)),
				City:   cities[cityIdx],
				State:  states[cityIdx],
				Zip:    fmt.Sprintf("%d", 10001+i*97),
			},
			InsuranceProvider: pick(insuranceProviders, s*31),
			InsuranceID:       fmt.Sprintf("INS-%d", 200000+i*251),
			PrimaryProviderID: providers[i%len(providers)].ID,
			Status:            pick(statuses, s*37),
			RiskLevel:         pick(risks, s*41),
			Allergies:         pickMultiple(allergyPool, numAllergies, s*43),
			Conditions:        pickMultiple(conditionPool, numConditions, s*47),
			CreatedAt:         fmt.Sprintf("2023-%s-%sT10:00:00Z", pad(1+i%12), pad(1+i%28)),
			UpdatedAt:         fmt.Sprintf("2024-%s-%sT10:00:00Z", pad(1+i%12), pad(1+i%28)),
		})
	}
	return patients
}

func generateAppointments(now time.Time, patients []*model.Patient, providers []*model.Provider) []*model.Appointment {
	types := []model.AppointmentType{
		model.AppointmentTypeCheckUp, model.AppointmentTypeFollowUp, model.AppointmentTypeUrgent,
		model.AppointmentTypeProcedure, model.AppointmentTypeConsultation, model.AppointmentTypeTelehealth,
	}
	pastStatuses := []model.AppointmentStatus{
		model.AppointmentStatusCompleted, model.AppointmentStatusCompleted, model.AppointmentStatusCompleted,
		model.AppointmentStatusNoShow, model.AppointmentStatusCancelled,
	}
	futureStatuses := []model.AppointmentStatus{
		model.AppointmentStatusScheduled, model.AppointmentStatusConfirmed, model.AppointmentStatusScheduled,
	}

	var appts []*model.Appointment
	id := 1
	for dayOffset := -AppointmentWindow; dayOffset <= AppointmentWindow; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		count := minAppointmentsDay + index(5, float64(dayOffset+100))
		for j := 0; j < count; j++ {
			s := float64(id * 53)
			patient := patients[index(len(patients), s)]
			provider := providers[index(len(providers), s+1)]
			hour := appointmentHours[j%len(appointmentHours)]

			startMin, endMin := "00", "30"
			if Random(s+2) > 0.5 {
				startMin, endMin = "30", "59"
			}

			status := pick(futureStatuses, s+4)
			if dayOffset < 0 {
				status = pick(pastStatuses, s+4)
			}

			appts = append(appts, &model.Appointment{
				ID:           "appt-" + pad(id),
				PatientID:    patient.ID,
				PatientName:  patient.FullName(),
				ProviderID:   provider.ID,
				ProviderName: provider.DisplayName(),
				Date:         model.FormatDate(day),
				StartTime:    pad(hour) + ":" + startMin,
				EndTime:      pad(hour) + ":" + endMin,
				Type:         pick(types, s+3),
				Status:       status,
				Room:         pick(rooms, s+5),
				Reason:       pick(appointmentReasons, s+6),
			})
			id++
		}
	}
	return appts
}

func generateVitals(now time.Time, patients []*model.Patient, providers []*model.Provider) []*model.Vital {
	vitals := make([]*model.Vital, 0, len(patients)*VitalsPerPatient)
	for pi, p := range patients {
		for vi := 0; vi < VitalsPerPatient; vi++ {
			s := float64((pi+1)*100 + vi)
			vitals = append(vitals, &model.Vital{
				ID:                     fmt.Sprintf("vital-%s-%d", p.ID, vi),
				PatientID:              p.ID,
				Date:                   model.FormatDate(now.AddDate(0, -vi, 0)),
				BloodPressureSystolic:  110 + index(40, s),
				BloodPressureDiastolic: 65 + index(25, s+1),
				HeartRate:              60 + index(40, s+2),
				Temperature:            97 + math.Floor(Random(s+3)*30+0.5)/10,
				RespiratoryRate:        12 + index(8, s+4),
				OxygenSaturation:       94 + index(6, s+5),
				Weight:                 120 + index(100, s+6),
				Height:                 60 + index(16, s+7),
				RecordedBy:             providers[pi%len(providers)].DisplayName(),
			})
		}
	}
	return vitals
}

func generateNotes(now time.Time, patients []*model.Patient, providers []*model.Provider) []*model.Note {
	types := []model.NoteType{
		model.NoteTypeProgress, model.NoteTypeSOAP, model.NoteTypeProcedure,
		model.NoteTypeDischarge, model.NoteTypeReferral,
	}

	var notes []*model.Note
	limit := PatientsWithNotes
	if len(patients) < limit {
		limit = len(patients)
	}
	for pi, p := range patients[:limit] {
		count := 2 + index(3, float64(pi*67))
		provider := providers[pi%len(providers)]
		for ni := 0; ni < count; ni++ {
			s := float64((pi+1)*200 + ni)
			written := now.AddDate(0, 0, -(ni*14 + index(7, s)))
			notes = append(notes, &model.Note{
				ID:           fmt.Sprintf("note-%s-%d", p.ID, ni),
				PatientID:    p.ID,
				ProviderID:   provider.ID,
				ProviderName: provider.DisplayName(),
				Date:         model.FormatDate(written),
				Type:         pick(types, s+1),
				Title:        pick(noteTitles, s+2),
				Content:      pick(noteBodies, s+3),
				UpdatedAt:    model.FormatTimestamp(written),
			})
		}
	}
	return notes
}

func generateNotifications(now time.Time) []*model.Notification {
	ago := func(ms int64) string {
		return model.FormatTimestamp(now.Add(-time.Duration(ms) * time.Millisecond))
	}
	return []*model.Notification{
		{ID: "notif-01", Type: model.NotificationTypeAppointment, Title: "Appointment Reminder", Message: "James Smith has a check-up scheduled for today at 10:00 AM", CreatedAt: ago(0), PatientID: "pat-01", AppointmentID: "appt-01"},
		{ID: "notif-02", Type: model.NotificationTypePatientAlert, Title: "Critical Lab Result", Message: "Mary Johnson's potassium level is critically high (6.2 mEq/L)", CreatedAt: ago(1800000), PatientID: "pat-02"},
		{ID: "notif-03", Type: model.NotificationTypeMessage, Title: "New Message", Message: "Dr. Park sent you a message regarding patient Robert Williams", CreatedAt: ago(3600000), PatientID: "pat-03"},
		{ID: "notif-04", Type: model.NotificationTypeAppointment, Title: "Appointment Cancelled", Message: "Patricia Brown cancelled her 2:00 PM appointment", CreatedAt: ago(7200000), PatientID: "pat-04"},
		{ID: "notif-05", Type: model.NotificationTypeSystem, Title: "System Update", Message: "CareHub will undergo maintenance tonight at 11 PM EST", Read: true, CreatedAt: ago(14400000)},
		{ID: "notif-06", Type: model.NotificationTypePatientAlert, Title: "Missed Appointment", Message: "John Jones did not show up for his 9:00 AM appointment", Read: true, CreatedAt: ago(21600000), PatientID: "pat-05"},
		{ID: "notif-07", Type: model.NotificationTypeAppointment, Title: "New Appointment", Message: "New urgent appointment scheduled for Jennifer Garcia at 3:30 PM", Read: true, CreatedAt: ago(28800000), PatientID: "pat-06"},
		{ID: "notif-08", Type: model.NotificationTypeMessage, Title: "Lab Report Ready", Message: "Lab results are ready for Michael Miller", Read: true, CreatedAt: ago(43200000), PatientID: "pat-07"},
		{ID: "notif-09", Type: model.NotificationTypePatientAlert, Title: "High Blood Pressure Alert", Message: "Linda Davis recorded BP 178/105 at her last visit", Read: true, CreatedAt: ago(86400000), PatientID: "pat-08"},
		{ID: "notif-10", Type: model.NotificationTypeAppointment, Title: "Appointment Confirmed", Message: "David Rodriguez confirmed his appointment for tomorrow at 11 AM", Read: true, CreatedAt: ago(100000000), PatientID: "pat-09"},
	}
}
