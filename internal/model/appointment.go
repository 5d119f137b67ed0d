package model

type AppointmentType string

const (
	AppointmentTypeCheckUp      AppointmentType = "check-up"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
	AppointmentTypeUrgent       AppointmentType = "urgent"
	AppointmentTypeProcedure    AppointmentType = "procedure"
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeTelehealth   AppointmentType = "telehealth"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no-show"
)

// Appointment carries snapshot copies of the patient and provider names taken
// at creation or update time. They are not resynced on later renames.
type Appointment struct {
	ID           string            `json:"id"`
	PatientID    string            `json:"patientId"`
	PatientName  string            `json:"patientName"`
	ProviderID   string            `json:"providerId"`
	ProviderName string            `json:"providerName"`
	Date         string            `json:"date"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	Type         AppointmentType   `json:"type"`
	Status       AppointmentStatus `json:"status"`
	Room         string            `json:"room"`
	Notes        string            `json:"notes"`
	Reason       string            `json:"reason"`
}

// Appointment creation defaults
const (
	DefaultProviderID   = "prov-1"
	DefaultProviderName = "Dr. Chen"
	DefaultRoom         = "Room 101"
)

// CreateAppointmentRequest is the body of POST /appointments. Every field is
// optional; missing ones are defaulted by the service.
type CreateAppointmentRequest struct {
	PatientID    string            `json:"patientId"`
	PatientName  string            `json:"patientName"`
	ProviderID   string            `json:"providerId"`
	ProviderName string            `json:"providerName"`
	Date         string            `json:"date"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	Type         AppointmentType   `json:"type"`
	Status       AppointmentStatus `json:"status"`
	Room         string            `json:"room"`
	Notes        string            `json:"notes"`
	Reason       string            `json:"reason"`
}

type AppointmentFilters struct {
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	ProviderID string `form:"providerId"`
}

type ConflictQuery struct {
	Date      string `form:"date" binding:"required"`
	StartTime string `form:"startTime" binding:"required"`
	ExcludeID string `form:"excludeId"`
}

// ConflictResult flags overlapping bookings without blocking them.
type ConflictResult struct {
	Conflict     bool           `json:"conflict"`
	Appointments []*Appointment `json:"appointments"`
}
