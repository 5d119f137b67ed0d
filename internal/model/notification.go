package model

type NotificationType string

const (
	NotificationTypeAppointment  NotificationType = "appointment"
	NotificationTypePatientAlert NotificationType = "patient-alert"
	NotificationTypeMessage      NotificationType = "message"
	NotificationTypeSystem       NotificationType = "system"
)

// Notification is only ever mutated through its read flag.
type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Read          bool             `json:"read"`
	CreatedAt     string           `json:"createdAt"`
	Link          string           `json:"link,omitempty"`
	PatientID     string           `json:"patientId,omitempty"`
	AppointmentID string           `json:"appointmentId,omitempty"`
}
