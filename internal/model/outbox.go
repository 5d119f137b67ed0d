package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "PENDING"
	OutboxStatusProcessed OutboxStatus = "PROCESSED"
	OutboxStatusFailed    OutboxStatus = "FAILED"
)

// Domain event types recorded by the mutation services
const (
	EventPatientUpdated       = "patient.updated"
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentCancelled = "appointment.cancelled"
	EventNoteCreated          = "note.created"
	EventNotificationRead     = "notification.read"
	EventNotificationsReadAll = "notification.read_all"
)

type OutboxEvent struct {
	ID           uuid.UUID         `json:"id"`
	EventType    string            `json:"event_type"`
	Payload      json.RawMessage   `json:"payload"`
	Headers      map[string]string `json:"headers,omitempty"`
	Status       OutboxStatus      `json:"status"`
	ErrorMessage *string           `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	ProcessedAt  *time.Time        `json:"processed_at,omitempty"`
	RetryCount   int               `json:"retry_count"`
}
