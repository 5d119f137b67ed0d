package model

type NoteType string

const (
	NoteTypeProgress  NoteType = "progress"
	NoteTypeSOAP      NoteType = "soap"
	NoteTypeProcedure NoteType = "procedure"
	NoteTypeDischarge NoteType = "discharge"
	NoteTypeReferral  NoteType = "referral"
)

type Note struct {
	ID           string   `json:"id"`
	PatientID    string   `json:"patientId"`
	ProviderID   string   `json:"providerId"`
	ProviderName string   `json:"providerName"`
	Date         string   `json:"date"`
	Type         NoteType `json:"type"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	UpdatedAt    string   `json:"updatedAt"`
}

type CreateNoteRequest struct {
	Type    NoteType `json:"type,omitempty"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
}
