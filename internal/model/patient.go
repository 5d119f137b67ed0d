package model

type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
	PatientStatusDeceased PatientStatus = "deceased"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type Patient struct {
	ID                string        `json:"id"`
	MRN               string        `json:"mrn"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	DateOfBirth       string        `json:"dateOfBirth"`
	Gender            Gender        `json:"gender"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Address           Address       `json:"address"`
	InsuranceProvider string        `json:"insuranceProvider"`
	InsuranceID       string        `json:"insuranceId"`
	PrimaryProviderID string        `json:"primaryProviderId"`
	Status            PatientStatus `json:"status"`
	RiskLevel         RiskLevel     `json:"riskLevel"`
	PhotoURL          string        `json:"photoUrl"`
	Allergies         []string      `json:"allergies"`
	Conditions        []string      `json:"conditions"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
}

// FullName returns "First Last", the form denormalized onto appointments.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Clone returns a deep copy so callers never share slices with the store.
func (p *Patient) Clone() *Patient {
	c := *p
	if p.Allergies != nil {
		c.Allergies = append(make([]string, 0, len(p.Allergies)), p.Allergies...)
	}
	if p.Conditions != nil {
		c.Conditions = append(make([]string, 0, len(p.Conditions)), p.Conditions...)
	}
	return &c
}

// PatientFilters carries the query parameters of GET /patients.
// HasUpcoming is a pointer so that an absent parameter differs from "false".
type PatientFilters struct {
	Search      string `form:"search"`
	Status      string `form:"status"`
	Provider    string `form:"provider"`
	HasUpcoming *bool  `form:"hasUpcoming"`
	RiskLevel   string `form:"riskLevel"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1"`
	SortBy      string `form:"sortBy"`
	SortOrder   string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}
