package model

// Vital is a single set of readings. There is no update path.
type Vital struct {
	ID                     string  `json:"id"`
	PatientID              string  `json:"patientId"`
	Date                   string  `json:"date"`
	BloodPressureSystolic  int     `json:"bloodPressureSystolic"`
	BloodPressureDiastolic int     `json:"bloodPressureDiastolic"`
	HeartRate              int     `json:"heartRate"`
	Temperature            float64 `json:"temperature"`
	RespiratoryRate        int     `json:"respiratoryRate"`
	OxygenSaturation       int     `json:"oxygenSaturation"`
	Weight                 int     `json:"weight"`
	Height                 int     `json:"height"`
	RecordedBy             string  `json:"recordedBy"`
}
