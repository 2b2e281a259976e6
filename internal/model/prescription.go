package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PrescriptionMedicine is one medicine extracted from a scanned prescription.
type PrescriptionMedicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Purpose   string `json:"purpose"`
}

// PrescriptionMedicines is stored as a jsonb column.
type PrescriptionMedicines []PrescriptionMedicine

func (m PrescriptionMedicines) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(PrescriptionMedicines{})
	}
	return json.Marshal(m)
}

func (m *PrescriptionMedicines) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into PrescriptionMedicines", src)
	}
	return json.Unmarshal(b, m)
}

// PrescriptionAnalysis is the structured result produced by the AI
// collaborator for a scanned prescription.
type PrescriptionAnalysis struct {
	Medicines   PrescriptionMedicines `json:"medicines"`
	DoctorNotes string                `json:"doctor_notes"`
	Warnings    []string              `json:"warnings"`
	Summary     string                `json:"summary"`
}

func (a PrescriptionAnalysis) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *PrescriptionAnalysis) Scan(src interface{}) error {
	if src == nil {
		*a = PrescriptionAnalysis{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into PrescriptionAnalysis", src)
	}
	return json.Unmarshal(b, a)
}

// Prescription is an analyzed prescription scan. Rows are created once and
// never updated.
type Prescription struct {
	ID            int64                 `json:"id" db:"id"`
	PatientID     int64                 `json:"patient_id" db:"patient_id"`
	DoctorID      *int64                `json:"doctor_id" db:"doctor_id"`
	ImagePath     string                `json:"image_path" db:"image_path"`
	ExtractedText string                `json:"extracted_text" db:"extracted_text"`
	AIAnalysis    PrescriptionAnalysis  `json:"ai_analysis" db:"ai_analysis"`
	Medicines     PrescriptionMedicines `json:"medicines" db:"medicines"`
	CreatedAt     time.Time             `json:"created_at" db:"created_at"`
}

// AnalyzePrescriptionResponse is returned after a scan is processed.
type AnalyzePrescriptionResponse struct {
	PrescriptionID int64                 `json:"prescription_id"`
	ExtractedText  string                `json:"extracted_text"`
	Analysis       *PrescriptionAnalysis `json:"analysis"`
}
