package model

// Patient is the role profile attached to a patient account.
type Patient struct {
	ID             int64    `json:"id" db:"id"`
	UserID         int64    `json:"user_id" db:"user_id"`
	Name           string   `json:"name" db:"name"`
	Age            *int     `json:"age" db:"age"`
	Gender         *string  `json:"gender" db:"gender"`
	Location       *string  `json:"location" db:"location"`
	MedicalHistory *string  `json:"medical_history" db:"medical_history"`
	FamilyMembers  int      `json:"family_members" db:"family_members"`
	MonthlyIncome  *float64 `json:"monthly_income" db:"monthly_income"`
}

// UpdatePatientRequest carries the allow-listed patient profile fields.
// Absent fields are left untouched.
type UpdatePatientRequest struct {
	Name           *string  `json:"name"`
	Age            *int     `json:"age" binding:"omitempty,min=0,max=150"`
	Gender         *string  `json:"gender"`
	Location       *string  `json:"location"`
	MedicalHistory *string  `json:"medical_history"`
	FamilyMembers  *int     `json:"family_members" binding:"omitempty,min=1"`
	MonthlyIncome  *float64 `json:"monthly_income" binding:"omitempty,min=0"`
}

// AdvisoryProfile is the flattened patient view handed to the AI collaborator.
type AdvisoryProfile struct {
	Age            *int     `json:"age"`
	Gender         *string  `json:"gender,omitempty"`
	Location       *string  `json:"location"`
	FamilyMembers  int      `json:"family_members"`
	MonthlyIncome  *float64 `json:"monthly_income"`
	MedicalHistory *string  `json:"medical_history,omitempty"`
}

// DoctorSearchFilters narrows the available-doctor listing.
type DoctorSearchFilters struct {
	Location       string `form:"location"`
	Specialization string `form:"specialization"`
}
