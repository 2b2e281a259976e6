package model

// Doctor is the role profile attached to a doctor account.
type Doctor struct {
	ID              int64    `json:"id" db:"id"`
	UserID          int64    `json:"user_id" db:"user_id"`
	Name            string   `json:"name" db:"name"`
	Specialization  string   `json:"specialization" db:"specialization"`
	Experience      *int     `json:"experience" db:"experience"`
	Qualification   *string  `json:"qualification" db:"qualification"`
	Location        *string  `json:"location" db:"location"`
	ConsultationFee *float64 `json:"consultation_fee" db:"consultation_fee"`
	Phone           *string  `json:"phone" db:"phone"`
	Whatsapp        *string  `json:"whatsapp" db:"whatsapp"`
	IsAvailable     bool     `json:"is_available" db:"is_available"`
}

// UpdateDoctorRequest carries the allow-listed doctor profile fields.
type UpdateDoctorRequest struct {
	Name            *string  `json:"name"`
	Specialization  *string  `json:"specialization"`
	Experience      *int     `json:"experience" binding:"omitempty,min=0"`
	Qualification   *string  `json:"qualification"`
	Location        *string  `json:"location"`
	ConsultationFee *float64 `json:"consultation_fee" binding:"omitempty,min=0"`
	Phone           *string  `json:"phone"`
	Whatsapp        *string  `json:"whatsapp"`
}

// SetAvailabilityRequest toggles a doctor's availability flag.
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
