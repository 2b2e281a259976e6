package model

import "time"

// User type constants
const (
	UserTypePatient  = "patient"
	UserTypeDoctor   = "doctor"
	UserTypePharmacy = "pharmacy"
)

// User represents a platform account. Each user owns exactly one role profile
// matching its type.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Password     string    `json:"password,omitempty" db:"-"`
	PasswordHash string    `json:"-" db:"password_hash"`
	UserType     string    `json:"user_type" db:"user_type"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ValidUserType reports whether t names a known role profile.
func ValidUserType(t string) bool {
	switch t {
	case UserTypePatient, UserTypeDoctor, UserTypePharmacy:
		return true
	}
	return false
}
