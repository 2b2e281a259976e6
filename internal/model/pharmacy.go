package model

// Pharmacy is the role profile attached to a pharmacy account.
type Pharmacy struct {
	ID            int64   `json:"id" db:"id"`
	UserID        int64   `json:"user_id" db:"user_id"`
	Name          string  `json:"name" db:"name"`
	Location      string  `json:"location" db:"location"`
	Phone         *string `json:"phone" db:"phone"`
	LicenseNumber *string `json:"license_number" db:"license_number"`
}
