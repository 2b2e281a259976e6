package model

// Medicine is a catalog entry owned by a pharmacy.
type Medicine struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	GenericName *string  `json:"generic_name" db:"generic_name"`
	Category    *string  `json:"category" db:"category"`
	Description *string  `json:"description" db:"description"`
	Usage       *string  `json:"usage" db:"usage"`
	Dosage      *string  `json:"dosage" db:"dosage"`
	SideEffects *string  `json:"side_effects" db:"side_effects"`
	Price       *float64 `json:"price" db:"price"`
	PharmacyID  int64    `json:"pharmacy_id" db:"pharmacy_id"`
}

// CreateMedicineRequest adds a medicine to the caller's own pharmacy catalog.
type CreateMedicineRequest struct {
	Name        string   `json:"name" binding:"required"`
	GenericName *string  `json:"generic_name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Usage       *string  `json:"usage"`
	Dosage      *string  `json:"dosage"`
	SideEffects *string  `json:"side_effects"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
}

// MedicineFilters narrows the catalog listing.
type MedicineFilters struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// MedicineDetails is a catalog entry enriched with an AI explanation.
type MedicineDetails struct {
	Medicine      *Medicine      `json:"medicine"`
	AIExplanation *AIExplanation `json:"ai_explanation"`
}
