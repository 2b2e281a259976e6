package model

// Insurance plan type constants
const (
	PlanTypePrivate    = "private"
	PlanTypeGovernment = "government"
)

// InsurancePlan is static reference data matched against patient profiles.
type InsurancePlan struct {
	ID             int64    `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Provider       string   `json:"provider" db:"provider"`
	PlanType       string   `json:"plan_type" db:"plan_type"`
	CoverageAmount *float64 `json:"coverage_amount" db:"coverage_amount"`
	Premium        *float64 `json:"premium" db:"premium"`
	AgeLimit       *string  `json:"age_limit" db:"age_limit"`
	Description    *string  `json:"description" db:"description"`
	Eligibility    JSONMap  `json:"eligibility" db:"eligibility"`
}

// InsuranceRecommendations pairs AI output with the stored plan catalog.
type InsuranceRecommendations struct {
	AIRecommendations *AIRecommendation `json:"ai_recommendations"`
	AvailablePlans    []*InsurancePlan  `json:"available_plans"`
}
