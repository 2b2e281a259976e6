package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/healthcompanion/api/internal/model"
)

// SeedInsurancePlans populates the insurance plan catalog on first boot.
// The table is static reference data, so seeding is skipped once any rows
// exist.
func SeedInsurancePlans(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM insurance_plans`); err != nil {
		return fmt.Errorf("failed to count insurance plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, plan := range InsurancePlanSeed() {
		_, err := db.NamedExecContext(ctx, `
			INSERT INTO insurance_plans (name, provider, plan_type, coverage_amount, premium, age_limit, description, eligibility)
			VALUES (:name, :provider, :plan_type, :coverage_amount, :premium, :age_limit, :description, :eligibility)`, plan)
		if err != nil {
			return fmt.Errorf("failed to seed insurance plan %q: %w", plan.Name, err)
		}
	}
	return nil
}

// InsurancePlanSeed returns the built-in insurance plan catalog.
func InsurancePlanSeed() []*model.InsurancePlan {
	return []*model.InsurancePlan{
		{
			Name:           "Ayushman Bharat",
			Provider:       "Government of India",
			PlanType:       model.PlanTypeGovernment,
			CoverageAmount: seedFloat(500000),
			Premium:        seedFloat(0),
			AgeLimit:       seedString("No age limit"),
			Description:    seedString("Free healthcare coverage for economically vulnerable families"),
			Eligibility:    model.JSONMap{"income_limit": 50000, "family_based": true},
		},
		{
			Name:           "Star Health Family Plan",
			Provider:       "Star Health Insurance",
			PlanType:       model.PlanTypePrivate,
			CoverageAmount: seedFloat(300000),
			Premium:        seedFloat(8500),
			AgeLimit:       seedString("Up to 65 years"),
			Description:    seedString("Comprehensive family health insurance"),
			Eligibility:    model.JSONMap{"age_range": "18-65", "family_coverage": true},
		},
		{
			Name:           "ICICI Lombard Health Care",
			Provider:       "ICICI Lombard",
			PlanType:       model.PlanTypePrivate,
			CoverageAmount: seedFloat(500000),
			Premium:        seedFloat(12000),
			AgeLimit:       seedString("Up to 70 years"),
			Description:    seedString("Premium health insurance with cashless treatment"),
			Eligibility:    model.JSONMap{"age_range": "18-70", "pre_existing_coverage": true},
		},
	}
}

func seedFloat(v float64) *float64 { return &v }

func seedString(v string) *string { return &v }
