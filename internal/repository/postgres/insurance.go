package postgres

import (
	"context"
	"fmt"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type insuranceRepository struct {
	BaseRepository
}

func NewInsuranceRepository(base BaseRepository) repository.InsuranceRepository {
	return &insuranceRepository{base}
}

func (r *insuranceRepository) List(ctx context.Context) ([]*model.InsurancePlan, error) {
	plans := []*model.InsurancePlan{}
	if err := r.db.SelectContext(ctx, &plans, `SELECT * FROM insurance_plans ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list insurance plans: %w", err)
	}
	return plans, nil
}
