package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type pharmacyRepository struct {
	BaseRepository
}

func NewPharmacyRepository(base BaseRepository) repository.PharmacyRepository {
	return &pharmacyRepository{base}
}

func (r *pharmacyRepository) Get(ctx context.Context, id int64) (*model.Pharmacy, error) {
	var pharmacy model.Pharmacy
	err := r.db.GetContext(ctx, &pharmacy, `SELECT * FROM pharmacies WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pharmacy: %w", err)
	}
	return &pharmacy, nil
}

func (r *pharmacyRepository) GetByUserID(ctx context.Context, userID int64) (*model.Pharmacy, error) {
	var pharmacy model.Pharmacy
	err := r.db.GetContext(ctx, &pharmacy, `SELECT * FROM pharmacies WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pharmacy by user: %w", err)
	}
	return &pharmacy, nil
}
