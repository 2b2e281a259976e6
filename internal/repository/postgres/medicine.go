package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type medicineRepository struct {
	BaseRepository
}

func NewMedicineRepository(base BaseRepository) repository.MedicineRepository {
	return &medicineRepository{base}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	query := `
		INSERT INTO medicines (name, generic_name, category, description, usage, dosage, side_effects, price, pharmacy_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		medicine.Name,
		medicine.GenericName,
		medicine.Category,
		medicine.Description,
		medicine.Usage,
		medicine.Dosage,
		medicine.SideEffects,
		medicine.Price,
		medicine.PharmacyID,
	).Scan(&medicine.ID)
	if err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	return nil
}

func (r *medicineRepository) Get(ctx context.Context, id int64) (*model.Medicine, error) {
	var medicine model.Medicine
	err := r.db.GetContext(ctx, &medicine, `SELECT * FROM medicines WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	return &medicine, nil
}

// List applies a case-insensitive substring filter on name and an exact match
// on category.
func (r *medicineRepository) List(ctx context.Context, filters *model.MedicineFilters) ([]*model.Medicine, error) {
	query := `SELECT * FROM medicines WHERE 1=1`
	args := []interface{}{}

	if filters != nil && filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filters != nil && filters.Category != "" {
		args = append(args, filters.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY name"

	medicines := []*model.Medicine{}
	if err := r.db.SelectContext(ctx, &medicines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, nil
}
