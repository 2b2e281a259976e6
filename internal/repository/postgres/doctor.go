package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, `SELECT * FROM doctors WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByUserID(ctx context.Context, userID int64) (*model.Doctor, error) {
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, `SELECT * FROM doctors WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor by user: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors SET
			name = $1,
			specialization = $2,
			experience = $3,
			qualification = $4,
			location = $5,
			consultation_fee = $6,
			phone = $7,
			whatsapp = $8
		WHERE id = $9
	`
	result, err := r.db.ExecContext(ctx, query,
		doctor.Name,
		doctor.Specialization,
		doctor.Experience,
		doctor.Qualification,
		doctor.Location,
		doctor.ConsultationFee,
		doctor.Phone,
		doctor.Whatsapp,
		doctor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE doctors SET is_available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) ListAvailable(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE is_available = TRUE`
	args := []interface{}{}

	if filters != nil && filters.Location != "" {
		args = append(args, "%"+filters.Location+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	if filters != nil && filters.Specialization != "" {
		args = append(args, "%"+filters.Specialization+"%")
		query += fmt.Sprintf(" AND specialization ILIKE $%d", len(args))
	}
	query += " ORDER BY name"

	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}
