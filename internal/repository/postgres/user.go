package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) Register(ctx context.Context, user *model.User, profile interface{}) error {
	user.CreatedAt = time.Now()
	user.IsActive = true

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO users (email, phone, password_hash, user_type, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		if err := tx.QueryRowxContext(ctx, query,
			user.Email,
			user.Phone,
			user.PasswordHash,
			user.UserType,
			user.IsActive,
			user.CreatedAt,
		).Scan(&user.ID); err != nil {
			return err
		}

		switch p := profile.(type) {
		case *model.Patient:
			p.UserID = user.ID
			if p.FamilyMembers < 1 {
				p.FamilyMembers = 1
			}
			return tx.QueryRowxContext(ctx, `
				INSERT INTO patients (user_id, name, age, gender, location, medical_history, family_members, monthly_income)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id
			`, p.UserID, p.Name, p.Age, p.Gender, p.Location, p.MedicalHistory, p.FamilyMembers, p.MonthlyIncome).Scan(&p.ID)
		case *model.Doctor:
			p.UserID = user.ID
			p.IsAvailable = true
			return tx.QueryRowxContext(ctx, `
				INSERT INTO doctors (user_id, name, specialization, experience, qualification, location, consultation_fee, phone, whatsapp, is_available)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id
			`, p.UserID, p.Name, p.Specialization, p.Experience, p.Qualification, p.Location, p.ConsultationFee, p.Phone, p.Whatsapp, p.IsAvailable).Scan(&p.ID)
		case *model.Pharmacy:
			p.UserID = user.ID
			return tx.QueryRowxContext(ctx, `
				INSERT INTO pharmacies (user_id, name, location, phone, license_number)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, p.UserID, p.Name, p.Location, p.Phone, p.LicenseNumber).Scan(&p.ID)
		default:
			return fmt.Errorf("unsupported profile type %T", profile)
		}
	})
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) ProfileID(ctx context.Context, userID int64, userType string) (*int64, error) {
	var table string
	switch userType {
	case model.UserTypePatient:
		table = "patients"
	case model.UserTypeDoctor:
		table = "doctors"
	case model.UserTypePharmacy:
		table = "pharmacies"
	default:
		return nil, nil
	}

	var id int64
	err := r.db.GetContext(ctx, &id, fmt.Sprintf(`SELECT id FROM %s WHERE user_id = $1`, table), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve profile id: %w", err)
	}
	return &id, nil
}

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "phone") {
			return repository.ErrDuplicatePhone
		}
		return repository.ErrDuplicateEmail
	}
	return err
}
