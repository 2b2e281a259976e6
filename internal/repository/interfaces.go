package repository

import (
	"context"
	"errors"

	"github.com/healthcompanion/api/internal/model"
)

// Sentinel errors shared by all implementations
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
)

// All repository interfaces in one file
type (
	// UserRepository handles accounts and their role profiles
	UserRepository interface {
		// Register inserts the user row and its role profile in a single
		// transaction; profile must be *model.Patient, *model.Doctor or
		// *model.Pharmacy matching user.UserType.
		Register(ctx context.Context, user *model.User, profile interface{}) error
		Get(ctx context.Context, id int64) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		EmailExists(ctx context.Context, email string) (bool, error)
		ProfileID(ctx context.Context, userID int64, userType string) (*int64, error)
	}

	PatientRepository interface {
		Get(ctx context.Context, id int64) (*model.Patient, error)
		GetByUserID(ctx context.Context, userID int64) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
	}

	DoctorRepository interface {
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		GetByUserID(ctx context.Context, userID int64) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		SetAvailability(ctx context.Context, id int64, available bool) error
		ListAvailable(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error)
	}

	PharmacyRepository interface {
		Get(ctx context.Context, id int64) (*model.Pharmacy, error)
		GetByUserID(ctx context.Context, userID int64) (*model.Pharmacy, error)
	}

	MedicineRepository interface {
		Create(ctx context.Context, medicine *model.Medicine) error
		Get(ctx context.Context, id int64) (*model.Medicine, error)
		List(ctx context.Context, filters *model.MedicineFilters) ([]*model.Medicine, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
	}

	PostRepository interface {
		Create(ctx context.Context, post *model.Post) error
		Get(ctx context.Context, id int64) (*model.PostWithAuthor, error)
		List(ctx context.Context, filters *model.PostFilters) ([]*model.PostWithAuthor, error)
		// IncrementLikes adds exactly one like atomically and returns the new
		// counter value.
		IncrementLikes(ctx context.Context, id int64) (int, error)
	}

	InsuranceRepository interface {
		List(ctx context.Context) ([]*model.InsurancePlan, error)
	}
)
