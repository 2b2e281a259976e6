package doctor

import (
	"context"
	"errors"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

// UpdateOwnProfile applies the allow-listed fields to the profile owned by
// the authenticated user.
func (s *Service) UpdateOwnProfile(ctx context.Context, userID int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("no doctor profile for this account", err)
		}
		return nil, apperrors.Internal(err)
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		doctor.Experience = req.Experience
	}
	if req.Qualification != nil {
		doctor.Qualification = req.Qualification
	}
	if req.Location != nil {
		doctor.Location = req.Location
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = req.ConsultationFee
	}
	if req.Phone != nil {
		doctor.Phone = req.Phone
	}
	if req.Whatsapp != nil {
		doctor.Whatsapp = req.Whatsapp
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

// SetOwnAvailability toggles the availability flag on the caller's profile.
func (s *Service) SetOwnAvailability(ctx context.Context, userID int64, available bool) (*model.Doctor, error) {
	doctor, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("no doctor profile for this account", err)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.repo.SetAvailability(ctx, doctor.ID, available); err != nil {
		return nil, apperrors.Internal(err)
	}
	doctor.IsAvailable = available
	return doctor, nil
}
