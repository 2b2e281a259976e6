package patient

import (
	"context"
	"errors"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

type Service struct {
	repo       repository.PatientRepository
	doctorRepo repository.DoctorRepository
}

func NewService(repo repository.PatientRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{repo: repo, doctorRepo: doctorRepo}
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

// UpdateOwnProfile applies the allow-listed fields to the profile owned by
// the authenticated user. Fields absent from the request are untouched.
func (s *Service) UpdateOwnProfile(ctx context.Context, userID int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("no patient profile for this account", err)
		}
		return nil, apperrors.Internal(err)
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = req.Age
	}
	if req.Gender != nil {
		patient.Gender = req.Gender
	}
	if req.Location != nil {
		patient.Location = req.Location
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.FamilyMembers != nil {
		patient.FamilyMembers = *req.FamilyMembers
	}
	if req.MonthlyIncome != nil {
		patient.MonthlyIncome = req.MonthlyIncome
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

// SearchAvailableDoctors lists doctors currently accepting consultations,
// optionally narrowed by location and specialization substrings.
func (s *Service) SearchAvailableDoctors(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	doctors, err := s.doctorRepo.ListAvailable(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}
