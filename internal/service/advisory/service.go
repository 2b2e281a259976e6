package advisory

import (
	"context"
	"errors"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

// Advisor produces insurance and scheme guidance from a flattened patient
// profile. Failures surface as degraded payloads, never as errors.
type Advisor interface {
	RecommendInsurance(ctx context.Context, profile *model.AdvisoryProfile) *model.AIRecommendation
	FindGovernmentSchemes(ctx context.Context, location string, profile *model.AdvisoryProfile) *model.SchemeResult
}

type Service struct {
	patientRepo   repository.PatientRepository
	insuranceRepo repository.InsuranceRepository
	advisor       Advisor
}

func NewService(patientRepo repository.PatientRepository, insuranceRepo repository.InsuranceRepository, advisor Advisor) *Service {
	return &Service{
		patientRepo:   patientRepo,
		insuranceRepo: insuranceRepo,
		advisor:       advisor,
	}
}

// InsuranceRecommendations pairs AI suggestions for the caller's profile with
// the stored plan catalog.
func (s *Service) InsuranceRecommendations(ctx context.Context, userID int64) (*model.InsuranceRecommendations, error) {
	patient, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommendations := s.advisor.RecommendInsurance(ctx, &model.AdvisoryProfile{
		Age:            patient.Age,
		Location:       patient.Location,
		FamilyMembers:  patient.FamilyMembers,
		MonthlyIncome:  patient.MonthlyIncome,
		MedicalHistory: patient.MedicalHistory,
	})

	plans, err := s.insuranceRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.InsuranceRecommendations{
		AIRecommendations: recommendations,
		AvailablePlans:    plans,
	}, nil
}

// GovernmentSchemes looks up schemes for the caller's location and profile.
func (s *Service) GovernmentSchemes(ctx context.Context, userID int64) (*model.SchemeResult, error) {
	patient, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	location := ""
	if patient.Location != nil {
		location = *patient.Location
	}

	return s.advisor.FindGovernmentSchemes(ctx, location, &model.AdvisoryProfile{
		Age:           patient.Age,
		Gender:        patient.Gender,
		FamilyMembers: patient.FamilyMembers,
		MonthlyIncome: patient.MonthlyIncome,
	}), nil
}

func (s *Service) ownProfile(ctx context.Context, userID int64) (*model.Patient, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("no patient profile for this account", err)
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}
