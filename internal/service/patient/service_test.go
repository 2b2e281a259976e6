package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

type fakePatientRepo struct {
	byID     map[int64]*model.Patient
	byUserID map[int64]*model.Patient
	updated  *model.Patient
}

func newFakePatientRepo(patients ...*model.Patient) *fakePatientRepo {
	r := &fakePatientRepo{
		byID:     make(map[int64]*model.Patient),
		byUserID: make(map[int64]*model.Patient),
	}
	for _, p := range patients {
		r.byID[p.ID] = p
		r.byUserID[p.UserID] = p
	}
	return r
}

func (r *fakePatientRepo) Get(_ context.Context, id int64) (*model.Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakePatientRepo) GetByUserID(_ context.Context, userID int64) (*model.Patient, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *model.Patient) error {
	r.updated = patient
	return nil
}

type fakeDoctorRepo struct {
	doctors     []*model.Doctor
	lastFilters *model.DoctorSearchFilters
}

func (r *fakeDoctorRepo) Get(_ context.Context, _ int64) (*model.Doctor, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeDoctorRepo) GetByUserID(_ context.Context, _ int64) (*model.Doctor, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeDoctorRepo) Update(_ context.Context, _ *model.Doctor) error { return nil }

func (r *fakeDoctorRepo) SetAvailability(_ context.Context, _ int64, _ bool) error { return nil }

func (r *fakeDoctorRepo) ListAvailable(_ context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	r.lastFilters = filters
	return r.doctors, nil
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateOwnProfileMergesOnlyProvidedFields(t *testing.T) {
	existing := &model.Patient{
		ID:            7,
		UserID:        3,
		Name:          "Ravi",
		Age:           intPtr(30),
		Location:      strPtr("Pune"),
		FamilyMembers: 2,
	}
	repo := newFakePatientRepo(existing)
	svc := NewService(repo, &fakeDoctorRepo{})

	updated, err := svc.UpdateOwnProfile(context.Background(), 3, &model.UpdatePatientRequest{
		Age:           intPtr(31),
		MonthlyIncome: floatPtr(45000),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi", updated.Name)
	assert.Equal(t, 31, *updated.Age)
	assert.Equal(t, "Pune", *updated.Location)
	assert.Equal(t, 2, updated.FamilyMembers)
	assert.Equal(t, 45000.0, *updated.MonthlyIncome)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
}

func TestUpdateOwnProfileWithoutProfile(t *testing.T) {
	svc := NewService(newFakePatientRepo(), &fakeDoctorRepo{})

	_, err := svc.UpdateOwnProfile(context.Background(), 99, &model.UpdatePatientRequest{
		Name: strPtr("Someone"),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrForbidden, appErr.Code)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewService(newFakePatientRepo(), &fakeDoctorRepo{})

	_, err := svc.GetProfile(context.Background(), 123)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestSearchAvailableDoctorsPassesFilters(t *testing.T) {
	doctorRepo := &fakeDoctorRepo{
		doctors: []*model.Doctor{{ID: 1, Name: "Dr. Rao", IsAvailable: true}},
	}
	svc := NewService(newFakePatientRepo(), doctorRepo)

	doctors, err := svc.SearchAvailableDoctors(context.Background(), &model.DoctorSearchFilters{
		Location:       "Mumbai",
		Specialization: "cardio",
	})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Mumbai", doctorRepo.lastFilters.Location)
	assert.Equal(t, "cardio", doctorRepo.lastFilters.Specialization)
}
