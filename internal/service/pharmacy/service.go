package pharmacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

const explanationCacheTTL = 24 * time.Hour

// Explainer produces plain-language medicine explanations.
type Explainer interface {
	ExplainMedicine(ctx context.Context, name string, details map[string]interface{}) *model.AIExplanation
}

type Service struct {
	medicineRepo repository.MedicineRepository
	pharmacyRepo repository.PharmacyRepository
	explainer    Explainer
	cache        *redis.Client
	logger       zerolog.Logger
}

// NewService wires the catalog. cache may be nil; explanations are then
// regenerated on every detail lookup.
func NewService(medicineRepo repository.MedicineRepository, pharmacyRepo repository.PharmacyRepository,
	explainer Explainer, cache *redis.Client, logger zerolog.Logger) *Service {
	return &Service{
		medicineRepo: medicineRepo,
		pharmacyRepo: pharmacyRepo,
		explainer:    explainer,
		cache:        cache,
		logger:       logger.With().Str("component", "pharmacy_service").Logger(),
	}
}

func (s *Service) ListMedicines(ctx context.Context, filters *model.MedicineFilters) ([]*model.Medicine, error) {
	medicines, err := s.medicineRepo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return medicines, nil
}

// GetMedicineDetails returns the catalog entry enriched with an AI
// explanation. Explanation failures degrade to the fixed fallback and never
// block the primary response.
func (s *Service) GetMedicineDetails(ctx context.Context, id int64) (*model.MedicineDetails, error) {
	medicine, err := s.medicineRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("medicine", err)
		}
		return nil, apperrors.Internal(err)
	}

	explanation := s.cachedExplanation(ctx, medicine)
	return &model.MedicineDetails{
		Medicine:      medicine,
		AIExplanation: explanation,
	}, nil
}

// AddMedicine creates a catalog entry under the caller's own pharmacy. The
// pharmacy id always comes from the authenticated identity.
func (s *Service) AddMedicine(ctx context.Context, userID int64, req *model.CreateMedicineRequest) (*model.Medicine, error) {
	pharmacy, err := s.pharmacyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("no pharmacy profile for this account", err)
		}
		return nil, apperrors.Internal(err)
	}

	medicine := &model.Medicine{
		Name:        req.Name,
		GenericName: req.GenericName,
		Category:    req.Category,
		Description: req.Description,
		Usage:       req.Usage,
		Dosage:      req.Dosage,
		SideEffects: req.SideEffects,
		Price:       req.Price,
		PharmacyID:  pharmacy.ID,
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, apperrors.Internal(err)
	}
	return medicine, nil
}

func (s *Service) cachedExplanation(ctx context.Context, medicine *model.Medicine) *model.AIExplanation {
	key := fmt.Sprintf("medicine:explanation:%d", medicine.ID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var explanation model.AIExplanation
			if json.Unmarshal(cached, &explanation) == nil {
				return &explanation
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Debug().Err(err).Str("key", key).Msg("explanation cache read failed")
		}
	}

	explanation := s.explainer.ExplainMedicine(ctx, medicine.Name, map[string]interface{}{
		"name":         medicine.Name,
		"generic_name": medicine.GenericName,
		"category":     medicine.Category,
		"usage":        medicine.Usage,
		"dosage":       medicine.Dosage,
	})

	if s.cache != nil && explanation.Status == model.AIStatusSuccess {
		if b, err := json.Marshal(explanation); err == nil {
			if err := s.cache.Set(ctx, key, b, explanationCacheTTL).Err(); err != nil {
				s.logger.Debug().Err(err).Str("key", key).Msg("explanation cache write failed")
			}
		}
	}

	return explanation
}
