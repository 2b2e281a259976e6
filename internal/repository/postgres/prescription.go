package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type prescriptionRepository struct {
	BaseRepository
}

func NewPrescriptionRepository(base BaseRepository) repository.PrescriptionRepository {
	return &prescriptionRepository{base}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	prescription.CreatedAt = time.Now()

	query := `
		INSERT INTO prescriptions (patient_id, doctor_id, image_path, extracted_text, ai_analysis, medicines, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		prescription.PatientID,
		prescription.DoctorID,
		prescription.ImagePath,
		prescription.ExtractedText,
		prescription.AIAnalysis,
		prescription.Medicines,
		prescription.CreatedAt,
	).Scan(&prescription.ID)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}
