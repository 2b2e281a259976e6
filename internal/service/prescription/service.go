package prescription

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthcompanion/api/internal/ai"
	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

// Analyzer produces a structured analysis from extracted prescription text.
type Analyzer interface {
	AnalyzePrescription(ctx context.Context, extractedText string) *model.PrescriptionAnalysis
}

type Service struct {
	repo        repository.PrescriptionRepository
	patientRepo repository.PatientRepository
	extractor   ai.TextExtractor
	analyzer    Analyzer
	uploadDir   string
	maxSize     int64
	logger      zerolog.Logger
}

func NewService(repo repository.PrescriptionRepository, patientRepo repository.PatientRepository,
	extractor ai.TextExtractor, analyzer Analyzer, uploadDir string, maxSizeBytes int64, logger zerolog.Logger) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		extractor:   extractor,
		analyzer:    analyzer,
		uploadDir:   uploadDir,
		maxSize:     maxSizeBytes,
		logger:      logger.With().Str("component", "prescription_service").Logger(),
	}
}

// Analyze stores the uploaded scan under a generated name, extracts its text,
// obtains the structured AI analysis, and persists the prescription row. An
// analysis failure degrades to the placeholder result; it never fails the
// request.
func (s *Service) Analyze(ctx context.Context, userID int64, file *multipart.FileHeader) (*model.AnalyzePrescriptionResponse, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("no patient profile for this account", err)
		}
		return nil, apperrors.Internal(err)
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return nil, apperrors.BadRequest(fmt.Sprintf("file exceeds %d bytes", s.maxSize), nil)
	}

	path, err := s.store(file)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to store upload: %w", err))
	}

	extracted, err := s.extractor.ExtractText(ctx, path, file.Filename)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("text extraction failed")
		extracted = ""
	}

	analysis := s.analyzer.AnalyzePrescription(ctx, extracted)

	prescription := &model.Prescription{
		PatientID:     patient.ID,
		ImagePath:     path,
		ExtractedText: extracted,
		AIAnalysis:    *analysis,
		Medicines:     analysis.Medicines,
	}
	if err := s.repo.Create(ctx, prescription); err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.AnalyzePrescriptionResponse{
		PrescriptionID: prescription.ID,
		ExtractedText:  extracted,
		Analysis:       analysis,
	}, nil
}

func (s *Service) store(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	path := filepath.Join(s.uploadDir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
