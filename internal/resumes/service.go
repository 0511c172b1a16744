package resumes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffing-backend/internal/extract"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/storage/object"
	"staffing-backend/internal/shared/telemetry"
	"staffing-backend/resume/parse"
)

// Service contains business logic for resume intake.
type Service struct {
	Store           object.ObjectStore
	Repo            Repo
	Extractor       extract.TextExtractor
	StorageProvider string
	Now             func() time.Time
}

// Upload stores the original file, extracts its text, parses it and records the result.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(fileName) == "" {
		return Resume{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Resume{}, fmt.Errorf("save resume: %w", err)
	}

	metrics.IncParseStarted()
	start := time.Now()

	text, extractedKey, err := extract.ExtractStored(ctx, s.extractor(), s.Store, storageKey, mimeType, fileName)
	if err != nil {
		metrics.IncParseFailed()
		telemetry.Error("resume.extract_failed", map[string]any{
			"user_id":     userID,
			"storage_key": storageKey,
			"mime_type":   mimeType,
			"error":       err.Error(),
		})
		if errors.Is(err, extract.ErrUnsupportedType) {
			return Resume{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, mimeType)
		}
		return Resume{}, err
	}

	res := Resume{
		ID:               uuid.NewString(),
		UserID:           userID,
		FileName:         fileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		StorageProvider:  s.StorageProvider,
		StorageKey:       storageKey,
		ExtractedTextKey: extractedKey,
		Parsed:           parse.Extract(text),
		CreatedAt:        s.now(),
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		metrics.IncParseFailed()
		return Resume{}, fmt.Errorf("record resume: %w", err)
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(durationMs)
	if res.Parsed.IsEmpty() {
		metrics.IncParseEmpty()
	}
	telemetry.Info("resume.parsed", map[string]any{
		"user_id":        userID,
		"resume_id":      res.ID,
		"mime_type":      mimeType,
		"size_bytes":     size,
		"text_len":       len(text),
		"skills":         len(res.Parsed.Skills),
		"experience":     len(res.Parsed.Experience),
		"education":      len(res.Parsed.Education),
		"certifications": len(res.Parsed.Certifications),
		"empty":          res.Parsed.IsEmpty(),
		"duration_ms":    durationMs,
	})

	return res, nil
}

// ParseText parses pasted resume text without storing anything.
func (s *Service) ParseText(ctx context.Context, text string) (parse.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return parse.ParsedResume{}, err
	}
	if strings.TrimSpace(text) == "" {
		return parse.ParsedResume{}, ErrEmptyText
	}
	return parse.Extract(text), nil
}

// Get returns one resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	if userID == "" || strings.TrimSpace(id) == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// Current returns the latest resume for a user.
func (s *Service) Current(ctx context.Context, userID string) (Resume, error) {
	if userID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a resume owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}

func (s *Service) extractor() extract.TextExtractor {
	if s.Extractor == nil {
		return extract.New()
	}
	return s.Extractor
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
