package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driven"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driving"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
)

// allowedUploadExts are the file extensions accepted for upload.
var allowedUploadExts = []string{".pdf"}

// ResumeService implements driving.ResumeIngestor. Extraction is
// delegated to the driven extractor; this service adds upload
// validation, storage and cleanup.
type ResumeService struct {
	extractor driven.DocumentExtractor
	settings  domain.IngestSettings
}

var _ driving.ResumeIngestor = (*ResumeService)(nil)

// NewResumeService creates a ResumeService.
func NewResumeService(extractor driven.DocumentExtractor, settings domain.IngestSettings) *ResumeService {
	return &ResumeService{
		extractor: extractor,
		settings:  settings,
	}
}

// Extract converts document bytes into an ExtractedDocument.
func (s *ResumeService) Extract(ctx context.Context, data []byte) domain.ExtractedDocument {
	return s.extractor.Extract(ctx, data)
}

// ParseBasicStructure partitions extracted lines into named buckets.
func (s *ResumeService) ParseBasicStructure(lines []string) domain.DocumentStructure {
	return s.extractor.ParseBasicStructure(lines)
}

// ProcessUpload validates an uploaded file, stores it under a unique
// name, and extracts its content. The stored file is removed again when
// extraction produces no text at all.
func (s *ResumeService) ProcessUpload(ctx context.Context, fileName string, data []byte) (*domain.UploadSummary, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: no filename provided", domain.ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !extAllowed(ext) {
		return nil, fmt.Errorf("%w: %q (allowed: %s)",
			domain.ErrUnsupportedFileType, ext, strings.Join(allowedUploadExts, ", "))
	}

	if int64(len(data)) > s.settings.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d",
			domain.ErrFileTooLarge, len(data), s.settings.MaxUploadBytes)
	}

	hash := sha256.Sum256(data)
	contentHash := hex.EncodeToString(hash[:])

	uniqueName := uuid.New().String() + "_" + filepath.Base(fileName)
	storedPath := filepath.Join(s.settings.UploadDir, uniqueName)

	if err := os.MkdirAll(s.settings.UploadDir, 0750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(storedPath, data, 0640); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	extracted := s.extractor.Extract(ctx, data)

	if extracted.RawText == "" && len(extracted.Errors) == 0 {
		extracted.Errors = append(extracted.Errors, "No text could be extracted from PDF.")
	}

	// A file that yielded nothing is not worth keeping around.
	if extracted.RawText == "" {
		if err := os.Remove(storedPath); err != nil {
			logger.Warn("could not remove empty upload %s: %v", storedPath, err)
		}
		storedPath = ""
	}

	summary := &domain.UploadSummary{
		FileName:    fileName,
		FilePath:    storedPath,
		FileSize:    int64(len(data)),
		ContentHash: contentHash,
		PageCount:   extracted.PageCount,
		LineCount:   len(extracted.Lines),
		BulletCount: len(extracted.BulletPoints),
	}
	if len(extracted.Errors) > 0 {
		summary.ProcessingError = strings.Join(extracted.Errors, "; ")
	}

	logger.Debug("processed upload %s: %d pages, %d lines, %d bullets",
		fileName, summary.PageCount, summary.LineCount, summary.BulletCount)

	return summary, nil
}

func extAllowed(ext string) bool {
	for _, allowed := range allowedUploadExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
