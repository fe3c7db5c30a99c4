package services

import (
	"context"

	"github.com/jobfit-labs/jobfit-ingest/internal/classify"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driven"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driving"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
	"github.com/jobfit-labs/jobfit-ingest/internal/normalisers/jobtext"
	"github.com/jobfit-labs/jobfit-ingest/internal/sections"
)

// DefaultTitle is used when neither the caller nor the text supplied
// a job title.
const DefaultTitle = "Untitled Position"

// JobService implements driving.JobIngestor: it cleans job description
// text and extracts metadata and sections from it, and can pull the
// text from a URL first.
type JobService struct {
	fetcher driven.URLFetcher
}

var _ driving.JobIngestor = (*JobService)(nil)

// NewJobService creates a JobService. The fetcher may be nil when only
// CleanAndParse is needed.
func NewJobService(fetcher driven.URLFetcher) *JobService {
	return &JobService{fetcher: fetcher}
}

// CleanAndParse normalises raw job text and extracts metadata and
// sections. The title resolves user hint first, then the extracted
// title, then DefaultTitle.
func (s *JobService) CleanAndParse(rawText, titleHint string) domain.JobParseResult {
	cleaned := jobtext.Normalise(rawText)

	metadata := classify.ExtractMetadata(cleaned, titleHint)
	if metadata.Title == "" {
		metadata.Title = DefaultTitle
	}

	parsed := sections.Extract(cleaned)

	logger.Debug("parsed job text: %d chars, title %q", len(cleaned), metadata.Title)

	return domain.JobParseResult{
		CleanedText: cleaned,
		Metadata:    metadata,
		Sections:    parsed,
	}
}

// IngestURL fetches a job posting URL and, on success, parses the
// extracted text. Job is nil when the fetch failed; the fetch result
// carries the failure detail either way.
func (s *JobService) IngestURL(ctx context.Context, url, titleHint string) driving.URLIngestion {
	result := s.fetcher.Ingest(ctx, url)
	if !result.Success {
		logger.Info("URL ingestion failed for %s: %s", url, result.ErrorMessage)
		return driving.URLIngestion{Fetch: result}
	}

	job := s.CleanAndParse(result.RawText, titleHint)
	return driving.URLIngestion{
		Fetch: result,
		Job:   &job,
	}
}
