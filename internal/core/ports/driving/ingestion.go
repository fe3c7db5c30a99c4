package driving

import (
	"context"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// URLIngestion bundles the fetch outcome of a URL import with the job
// parse of the fetched text. Job is nil when the fetch failed.
type URLIngestion struct {
	Fetch domain.FetchResult     `json:"fetch"`
	Job   *domain.JobParseResult `json:"job,omitempty"`
}

// JobIngestor processes job-description text.
type JobIngestor interface {
	// CleanAndParse normalises raw text and extracts metadata and
	// sections from it. Never fails; empty input yields empty output.
	CleanAndParse(rawText, titleHint string) domain.JobParseResult

	// IngestURL fetches a job posting URL and, on success, feeds the
	// extracted text through CleanAndParse.
	IngestURL(ctx context.Context, url, titleHint string) URLIngestion
}

// ResumeIngestor processes uploaded page-oriented documents.
type ResumeIngestor interface {
	// Extract converts document bytes into an ExtractedDocument.
	Extract(ctx context.Context, data []byte) domain.ExtractedDocument

	// ParseBasicStructure partitions extracted lines into named
	// buckets with contact hints and raw skill tokens.
	ParseBasicStructure(lines []string) domain.DocumentStructure

	// ProcessUpload validates, stores, and extracts an uploaded file.
	// The stored file is removed again if extraction produces nothing.
	ProcessUpload(ctx context.Context, fileName string, data []byte) (*domain.UploadSummary, error)
}

// RepositoryIngestor fetches remote repository metadata.
type RepositoryIngestor interface {
	// Fetch retrieves a repository record. Failures yield a record
	// with ID 0 and populated Errors, never an error.
	Fetch(ctx context.Context, owner, repo string) domain.RepositoryRecord

	// FetchFromURL parses owner/repo out of a URL and fetches it.
	// Returns nil when the URL is not a repository reference.
	FetchFromURL(ctx context.Context, url string) *domain.RepositoryRecord

	// FetchMany fetches one record per input URL, order-preserving.
	// Invalid entries become ID-0 records; the call never fails.
	FetchMany(ctx context.Context, urls []string) []domain.RepositoryRecord

	// RateLimit reports the hosting API quota.
	RateLimit(ctx context.Context) (domain.RateLimitStatus, error)
}
