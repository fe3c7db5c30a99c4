package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// stubFetcher returns a canned fetch result.
type stubFetcher struct {
	result domain.FetchResult
	calls  int
}

func (s *stubFetcher) Ingest(ctx context.Context, url string) domain.FetchResult {
	s.calls++
	s.result.SourceURL = url
	return s.result
}

const sampleJobText = `Senior Backend Engineer

We build payment infrastructure for marketplaces across Europe.

Requirements:
• 5 years of experience with Go
• Solid SQL knowledge

Benefits:
• Remote work
`

func TestCleanAndParse_TitleHintWins(t *testing.T) {
	svc := NewJobService(nil)

	result := svc.CleanAndParse(sampleJobText, "Staff Engineer")

	assert.Equal(t, "Staff Engineer", result.Metadata.Title)
}

func TestCleanAndParse_ExtractsTitleFromText(t *testing.T) {
	svc := NewJobService(nil)

	result := svc.CleanAndParse(sampleJobText, "")

	assert.Equal(t, "Senior Backend Engineer", result.Metadata.Title)
	assert.Equal(t, "senior", result.Metadata.Seniority)
}

func TestCleanAndParse_DefaultTitle(t *testing.T) {
	svc := NewJobService(nil)

	result := svc.CleanAndParse("some text with no recognisable role in it", "")

	assert.Equal(t, DefaultTitle, result.Metadata.Title)
}

func TestCleanAndParse_SectionsAndCleanedText(t *testing.T) {
	svc := NewJobService(nil)

	result := svc.CleanAndParse(sampleJobText, "")

	assert.NotEmpty(t, result.CleanedText)
	assert.Contains(t, result.Sections.Requirements, "Go")
	assert.Contains(t, result.Sections.Benefits, "Remote work")
}

func TestCleanAndParse_EmptyInput(t *testing.T) {
	svc := NewJobService(nil)

	result := svc.CleanAndParse("", "")

	assert.Empty(t, result.CleanedText)
	assert.Equal(t, DefaultTitle, result.Metadata.Title)
}

func TestIngestURL_FetchFailure(t *testing.T) {
	fetcher := &stubFetcher{result: domain.FetchResult{
		Success:         false,
		ErrorMessage:    "HTTP 503",
		FallbackMessage: "Could not access this page. Please copy and paste the job description text directly.",
	}}
	svc := NewJobService(fetcher)

	ingestion := svc.IngestURL(context.Background(), "https://example.com/job", "")

	assert.Nil(t, ingestion.Job)
	assert.False(t, ingestion.Fetch.Success)
	assert.Equal(t, "https://example.com/job", ingestion.Fetch.SourceURL)
	assert.Equal(t, 1, fetcher.calls)
}

func TestIngestURL_Success(t *testing.T) {
	fetcher := &stubFetcher{result: domain.FetchResult{
		Success: true,
		RawText: sampleJobText,
	}}
	svc := NewJobService(fetcher)

	ingestion := svc.IngestURL(context.Background(), "https://example.com/job", "")

	require.NotNil(t, ingestion.Job)
	assert.Equal(t, "Senior Backend Engineer", ingestion.Job.Metadata.Title)
	assert.True(t, ingestion.Fetch.Success)
}
