package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobfit-labs/jobfit-ingest/internal/adapters/driven/config/file"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driving"
)

// mockJobIngestor implements driving.JobIngestor for testing.
type mockJobIngestor struct{}

func (m *mockJobIngestor) CleanAndParse(rawText, titleHint string) domain.JobParseResult {
	title := titleHint
	if title == "" {
		title = "Mock Engineer"
	}
	return domain.JobParseResult{
		CleanedText: rawText,
		Metadata:    domain.JobMetadata{Title: title},
	}
}

func (m *mockJobIngestor) IngestURL(_ context.Context, url, titleHint string) driving.URLIngestion {
	job := m.CleanAndParse("mock text", titleHint)
	return driving.URLIngestion{
		Fetch: domain.FetchResult{Success: true, SourceURL: url, RawText: "mock text"},
		Job:   &job,
	}
}

// mockResumeIngestor implements driving.ResumeIngestor for testing.
type mockResumeIngestor struct{}

func (m *mockResumeIngestor) Extract(_ context.Context, _ []byte) domain.ExtractedDocument {
	return domain.ExtractedDocument{
		RawText:   "Jane Doe",
		Lines:     []string{"Jane Doe"},
		PageCount: 1,
	}
}

func (m *mockResumeIngestor) ParseBasicStructure(_ []string) domain.DocumentStructure {
	return domain.DocumentStructure{}
}

func (m *mockResumeIngestor) ProcessUpload(_ context.Context, fileName string, data []byte) (*domain.UploadSummary, error) {
	return &domain.UploadSummary{
		FileName:  fileName,
		FileSize:  int64(len(data)),
		PageCount: 1,
		LineCount: 1,
	}, nil
}

// mockRepoIngestor implements driving.RepositoryIngestor for testing.
type mockRepoIngestor struct{}

func (m *mockRepoIngestor) Fetch(_ context.Context, owner, repo string) domain.RepositoryRecord {
	return domain.RepositoryRecord{
		ID:        42,
		FullName:  owner + "/" + repo,
		Name:      repo,
		URL:       "https://github.com/" + owner + "/" + repo,
		Languages: map[string]int{},
	}
}

func (m *mockRepoIngestor) FetchFromURL(ctx context.Context, url string) *domain.RepositoryRecord {
	if url == "https://example.com/not-github" {
		return nil
	}
	record := m.Fetch(ctx, "mock", "repo")
	return &record
}

func (m *mockRepoIngestor) FetchMany(ctx context.Context, urls []string) []domain.RepositoryRecord {
	records := make([]domain.RepositoryRecord, len(urls))
	for i := range urls {
		records[i] = m.Fetch(ctx, "mock", "repo")
	}
	return records
}

func (m *mockRepoIngestor) RateLimit(_ context.Context) (domain.RateLimitStatus, error) {
	return domain.RateLimitStatus{Limit: 60, Remaining: 59}, nil
}

// setupTestServices swaps in mock services and a temp config store, and
// returns a cleanup function restoring the originals.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldJob := jobService
	oldResume := resumeService
	oldRepo := repoService
	oldConfig := configStore

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	jobService = &mockJobIngestor{}
	resumeService = &mockResumeIngestor{}
	repoService = &mockRepoIngestor{}
	configStore = store

	return func() {
		jobService = oldJob
		resumeService = oldResume
		repoService = oldRepo
		configStore = oldConfig
	}
}
