package driven

import (
	"context"
	"net/http"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// HTTPDoer is the minimal HTTP transport capability. *http.Client
// satisfies it; tests substitute a stub to observe or suppress calls.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// URLFetcher ingests a remote URL into a FetchResult. It never returns
// an error: every failure mode is classified into the result fields.
type URLFetcher interface {
	Ingest(ctx context.Context, url string) domain.FetchResult
}

// DocumentExtractor converts raw document bytes into an extracted
// document. It never fails: total failures yield a document with
// PageCount 0 and populated Errors.
type DocumentExtractor interface {
	Extract(ctx context.Context, data []byte) domain.ExtractedDocument
	ParseBasicStructure(lines []string) domain.DocumentStructure
}
