// Package webfetch fetches job description pages over HTTP and extracts
// their text. Known script-only job boards are rejected up front with a
// fallback message instead of wasting a request.
package webfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driven"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
)

// minContentChars is the threshold below which a fetched page is
// treated as a JavaScript shell rather than real content.
const minContentChars = 100

// debugHTMLLimit caps how much of a failed page's HTML is retained.
const debugHTMLLimit = 10000

var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Fetcher retrieves job postings from URLs.
type Fetcher struct {
	client           driven.HTTPDoer
	timeout          time.Duration
	maxContentLength int
}

var _ driven.URLFetcher = (*Fetcher)(nil)

// New returns a Fetcher using the given transport. A nil client falls
// back to a default http.Client with redirect following.
func New(client driven.HTTPDoer, timeout time.Duration, maxContentLength int) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Fetcher{
		client:           client,
		timeout:          timeout,
		maxContentLength: maxContentLength,
	}
}

// Ingest fetches and parses a job description from a URL. It always
// returns a result; failures are classified into the result's flags
// and every failure carries a fallback message.
func (f *Fetcher) Ingest(ctx context.Context, rawURL string) domain.FetchResult {
	start := time.Now()

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return domain.FetchResult{
			SourceURL:       rawURL,
			ErrorMessage:    "Invalid URL format",
			FallbackMessage: "Please provide a valid URL starting with http:// or https://",
		}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return domain.FetchResult{
			SourceURL:       rawURL,
			ErrorMessage:    "Invalid URL format",
			FallbackMessage: "Please provide a valid URL starting with http:// or https://",
		}
	}

	platform := DetectPlatform(rawURL)
	logger.Debug("detected platform %q for %s", platform, rawURL)

	if platform.RequiresJavaScript() {
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			RequiresJS:       true,
			FallbackMessage: fmt.Sprintf(
				"This %s job page requires JavaScript to load. Please copy and paste the job description text directly.",
				platform.DisplayName()),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			ErrorMessage:     err.Error(),
			FallbackMessage:  "Could not connect to this website. Please copy and paste the job description text directly.",
		}
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return domain.FetchResult{
				SourceURL:        rawURL,
				DetectedPlatform: platform,
				FetchTimeMS:      f.timeout.Milliseconds(),
				ErrorMessage:     "Request timed out",
				FallbackMessage:  "The page took too long to load. Please copy and paste the job description text directly.",
			}
		}
		logger.Error("request error for %s: %v", rawURL, err)
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			ErrorMessage:     err.Error(),
			FallbackMessage:  "Could not connect to this website. Please copy and paste the job description text directly.",
		}
	}
	defer resp.Body.Close()

	fetchTimeMS := time.Since(start).Milliseconds()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			IsBlocked:        true,
			HTTPStatus:       http.StatusForbidden,
			FetchTimeMS:      fetchTimeMS,
			FallbackMessage:  "Access denied by the website. Please copy and paste the job description text directly.",
		}
	case resp.StatusCode == http.StatusNotFound:
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			HTTPStatus:       http.StatusNotFound,
			FetchTimeMS:      fetchTimeMS,
			ErrorMessage:     "Job posting not found (404)",
			FallbackMessage:  "This job posting may have been removed. Please check the URL or paste the job description directly.",
		}
	case resp.StatusCode != http.StatusOK:
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			HTTPStatus:       resp.StatusCode,
			FetchTimeMS:      fetchTimeMS,
			ErrorMessage:     fmt.Sprintf("HTTP %d", resp.StatusCode),
			FallbackMessage:  "Could not access this page. Please copy and paste the job description text directly.",
		}
	}

	// Read one byte past the ceiling to distinguish "exactly at the
	// limit" from "over it".
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.maxContentLength)+1))
	if err != nil {
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			HTTPStatus:       http.StatusOK,
			FetchTimeMS:      fetchTimeMS,
			ErrorMessage:     err.Error(),
			FallbackMessage:  "An error occurred while fetching this page. Please copy and paste the job description text directly.",
		}
	}
	if len(body) > f.maxContentLength {
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			HTTPStatus:       http.StatusOK,
			ContentLength:    len(body),
			FetchTimeMS:      fetchTimeMS,
			ErrorMessage:     "Page too large",
			FallbackMessage:  "This page is too large to process. Please copy and paste the job description text directly.",
		}
	}

	rawHTML := decodeBody(body, resp.Header.Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	var rawText string
	if err != nil {
		logger.Error("error parsing HTML from %s: %v", rawURL, err)
	} else {
		rawText = extractJobText(doc, platform)
	}

	if len(strings.TrimSpace(rawText)) < minContentChars {
		return domain.FetchResult{
			SourceURL:        rawURL,
			DetectedPlatform: platform,
			RawHTML:          truncate(rawHTML, debugHTMLLimit),
			HTTPStatus:       http.StatusOK,
			ContentLength:    len(body),
			FetchTimeMS:      fetchTimeMS,
			RequiresJS:       true,
			FallbackMessage:  "This page appears to require JavaScript to display content. Please copy and paste the job description text directly.",
		}
	}

	return domain.FetchResult{
		Success:          true,
		RawText:          rawText,
		RawHTML:          rawHTML,
		SourceURL:        rawURL,
		DetectedPlatform: platform,
		HTTPStatus:       http.StatusOK,
		ContentLength:    len(body),
		FetchTimeMS:      fetchTimeMS,
	}
}

// decodeBody converts the response body to UTF-8 using the declared or
// sniffed charset. Falls back to the raw bytes on detection failure.
func decodeBody(body []byte, contentType string) string {
	reader, err := charset.NewReader(strings.NewReader(string(body)), contentType)
	if err != nil {
		return string(body)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// truncate cuts s at no more than limit bytes without splitting a
// UTF-8 sequence.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && s[limit]&0xC0 == 0x80 {
		limit--
	}
	return s[:limit]
}
