package github

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v68/github"
	"github.com/panjf2000/ants/v2"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driving"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
)

// DefaultFetchWorkers bounds concurrent repository fetches in FetchMany.
const DefaultFetchWorkers = 4

// repoURLPattern matches GitHub repository URLs with or without scheme.
var repoURLPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/([^/]+)/([^/\s?#]+)/?`)

// ParseRepoURL extracts owner and repository name from a GitHub URL.
// Trailing slashes and a .git suffix are stripped first.
func ParseRepoURL(rawURL string) (owner, repo string, ok bool) {
	cleaned := strings.TrimRight(strings.TrimSpace(rawURL), "/")
	cleaned = strings.TrimSuffix(cleaned, ".git")

	match := repoURLPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// Resolver turns repository references into metadata records. Lookup
// failures become records with ID 0 and populated Errors; the caller
// never sees an error from the fetch paths.
type Resolver struct {
	client  *Client
	workers int
}

var _ driving.RepositoryIngestor = (*Resolver)(nil)

// NewResolver creates a Resolver over the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{
		client:  client,
		workers: DefaultFetchWorkers,
	}
}

// Fetch retrieves a repository record. The languages and README calls
// degrade to empty values on failure; only a failed metadata call
// produces an unresolved record.
func (r *Resolver) Fetch(ctx context.Context, owner, repo string) domain.RepositoryRecord {
	record := domain.RepositoryRecord{
		FullName:  owner + "/" + repo,
		Name:      repo,
		URL:       "https://github.com/" + owner + "/" + repo,
		Languages: map[string]int{},
	}

	repository, err := r.client.GetRepository(ctx, owner, repo)
	if err != nil {
		logger.Error("repository metadata fetch failed for %s/%s: %v", owner, repo, err)
		record.IsPrivate = true
		record.Errors = append(record.Errors, "Repository not found or not accessible")
		return record
	}

	record.ID = repository.GetID()
	record.FullName = repository.GetFullName()
	record.Name = repository.GetName()
	record.Description = repository.GetDescription()
	record.URL = repository.GetHTMLURL()
	record.Stars = repository.GetStargazersCount()
	record.Forks = repository.GetForksCount()
	record.Watchers = repository.GetWatchersCount()
	record.PrimaryLanguage = repository.GetLanguage()
	record.IsFork = repository.GetFork()
	record.IsPrivate = repository.GetPrivate()
	record.Topics = repository.Topics
	record.CreatedAt = timestampPtr(repository.CreatedAt)
	record.UpdatedAt = timestampPtr(repository.UpdatedAt)
	record.PushedAt = timestampPtr(repository.PushedAt)

	languages, err := r.client.ListLanguages(ctx, owner, repo)
	if err != nil {
		logger.Warn("language fetch failed for %s/%s: %v", owner, repo, err)
	} else {
		record.Languages = languages
	}

	readme, err := r.client.GetReadme(ctx, owner, repo)
	if err != nil {
		logger.Debug("readme fetch failed for %s/%s: %v", owner, repo, err)
	} else {
		record.Readme = truncateReadme(readme)
	}

	return record
}

// FetchFromURL parses owner/repo out of a URL and fetches it. Returns
// nil when the URL is not a repository reference.
func (r *Resolver) FetchFromURL(ctx context.Context, url string) *domain.RepositoryRecord {
	owner, repo, ok := ParseRepoURL(url)
	if !ok {
		return nil
	}
	record := r.Fetch(ctx, owner, repo)
	return &record
}

// FetchMany fetches one record per input URL, preserving input order.
// Fetches run on a bounded worker pool; invalid entries become ID-0
// records in place.
func (r *Resolver) FetchMany(ctx context.Context, urls []string) []domain.RepositoryRecord {
	results := make([]domain.RepositoryRecord, len(urls))
	if len(urls) == 0 {
		return results
	}

	size := r.workers
	if len(urls) < size {
		size = len(urls)
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		// Pool creation only fails on invalid size; run serially.
		for i, url := range urls {
			results[i] = r.fetchOne(ctx, url)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		i, url := i, url
		task := func() {
			defer wg.Done()
			results[i] = r.fetchOne(ctx, url)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return results
}

func (r *Resolver) fetchOne(ctx context.Context, url string) domain.RepositoryRecord {
	record := r.FetchFromURL(ctx, url)
	if record == nil {
		return domain.RepositoryRecord{
			FullName:  url,
			Name:      "invalid",
			URL:       url,
			Languages: map[string]int{},
			Errors:    []string{fmt.Sprintf("Invalid GitHub URL: %s", url)},
		}
	}
	return *record
}

// RateLimit reports the core API quota.
func (r *Resolver) RateLimit(ctx context.Context) (domain.RateLimitStatus, error) {
	limits, err := r.client.RateLimit(ctx)
	if err != nil {
		return domain.RateLimitStatus{}, err
	}

	core := limits.GetCore()
	if core == nil {
		return domain.RateLimitStatus{Authenticated: r.client.Authenticated()}, nil
	}

	return domain.RateLimitStatus{
		Limit:         core.Limit,
		Remaining:     core.Remaining,
		ResetAt:       core.Reset.Time,
		Authenticated: r.client.Authenticated(),
	}, nil
}

func timestampPtr(ts *gh.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}

func truncateReadme(content string) string {
	if len(content) <= domain.ReadmeMaxLength {
		return content
	}
	return content[:domain.ReadmeMaxLength] + "\n\n[README truncated...]"
}
