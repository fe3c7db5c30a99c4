package domain

import "time"

// ReadmeMaxLength caps how much README content a repository record
// retains. Longer content is cut and marked as truncated.
const ReadmeMaxLength = 10000

// RepositoryRecord is the metadata fetched for a remote repository.
// A record with ID 0 signals an unresolved or inaccessible reference;
// batch operations return such records instead of failing.
type RepositoryRecord struct {
	ID       int64  `json:"repo_id"`
	FullName string `json:"full_name"` // owner/repo
	Name     string `json:"name"`

	Description string `json:"description,omitempty"`
	URL         string `json:"url"`

	Stars    int `json:"stars_count"`
	Forks    int `json:"forks_count"`
	Watchers int `json:"watchers_count"`

	// Languages maps language name to byte count.
	Languages       map[string]int `json:"languages"`
	PrimaryLanguage string         `json:"primary_language,omitempty"`

	IsFork    bool     `json:"is_fork"`
	IsPrivate bool     `json:"is_private"`
	Topics    []string `json:"topics,omitempty"`

	// Readme is the decoded README content, truncated at
	// ReadmeMaxLength with a marker appended.
	Readme string `json:"readme_content,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	PushedAt  *time.Time `json:"pushed_at,omitempty"`

	// Errors collects failures hit while assembling the record.
	Errors []string `json:"errors,omitempty"`
}

// Resolved returns true if the primary metadata fetch succeeded.
func (r RepositoryRecord) Resolved() bool {
	return r.ID != 0
}

// RateLimitStatus is a read-only snapshot of the hosting API quota.
type RateLimitStatus struct {
	Limit         int       `json:"limit"`
	Remaining     int       `json:"remaining"`
	ResetAt       time.Time `json:"reset_at"`
	Authenticated bool      `json:"authenticated"`
}
