package domain

import "time"

// IngestSettings carries the configuration the pipeline needs. Values
// are immutable after construction; services receive them explicitly
// instead of reading process-wide state.
type IngestSettings struct {
	// GitHubToken is an optional API token for higher rate limits.
	GitHubToken string

	// FetchTimeout bounds every outbound HTTP call.
	FetchTimeout time.Duration

	// MaxContentBytes is the fetched-page size ceiling.
	MaxContentBytes int

	// UploadDir is where uploaded files are stored.
	UploadDir string

	// MaxUploadBytes is the upload size limit.
	MaxUploadBytes int64
}

// DefaultIngestSettings returns the settings used when no
// configuration is present.
func DefaultIngestSettings() IngestSettings {
	return IngestSettings{
		FetchTimeout:    15 * time.Second,
		MaxContentBytes: 500_000,
		UploadDir:       "uploads",
		MaxUploadBytes:  10 << 20, // 10 MB
	}
}
