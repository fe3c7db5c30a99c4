package domain

// MinBulletLength is the minimum length of a bullet point's text after
// the marker has been trimmed. Shorter matches are discarded as noise.
const MinBulletLength = 5

// BulletPoint is a single bullet extracted from a document, annotated
// with the section and employer/title context it was found under.
type BulletPoint struct {
	// Text is the bullet content with the marker removed.
	// Always at least MinBulletLength characters after trimming.
	Text string `json:"text"`

	// LineNumber is the 1-based line the bullet was found on.
	LineNumber int `json:"line_number"`

	// Section is the document section the bullet belongs to
	// (experience, education, skills, ...), empty if none was seen.
	Section string `json:"section,omitempty"`

	// Context is the "Company - Title" label in effect when the bullet
	// was found, carried forward until the next section or company line.
	Context string `json:"context,omitempty"`
}

// ExtractedDocument is the result of page-oriented document extraction.
// It is always produced, even on total failure: a document that could
// not be opened has PageCount 0, empty RawText, and a populated Errors
// slice. Construction never raises.
type ExtractedDocument struct {
	// RawText is the page texts joined with double newlines, after
	// document normalisation.
	RawText string `json:"raw_text"`

	// Lines are the cleaned lines of RawText (short lines dropped).
	Lines []string `json:"lines"`

	// BulletPoints are the bullets detected across all lines.
	BulletPoints []BulletPoint `json:"bullet_points"`

	// PageCount is the number of pages in the source document.
	PageCount int `json:"page_count"`

	// ContentHash is the sha256 hex digest of the raw bytes,
	// used for de-duplication.
	ContentHash string `json:"content_hash"`

	// Errors collects page-level and document-level failures.
	// A page-level entry reads "Page i: <reason>".
	Errors []string `json:"errors,omitempty"`
}

// ContactHints are light contact signals pulled from the top of a
// document. Best-effort; any field may be empty.
type ContactHints struct {
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Handles []string `json:"handles,omitempty"`
}

// DocumentStructure is the secondary structural parse of a document:
// lines partitioned into named section buckets, contact hints from the
// first lines, and raw skill tokens split out of the skills bucket.
type DocumentStructure struct {
	// Sections maps a section name to the lines under its header.
	// Lines before any recognised header fall into "summary".
	Sections map[string][]string `json:"sections"`

	ContactHints ContactHints `json:"contact_hints"`

	// SkillsRaw are discrete skill tokens, each 2-49 characters.
	SkillsRaw []string `json:"skills_raw"`
}

// UploadSummary describes a stored and processed document upload.
type UploadSummary struct {
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path,omitempty"`
	FileSize    int64  `json:"file_size_bytes"`
	ContentHash string `json:"content_hash"`
	PageCount   int    `json:"page_count"`
	LineCount   int    `json:"line_count"`
	BulletCount int    `json:"bullet_count"`

	// ProcessingError joins any extraction errors; empty on clean runs.
	ProcessingError string `json:"processing_error,omitempty"`
}
