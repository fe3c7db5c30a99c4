package driven

// PageReader opens page-oriented document bytes (PDF) for text
// extraction. Implementations must not panic on malformed input; any
// parse failure is returned as an error.
type PageReader interface {
	// Open parses the raw bytes and returns per-page access.
	Open(data []byte) (PagedDocument, error)
}

// PagedDocument yields the text of individual pages. Pages are
// addressed 1-based. A failure on one page must not affect others.
type PagedDocument interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText extracts the plain text of page n (1-based).
	PageText(n int) (string, error)
}
