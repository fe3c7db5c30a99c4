// Package pdfpage adapts the ledongthuc/pdf parser to the PageReader
// port used by document extraction.
package pdfpage

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driven"
)

// Ensure Reader implements the port.
var _ driven.PageReader = (*Reader)(nil)

// Reader opens PDF bytes for per-page text extraction.
type Reader struct{}

// New creates a PDF page reader.
func New() *Reader {
	return &Reader{}
}

// Open parses the PDF. The underlying parser panics on some malformed
// files; the recover converts that into an ordinary error so the
// extraction pipeline keeps its never-fails contract.
func (r *Reader) Open(data []byte) (doc driven.PagedDocument, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &pagedPDF{reader: reader}, nil
}

// pagedPDF wraps an open pdf.Reader.
type pagedPDF struct {
	reader *pdf.Reader
}

func (p *pagedPDF) PageCount() int {
	return p.reader.NumPage()
}

// PageText extracts the plain text of page n (1-based). Panics from
// the parser are converted to errors, isolating bad pages.
func (p *pagedPDF) PageText(n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("page decode failed: %v", rec)
		}
	}()

	page := p.reader.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d is missing", n)
	}
	return page.GetPlainText(nil)
}
