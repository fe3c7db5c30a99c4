// Package extract converts page-oriented document bytes (résumés) into
// structured text: per-page extraction that tolerates page failures,
// cleaned lines, and bullet points annotated with section and
// employer/title context.
package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driven"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
	"github.com/jobfit-labs/jobfit-ingest/internal/normalisers/jobtext"
)

// Ensure Extractor implements the port.
var _ driven.DocumentExtractor = (*Extractor)(nil)

// minLineLength drops noise lines left over from PDF text runs.
const minLineLength = 3

// minContextLineLength guards the accomplishment-verb fallback: only
// substantial lines are promoted to bullets without a marker.
const minContextLineLength = 30

// sectionRule names a document section and the header phrases that
// open it. Ordered; the first matching rule wins.
type sectionRule struct {
	name    string
	pattern *regexp.Regexp
}

var sectionRules = []sectionRule{
	{"experience", regexp.MustCompile(`(?i)^(work|professional|employment)?[ \t]*(experience|history)[ \t:]*$`)},
	{"education", regexp.MustCompile(`(?i)^education([ \t]+(and|&)[ \t]+training)?[ \t:]*$`)},
	{"skills", regexp.MustCompile(`(?i)^(technical[ \t]+)?(skills|technologies|competencies)[ \t:]*$`)},
	{"projects", regexp.MustCompile(`(?i)^(personal[ \t]+|side[ \t]+)?projects[ \t:]*$`)},
	{"leadership", regexp.MustCompile(`(?i)^(leadership|activities|volunteering)[ \t:]*$`)},
	{"summary", regexp.MustCompile(`(?i)^(summary|profile|objective|about([ \t]+me)?)[ \t:]*$`)},
}

// bulletMarkers are the recognised bullet styles, tried in order per
// line; the first style that matches wins.
var bulletMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^[\x{2022}\x{25E6}\x{25AA}\x{2023}\x{00B7}]\s*(.+)$`), // unicode glyphs
	regexp.MustCompile(`^[-\x{2013}]\s+(.+)$`),                                // dash
	regexp.MustCompile(`^\*\s+(.+)$`),                                         // asterisk
	regexp.MustCompile(`^\d{1,2}[.)]\s+(.+)$`),                                // numbered
	regexp.MustCompile(`^[a-zA-Z][.)]\s+(.+)$`),                               // lettered
}

// companyTitleLine matches "Company - Title" style context lines inside
// an experience section.
var companyTitleLine = regexp.MustCompile(
	`^([A-Za-z0-9][\w&.,'() ]{1,59})\s*[-\x{2013}|]\s*([A-Za-z][\w&.,'()/ ]{1,59})$`)

// accomplishmentVerbs open résumé bullet sentences that carry no
// marker. Case-sensitive: these appear capitalised at line start.
var accomplishmentVerbs = []string{
	"Developed", "Built", "Created", "Implemented", "Managed", "Led",
	"Designed", "Improved", "Increased", "Reduced", "Achieved",
	"Delivered", "Launched", "Established",
}

// Extractor runs the document extraction pipeline over a PageReader
// capability.
type Extractor struct {
	reader driven.PageReader
}

// New creates an extractor backed by the given page reader.
func New(reader driven.PageReader) *Extractor {
	return &Extractor{reader: reader}
}

// Extract converts raw document bytes into an ExtractedDocument. It
// never fails: every error, from a single unreadable page to a file
// that will not open at all, is collected into the Errors slice of an
// otherwise valid result.
func (e *Extractor) Extract(_ context.Context, data []byte) domain.ExtractedDocument {
	sum := sha256.Sum256(data)
	doc := domain.ExtractedDocument{
		ContentHash:  hex.EncodeToString(sum[:]),
		Lines:        []string{},
		BulletPoints: []domain.BulletPoint{},
		Errors:       []string{},
	}

	paged, err := e.reader.Open(data)
	if err != nil {
		doc.Errors = append(doc.Errors, fmt.Sprintf("failed to open document: %v", err))
		return doc
	}

	doc.PageCount = paged.PageCount()
	logger.Debug("extracting %d pages", doc.PageCount)

	// Per-page results are collected symmetrically and aggregated
	// afterwards; one bad page never aborts the rest.
	type pageResult struct {
		text string
		err  error
	}
	results := make([]pageResult, 0, doc.PageCount)
	for i := 1; i <= doc.PageCount; i++ {
		text, pageErr := paged.PageText(i)
		results = append(results, pageResult{text: text, err: pageErr})
	}

	texts := make([]string, len(results))
	for i, res := range results {
		if res.err != nil {
			doc.Errors = append(doc.Errors, fmt.Sprintf("Page %d: %v", i+1, res.err))
			continue
		}
		texts[i] = res.text
	}

	doc.RawText = jobtext.NormaliseDocument(strings.Join(texts, "\n\n"))

	for _, line := range strings.Split(doc.RawText, "\n") {
		if len(line) >= minLineLength {
			doc.Lines = append(doc.Lines, line)
		}
	}

	doc.BulletPoints = extractBullets(doc.Lines)
	return doc
}

// extractBullets walks the cleaned lines tracking section and
// employer/title context, and collects bullet points. Per line the
// checks run in a fixed order: section header, then context line
// (only inside an experience section), then bullet marker, then the
// accomplishment-verb fallback.
func extractBullets(lines []string) []domain.BulletPoint {
	bullets := []domain.BulletPoint{}

	var section, context string
	for i, line := range lines {
		if name, ok := matchSectionHeader(line); ok {
			section = name
			// A new section invalidates the employer context.
			context = ""
			continue
		}

		if section == "experience" {
			if companyTitleLine.MatchString(line) && !startsWithMarker(line) {
				context = line
				continue
			}
		}

		if text, ok := matchBulletMarker(line); ok {
			if len(strings.TrimSpace(text)) >= domain.MinBulletLength {
				bullets = append(bullets, domain.BulletPoint{
					Text:       strings.TrimSpace(text),
					LineNumber: i + 1,
					Section:    section,
					Context:    context,
				})
			}
			continue
		}

		if section == "experience" && len(line) > minContextLineLength && startsWithAccomplishmentVerb(line) {
			bullets = append(bullets, domain.BulletPoint{
				Text:       line,
				LineNumber: i + 1,
				Section:    section,
				Context:    context,
			})
		}
	}

	return bullets
}

// matchSectionHeader reports whether the line is purely a section
// header, and which section it opens.
func matchSectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, r := range sectionRules {
		if r.pattern.MatchString(trimmed) {
			return r.name, true
		}
	}
	return "", false
}

// matchBulletMarker tries the marker styles in order and returns the
// text after the first matching marker.
func matchBulletMarker(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if m := marker.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func startsWithMarker(line string) bool {
	_, ok := matchBulletMarker(line)
	return ok
}

func startsWithAccomplishmentVerb(line string) bool {
	for _, verb := range accomplishmentVerbs {
		if strings.HasPrefix(line, verb+" ") {
			return true
		}
	}
	return false
}
