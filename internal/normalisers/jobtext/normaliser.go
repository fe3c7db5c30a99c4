package jobtext

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns for markup and whitespace normalisation.
var (
	brTags     = regexp.MustCompile(`(?i)<br\s*/?>`)
	openPTags  = regexp.MustCompile(`(?i)<p\s*/?>`)
	closePTags = regexp.MustCompile(`(?i)</p>`)
	liTags     = regexp.MustCompile(`(?i)<li\s*>`)
	allTags    = regexp.MustCompile(`<[^>]+>`)

	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)

	// Page artifacts from page-oriented documents: lines that are just
	// a number, or "Page N of M".
	bareNumberLines = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]*$`)
	pageNumberLines = regexp.MustCompile(`(?im)^[ \t]*page[ \t]+\d+([ \t]+of[ \t]+\d+)?[ \t]*$`)
)

// unicodeReplacer maps "smart" unicode punctuation to ASCII.
var unicodeReplacer = strings.NewReplacer(
	"’", "'", // right single quote
	"‘", "'", // left single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // ellipsis
	"\u00A0", " ", // non-breaking space
	"\u200B", "", // zero-width space
	"\uFEFF", "", // BOM
)

// boilerplatePatterns match whole lines of job-board UI junk. Matching
// is whole-line and case-insensitive; matched lines are removed.
var boilerplatePatterns = []*regexp.Regexp{
	// Apply buttons and CTAs
	regexp.MustCompile(`(?im)^[ \t]*apply[ \t]*(now|today|here|for[ \t]*this[ \t]*job)?[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*click[ \t]*(here[ \t]*)?to[ \t]*apply[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*submit[ \t]*(your[ \t]*)?(application|resume)[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*easy[ \t]*apply[ \t]*$`),
	// Job IDs and reference numbers
	regexp.MustCompile(`(?im)^[ \t]*job[ \t]*(id|number|#|ref|reference)[ \t:]*[\w-]+[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*requisition[ \t]*(id|number|#)?[ \t:]*[\w-]+[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*posting[ \t]*(id|number|#)?[ \t:]*[\w-]+[ \t]*$`),
	// Share buttons
	regexp.MustCompile(`(?im)^[ \t]*share[ \t]*(this[ \t]*)?(job|position)?[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*(share[ \t]*on[ \t]*)?(facebook|twitter|linkedin|email)[ \t]*$`),
	// Save/bookmark
	regexp.MustCompile(`(?im)^[ \t]*save[ \t]*(this[ \t]*)?(job|position)?[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*bookmark[ \t]*$`),
	// Report/flag
	regexp.MustCompile(`(?im)^[ \t]*report[ \t]*(this[ \t]*)?(job|listing)?[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*flag[ \t]*as[ \t]*inappropriate[ \t]*$`),
	// Similar jobs navigation
	regexp.MustCompile(`(?im)^[ \t]*similar[ \t]*jobs[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*related[ \t]*(jobs|positions)[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*you[ \t]*may[ \t]*also[ \t]*like[ \t]*$`),
	// Pagination
	regexp.MustCompile(`(?im)^[ \t]*back[ \t]*to[ \t]*(search|results|jobs)[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*(previous|next)[ \t]*(job|page)?[ \t]*$`),
	// Posted-X-ago timestamps
	regexp.MustCompile(`(?im)^[ \t]*posted[ \t]*\d+[ \t]*(days?|hours?|weeks?)[ \t]*ago[ \t]*$`),
	// View/applicant counters
	regexp.MustCompile(`(?im)^[ \t]*\d+[ \t]*(views?|applicants?)[ \t]*$`),
	// Login prompts
	regexp.MustCompile(`(?im)^[ \t]*(sign[ \t]*in|log[ \t]*in)[ \t]*to[ \t]*apply[ \t]*$`),
	regexp.MustCompile(`(?im)^[ \t]*create[ \t]*(an[ \t]*)?account[ \t]*$`),
	// Cookie notices
	regexp.MustCompile(`(?im)^[ \t]*we[ \t]*use[ \t]*cookies.*$`),
	regexp.MustCompile(`(?im)^[ \t]*(accept|reject)[ \t]*(all[ \t]*)?cookies[ \t]*$`),
}

// Normalise cleans job-description text pasted or fetched from the web.
//
// Steps, in order: unescape HTML entities; convert <br>, <p>, </p> and
// <li> into newline/bullet markers so list structure survives tag
// removal; strip remaining tags; replace smart unicode punctuation;
// remove boilerplate lines; collapse whitespace; trim lines. Never
// fails; empty input yields empty output, and the result is a fixed
// point (normalising twice changes nothing).
func Normalise(raw string) string {
	if raw == "" {
		return ""
	}

	text := html.UnescapeString(raw)

	// Line structure markers must be placed before generic stripping.
	text = brTags.ReplaceAllString(text, "\n")
	text = openPTags.ReplaceAllString(text, "\n")
	text = closePTags.ReplaceAllString(text, "\n")
	text = liTags.ReplaceAllString(text, "\n• ")
	text = allTags.ReplaceAllString(text, "")

	text = unicodeReplacer.Replace(text)

	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	return collapseWhitespace(text, false)
}

// NormaliseDocument cleans text extracted from a page-oriented
// document. Document text has no HTML or job-board chrome, but carries
// its own artifacts: standalone page-number lines and hard-wrapped
// whitespace. Empty lines are dropped entirely.
func NormaliseDocument(raw string) string {
	if raw == "" {
		return ""
	}

	text := unicodeReplacer.Replace(raw)
	text = bareNumberLines.ReplaceAllString(text, "")
	text = pageNumberLines.ReplaceAllString(text, "")

	return collapseWhitespace(text, true)
}

// collapseWhitespace squeezes horizontal whitespace runs to one space,
// trims each line, and collapses 3+ newline runs to two. Lines are
// trimmed before the newline collapse so whitespace-only lines cannot
// keep a run alive. With dropEmpty set, blank lines are removed
// instead of kept.
func collapseWhitespace(text string, dropEmpty bool) string {
	text = multiSpaces.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if dropEmpty && line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}

	text = strings.Join(cleaned, "\n")
	text = multiNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
