// Package sections locates named section headers in normalised job
// text and extracts the bounded body between a header and the next
// recognised header.
package sections

import (
	"regexp"
	"strings"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// maxSectionLength caps a section body when no later header bounds it.
const maxSectionLength = 2000

// Header patterns match only lines that are purely a header phrase,
// optionally bulleted and colon-terminated. Matching whole lines, not
// substrings, keeps a mid-sentence "preferred" or "about" inside a
// bullet from being mistaken for a boundary.
var (
	requirementsHeaders = regexp.MustCompile(
		`(?im)^[ \t\x{2022}*-]*(requirements?|qualifications?|what[ \t]+you.*(need|bring)|must[ \t-]?have|minimum[ \t]+qualifications?)[ \t:]*$`)

	niceToHaveHeaders = regexp.MustCompile(
		`(?im)^[ \t\x{2022}*-]*(nice[ \t-]?to[ \t-]?have|preferred|bonus|plus|desired|additional)[ \t:]*$`)

	responsibilitiesHeaders = regexp.MustCompile(
		`(?im)^[ \t\x{2022}*-]*(responsibilities|what[ \t]+you.*(do|work)|role|duties|the[ \t]+job)[ \t:]*$`)

	benefitsHeaders = regexp.MustCompile(
		`(?im)^[ \t\x{2022}*-]*(benefits|perks|what[ \t]+we[ \t]+offer|compensation|why[ \t]+(join|work))[ \t:]*$`)

	// sectionEnd recognises a header of any kind plus a few structural
	// markers, and bounds whichever section is being extracted. The
	// "about" marker stays anchored to known header phrases; a bullet
	// like "About 5 years of experience" is content, not a boundary.
	sectionEnd = regexp.MustCompile(
		`(?im)^[ \t\x{2022}*-]*(about([ \t]+(us|the[ \t]+(role|company|team)))?|requirements?|(minimum[ \t]+)?qualifications?|must[ \t-]?have|responsibilities|role|duties|the[ \t]+job|benefits|perks|compensation|nice[ \t-]?to[ \t-]?have|preferred|bonus|plus|desired|additional|what[ \t]+(you|we).*|why[ \t]+(join|work)|the[ \t]+team|our[ \t]+company|how[ \t]+to[ \t]+apply)[ \t:]*$`)
)

// Extract locates the four known section kinds in the text. Each kind
// is searched independently from the top; a kind whose header never
// appears, or whose body trims to nothing, is left empty.
func Extract(text string) domain.JobSections {
	return domain.JobSections{
		Requirements:     extractOne(text, requirementsHeaders),
		NiceToHave:       extractOne(text, niceToHaveHeaders),
		Responsibilities: extractOne(text, responsibilitiesHeaders),
		Benefits:         extractOne(text, benefitsHeaders),
	}
}

// extractOne returns the body between the first occurrence of a header
// and the next cross-category header, capped at maxSectionLength when
// unbounded.
func extractOne(text string, header *regexp.Regexp) string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	remaining := text[loc[1]:]

	if end := sectionEnd.FindStringIndex(remaining); end != nil {
		remaining = remaining[:end[0]]
	} else if len(remaining) > maxSectionLength {
		remaining = truncateOnRune(remaining, maxSectionLength)
	}

	return strings.TrimSpace(remaining)
}

// truncateOnRune cuts s at no more than max bytes without splitting a
// UTF-8 sequence.
func truncateOnRune(s string, max int) string {
	for max > 0 && s[max]&0xC0 == 0x80 {
		max--
	}
	return s[:max]
}
