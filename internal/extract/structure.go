package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// contactWindow is how many leading lines are scanned for contact
// hints; contact details sit at the top of a résumé.
const contactWindow = 10

// Skill tokens outside these bounds are separator noise or whole
// sentences, not skills.
const (
	minSkillLength = 2
	maxSkillLength = 49
)

var (
	emailPattern = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)

	handlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		regexp.MustCompile(`(?i)github\.com/[\w-]+`),
		regexp.MustCompile(`@[A-Za-z][\w]{2,}`),
	}

	skillDelimiters = regexp.MustCompile(`[,|;\x{2022}\x{00B7}]`)
)

// ParseBasicStructure partitions extracted lines into named section
// buckets, pulls contact hints from the top of the document, and
// splits the skills bucket into discrete tokens. Lines before any
// recognised header land in the summary bucket.
func (e *Extractor) ParseBasicStructure(lines []string) domain.DocumentStructure {
	structure := domain.DocumentStructure{
		Sections:  map[string][]string{},
		SkillsRaw: []string{},
	}

	current := "summary"
	for _, line := range lines {
		if name, ok := matchSectionHeader(line); ok {
			current = name
			continue
		}
		structure.Sections[current] = append(structure.Sections[current], line)
	}

	structure.ContactHints = extractContactHints(lines)
	structure.SkillsRaw = splitSkills(structure.Sections["skills"])

	return structure
}

// extractContactHints scans the leading lines for an email address, a
// phone number, and social handles. Best-effort; first match per kind
// wins.
func extractContactHints(lines []string) domain.ContactHints {
	hints := domain.ContactHints{}

	window := lines
	if len(window) > contactWindow {
		window = window[:contactWindow]
	}

	for _, line := range window {
		if hints.Email == "" {
			hints.Email = emailPattern.FindString(line)
		}
		if hints.Phone == "" {
			hints.Phone = strings.TrimSpace(phonePattern.FindString(line))
		}
		for _, p := range handlePatterns {
			for _, handle := range p.FindAllString(line, -1) {
				// An email local part also looks like an @handle.
				if strings.HasPrefix(handle, "@") && strings.Contains(line, handle+".") {
					continue
				}
				if !slices.Contains(hints.Handles, handle) {
					hints.Handles = append(hints.Handles, handle)
				}
			}
		}
	}

	return hints
}

// splitSkills breaks skills-bucket lines on common delimiters into
// clean tokens within the accepted length bounds.
func splitSkills(lines []string) []string {
	skills := []string{}
	for _, line := range lines {
		for _, token := range skillDelimiters.Split(line, -1) {
			token = strings.TrimSpace(token)
			if len(token) >= minSkillLength && len(token) <= maxSkillLength {
				skills = append(skills, token)
			}
		}
	}
	return skills
}
