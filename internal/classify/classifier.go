// Package classify infers job metadata (title, seniority, role type,
// remote policy, salary range) from normalised job-description text
// using fixed-priority heuristic pattern tables.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// titleHeaderWindow is how far into the text the title search looks.
// Job titles live in the posting header, not the body.
const titleHeaderWindow = 500

// rule pairs a classification label with its matcher. Rules live in
// ordered slices, not maps: the slice order IS the priority contract.
// The first rule whose pattern matches wins and later rules are not
// evaluated.
type rule struct {
	label   string
	pattern *regexp.Regexp
}

// seniorityRules, in priority order. The specific level terms staff,
// principal and lead are checked before the generic "senior" so that
// titles like "Senior Staff Engineer" classify as staff; the remaining
// ladder runs upward to vp.
var seniorityRules = []rule{
	{"intern", regexp.MustCompile(`(?i)\b(intern|internship)\b`)},
	{"junior", regexp.MustCompile(`(?i)\b(junior|jr\.?|entry[\s-]?level|associate)\b`)},
	{"mid", regexp.MustCompile(`(?i)\b(mid[\s-]?level|intermediate)\b`)},
	{"staff", regexp.MustCompile(`(?i)\b(staff)\b`)},
	{"principal", regexp.MustCompile(`(?i)\b(principal)\b`)},
	{"lead", regexp.MustCompile(`(?i)\b(lead|tech\s*lead)\b`)},
	{"senior", regexp.MustCompile(`(?i)\b(senior|sr\.?)\b`)},
	{"manager", regexp.MustCompile(`(?i)\b(manager|engineering\s*manager)\b`)},
	{"director", regexp.MustCompile(`(?i)\b(director)\b`)},
	{"vp", regexp.MustCompile(`(?i)\b(vp|vice\s*president)\b`)},
}

// roleRules, in priority order.
var roleRules = []rule{
	{"backend", regexp.MustCompile(`(?i)\b(backend|back[\s-]?end|server[\s-]?side)\b`)},
	{"frontend", regexp.MustCompile(`(?i)\b(frontend|front[\s-]?end|ui|user\s*interface)\b`)},
	{"fullstack", regexp.MustCompile(`(?i)\b(fullstack|full[\s-]?stack)\b`)},
	{"devops", regexp.MustCompile(`(?i)\b(devops|dev[\s-]?ops|platform\s*engineer)\b`)},
	{"sre", regexp.MustCompile(`(?i)\b(sre|site\s*reliability)\b`)},
	{"data_engineer", regexp.MustCompile(`(?i)\b(data\s*engineer)\b`)},
	{"data_scientist", regexp.MustCompile(`(?i)\b(data\s*scien(tist|ce))\b`)},
	{"ml_engineer", regexp.MustCompile(`(?i)\b(ml|machine\s*learning)\s*(engineer)?\b`)},
	{"mobile", regexp.MustCompile(`(?i)\b(mobile|ios|android)\b`)},
	{"security", regexp.MustCompile(`(?i)\b(security|infosec|cybersecurity)\b`)},
	{"qa", regexp.MustCompile(`(?i)\b(qa|quality\s*assurance|test|sdet)\b`)},
}

// remoteRules, in priority order.
var remoteRules = []rule{
	{"remote", regexp.MustCompile(`(?i)\b(fully[\s-]?remote|100%[\s-]?remote|remote)\b`)},
	{"hybrid", regexp.MustCompile(`(?i)\b(hybrid|flex|flexible\s*location)\b`)},
	{"onsite", regexp.MustCompile(`(?i)\b(on[\s-]?site|in[\s-]?office|office[\s-]?based)\b`)},
}

// titlePattern matches a line-start span of 10-100 characters ending
// in a known job-title noun.
var titlePattern = regexp.MustCompile(
	`(?im)^(.{10,100}?(engineer|developer|architect|scientist|manager|director|lead|analyst|designer))`,
)

// salaryPattern recognises full numeric ranges ($120,000 - $150,000)
// or abbreviated K ranges ($120K - $150K). Groups 1-4 carry the full
// form (low, low-thousands, high, high-thousands); groups 5-6 carry
// the K form.
var salaryPattern = regexp.MustCompile(
	`(?i)\$\s*(\d{2,3})[,.]?(\d{3})?\s*[-\x{2013}to]+\s*\$?\s*(\d{2,3})[,.]?(\d{3})?` +
		`|\$\s*(\d{2,3})[kK]\s*[-\x{2013}to]+\s*\$?\s*(\d{2,3})[kK]`,
)

// ExtractMetadata applies the pattern tables to normalised job text.
// If titleHint is non-empty it is used verbatim. Unmatched fields are
// left unset so the caller can run its own fallback chain.
func ExtractMetadata(text, titleHint string) domain.JobMetadata {
	meta := domain.JobMetadata{}

	if titleHint != "" {
		meta.Title = titleHint
	} else {
		meta.Title = extractTitle(text)
	}

	meta.Seniority = firstMatch(seniorityRules, text)
	meta.RoleType = firstMatch(roleRules, text)
	meta.RemoteType = firstMatch(remoteRules, text)

	extractSalary(text, &meta)

	return meta
}

// firstMatch scans the rules top-to-bottom and returns the label of
// the first pattern that matches, or "" if none does.
func firstMatch(rules []rule, text string) string {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.label
		}
	}
	return ""
}

// extractTitle searches the header window for a job-title line.
func extractTitle(text string) string {
	header := text
	if len(header) > titleHeaderWindow {
		header = truncateOnRune(header, titleHeaderWindow)
	}

	match := titlePattern.FindStringSubmatch(header)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// extractSalary parses the salary range, normalising both forms to
// integer USD bounds. A thousands-separated low bound is reconstructed
// by concatenation so $120,000 parses as 120000, not 120.
func extractSalary(text string, meta *domain.JobMetadata) {
	match := salaryPattern.FindStringSubmatch(text)
	if match == nil {
		return
	}

	var low, high int
	var ok bool

	switch {
	case match[1] != "": // full number format
		low, ok = joinNumber(match[1], match[2])
		if !ok {
			return
		}
		high, ok = joinNumber(match[3], match[4])
		if !ok {
			return
		}
	case match[5] != "": // K format
		l, err1 := strconv.Atoi(match[5])
		h, err2 := strconv.Atoi(match[6])
		if err1 != nil || err2 != nil {
			return
		}
		low, high = l*1000, h*1000
	default:
		return
	}

	// Reversed ranges occur in sloppy postings; keep min <= max.
	if low > high {
		low, high = high, low
	}

	meta.SalaryMin = &low
	meta.SalaryMax = &high
	meta.SalaryCurrency = "USD"
}

// joinNumber rebuilds a thousands-separated figure from its two
// captured groups: ("120", "000") -> 120000, ("95", "") -> 95.
func joinNumber(head, thousands string) (int, bool) {
	n, err := strconv.Atoi(head + thousands)
	if err != nil {
		return 0, false
	}
	return n, true
}

// truncateOnRune cuts s at no more than max bytes without splitting a
// UTF-8 sequence.
func truncateOnRune(s string, max int) string {
	for max > 0 && s[max]&0xC0 == 0x80 {
		max--
	}
	return s[:max]
}
