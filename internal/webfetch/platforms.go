package webfetch

import (
	"regexp"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
)

// platformPatterns maps URL patterns to job board platforms. Checked in
// order, first match wins.
var platformPatterns = []struct {
	platform domain.Platform
	pattern  *regexp.Regexp
}{
	{domain.PlatformGreenhouse, regexp.MustCompile(`(?i)(greenhouse\.io|boards\.greenhouse)`)},
	{domain.PlatformLever, regexp.MustCompile(`(?i)(lever\.co|jobs\.lever)`)},
	{domain.PlatformWorkday, regexp.MustCompile(`(?i)(workday\.com|myworkdayjobs)`)},
	{domain.PlatformLinkedIn, regexp.MustCompile(`(?i)linkedin\.com/jobs`)},
	{domain.PlatformIndeed, regexp.MustCompile(`(?i)indeed\.com`)},
	{domain.PlatformGlassdoor, regexp.MustCompile(`(?i)glassdoor\.com`)},
	{domain.PlatformAngelList, regexp.MustCompile(`(?i)(angel\.co|wellfound\.com)`)},
	{domain.PlatformAshby, regexp.MustCompile(`(?i)ashbyhq\.com`)},
	{domain.PlatformBambooHR, regexp.MustCompile(`(?i)bamboohr\.com`)},
	{domain.PlatformSmartRecruiters, regexp.MustCompile(`(?i)smartrecruiters\.com`)},
}

// DetectPlatform identifies the job board platform from a URL.
// Returns PlatformUnknown when no known pattern matches.
func DetectPlatform(url string) domain.Platform {
	for _, entry := range platformPatterns {
		if entry.pattern.MatchString(url) {
			return entry.platform
		}
	}
	return domain.PlatformUnknown
}
