package domain

// Platform identifies the job board or applicant-tracking system a URL
// belongs to, detected from its domain.
type Platform string

// Known platforms.
const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformLinkedIn        Platform = "linkedin"
	PlatformIndeed          Platform = "indeed"
	PlatformGlassdoor       Platform = "glassdoor"
	PlatformAngelList       Platform = "angellist"
	PlatformAshby           Platform = "ashby"
	PlatformBambooHR        Platform = "bamboohr"
	PlatformSmartRecruiters Platform = "smartrecruiters"

	// PlatformUnknown means no known domain pattern matched.
	PlatformUnknown Platform = ""
)

// RequiresJavaScript returns true for platforms that render job content
// client-side. Fetching these without a browser yields an empty shell,
// so ingestion short-circuits before any network call.
func (p Platform) RequiresJavaScript() bool {
	switch p {
	case PlatformLinkedIn, PlatformIndeed, PlatformGlassdoor, PlatformWorkday:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns a human-readable platform name for user-facing
// fallback messages.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformGreenhouse:
		return "Greenhouse"
	case PlatformLever:
		return "Lever"
	case PlatformWorkday:
		return "Workday"
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformIndeed:
		return "Indeed"
	case PlatformGlassdoor:
		return "Glassdoor"
	case PlatformAngelList:
		return "Wellfound"
	case PlatformAshby:
		return "Ashby"
	case PlatformBambooHR:
		return "BambooHR"
	case PlatformSmartRecruiters:
		return "SmartRecruiters"
	default:
		return "this site"
	}
}

// FetchResult is the terminal outcome of a URL-ingestion call. Exactly
// one is produced per URL; failures are reported through the flags and
// messages below, never as an error to the caller. Every failure path
// carries a FallbackMessage telling the user to paste text manually.
type FetchResult struct {
	Success bool `json:"success"`

	// RawText is the extracted job text on success.
	RawText string `json:"raw_text,omitempty"`

	// RawHTML is the fetched page body. On a content failure only the
	// leading portion is retained for debugging.
	RawHTML string `json:"raw_html,omitempty"`

	SourceURL        string   `json:"source_url"`
	DetectedPlatform Platform `json:"detected_platform,omitempty"`

	// RequiresJS is set for known script-only platforms and for pages
	// whose fetched body produced almost no text.
	RequiresJS bool `json:"requires_js"`

	// IsBlocked is set when the site answered 403.
	IsBlocked bool `json:"is_blocked"`

	// HTTPStatus is the response status, 0 if no request was made.
	HTTPStatus int `json:"http_status,omitempty"`

	ContentLength int   `json:"content_length,omitempty"`
	FetchTimeMS   int64 `json:"fetch_time_ms,omitempty"`

	ErrorMessage    string `json:"error_message,omitempty"`
	FallbackMessage string `json:"fallback_message,omitempty"`
}
