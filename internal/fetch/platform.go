package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

// Known platforms. Detection drives which CSS selectors are used to find the
// posting body.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

var platformHosts = map[Platform][]string{
	PlatformGreenhouse: {"greenhouse.io"},
	PlatformLever:      {"lever.co"},
	PlatformWorkday:    {"workday.com", "myworkdayjobs.com"},
	PlatformAshby:      {"ashbyhq.com"},
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for platform, hosts := range platformHosts {
		for _, candidate := range hosts {
			if host == candidate || strings.HasSuffix(host, "."+candidate) {
				return platform
			}
		}
	}
	return PlatformUnknown
}

// ContentSelectors returns CSS selectors for the posting body, most specific
// first.
func (p Platform) ContentSelectors() []string {
	switch p {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-description",
			".posting-page",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".job-description",
		}
	case PlatformAshby:
		return []string{
			".ashby-job-posting-content",
			"[class*='_descriptionText']",
			"main",
		}
	default:
		return []string{
			".job-description",
			"#job-description",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// NoiseSelectors returns CSS selectors for elements that should be removed
// before text extraction: application forms, EEO boilerplate, share widgets.
func (p Platform) NoiseSelectors() []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch p {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", ".post-apply")
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']", ".application-section")
	default:
		return common
	}
}
