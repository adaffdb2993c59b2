package extracting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// Dashes separate only when spaced on both sides, so hyphenated names
	// like "AZ-900" stay intact. Commas separate regardless of spacing.
	certSeparator = regexp.MustCompile(`\s+[-–—]\s+|\s*,\s*`)
	certYear      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ExtractCertifications parses the certifications section, one entry per
// line. The first dash or comma separated part is the certification name, the
// second the issuer, and any four-digit year anywhere on the line the date.
func ExtractCertifications(sectionText string) []types.Certification {
	var certs []types.Certification

	for _, raw := range strings.Split(sectionText, "\n") {
		line := segmenting.StripBullet(raw)
		if line == "" || len(line) < 3 {
			continue
		}

		cert := types.Certification{Date: certYear.FindString(line)}

		parts := certSeparator.Split(line, -1)
		cert.Name = strings.TrimSpace(parts[0])
		if cert.Name == "" {
			continue
		}
		if len(parts) > 1 {
			issuer := strings.TrimSpace(parts[1])
			if issuer != "" && !certYear.MatchString(issuer) {
				cert.Issuer = issuer
			}
		}

		certs = append(certs, cert)
	}

	return certs
}
