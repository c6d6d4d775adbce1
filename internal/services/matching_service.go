package services

import (
	"regexp"
	"strings"
)

// companyPattern catches "at Stripe", "with Acme Corp." style mentions. Only
// a run of capitalized words counts, so ordinary prose after the name is not
// swallowed.
var companyPattern = regexp.MustCompile(`\b(?:at|with|within)\s+([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*)*)`)

// ExtractCompanyName pulls a likely company name out of a job description so
// the cover letter can be addressed. Falls back to a generic phrase.
func ExtractCompanyName(jobDescription string) string {
	match := companyPattern.FindStringSubmatch(jobDescription)
	if match == nil {
		return "the company"
	}
	name := strings.Trim(match[1], " .,")
	if name == "" {
		return "the company"
	}
	return name
}
