package scrape

import (
	"regexp"
	"strings"
)

var yearsOfExperienceRe = regexp.MustCompile(`\d+\+?\s*years?`)

// DetectSeniority derives a seniority label from a role title. Total and
// deterministic: every input maps to exactly one level, junior when nothing
// matches. Matching is case-insensitive substring search in fixed priority
// order, so "Senior Engineering Intern" classifies as intern.
func DetectSeniority(role string) Seniority {
	r := strings.ToLower(role)

	if strings.Contains(r, "intern") || strings.Contains(r, "internship") {
		return SeniorityIntern
	}

	if strings.Contains(r, "senior") || strings.Contains(r, "sr.") ||
		strings.Contains(r, "sr ") || strings.Contains(r, "lead") ||
		strings.Contains(r, "principal") || strings.Contains(r, "staff") {
		return SenioritySenior
	}

	if strings.Contains(r, "mid") || strings.Contains(r, "intermediate") ||
		yearsOfExperienceRe.MatchString(r) {
		return SeniorityMid
	}

	if strings.Contains(r, "junior") || strings.Contains(r, "jr.") ||
		strings.Contains(r, "jr ") || strings.Contains(r, "entry") {
		return SeniorityJunior
	}

	return SeniorityJunior
}
