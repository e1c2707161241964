package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSeniority(t *testing.T) {
	tests := []struct {
		role string
		want Seniority
	}{
		{"Senior Backend Engineer", SenioritySenior},
		{"Sr. Software Engineer", SenioritySenior},
		{"Staff Engineer", SenioritySenior},
		{"Lead Designer", SenioritySenior},
		{"Principal Architect", SenioritySenior},
		{"Software Engineering Intern", SeniorityIntern},
		{"2026 Internship - Platform", SeniorityIntern},
		{"Software Engineer II (3+ years)", SeniorityMid},
		{"Mid-level Developer", SeniorityMid},
		{"Intermediate QA Analyst", SeniorityMid},
		{"Junior Developer", SeniorityJunior},
		{"Jr. Data Analyst", SeniorityJunior},
		{"Entry Level Engineer", SeniorityJunior},
		{"Software Engineer", SeniorityJunior},
		{"", SeniorityJunior},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSeniority(tt.role))
		})
	}
}

// Intern outranks senior in the priority order: a "Senior Engineering Intern"
// posting is an internship.
func TestDetectSeniorityPriority(t *testing.T) {
	assert.Equal(t, SeniorityIntern, DetectSeniority("Senior Engineering Intern"))
	assert.Equal(t, SenioritySenior, DetectSeniority("Senior Engineer (5+ years)"))
}
