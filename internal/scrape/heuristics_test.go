package scrape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTitle(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Senior Software Engineer", 40},
		{"Engineer", 30},
		{"Product Manager", 30},
		{"Hi", 0},
		{strings.Repeat("Engineer ", 15), 20}, // over 100 chars loses the length bonus
		{"Frequently Asked Questions", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreTitle(tt.text), "title %q", tt.text)
	}
}

func TestScoreDescription(t *testing.T) {
	words := func(n int) string { return strings.TrimSpace(strings.Repeat("word ", n)) }

	tests := []struct {
		name string
		text string
		want int
	}{
		{"short penalized", words(30), -50},
		{"medium length", words(150), 20},
		{"long with section header", words(350) + " Responsibilities", 20 + 20 + 30},
		{"credentials and pitch", words(150) + " We are looking for a bachelor degree holder", 20 + 20 + 15},
		{"legal footer", words(150) + " All rights reserved", 20 - 30},
		{"apply chrome", words(150) + " Apply now", 20 - 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreDescription(tt.text))
		})
	}
}

func TestBestTitleCandidate(t *testing.T) {
	doc := mustParse(t, `<html><body>
<h2>About Us</h2>
<h1>Senior Software Engineer</h1>
<h2>Benefits</h2>
</body></html>`)

	got, ok := bestTitleCandidate(doc)
	assert.True(t, ok)
	assert.Equal(t, "Senior Software Engineer", got)
}

func TestBestTitleCandidateNoneScores(t *testing.T) {
	doc := mustParse(t, `<html><body><h1>FAQ</h1></body></html>`)

	_, ok := bestTitleCandidate(doc)
	assert.False(t, ok)
}

func TestBestDescriptionCandidateStripsNoise(t *testing.T) {
	body := strings.Repeat("design and operate distributed systems with the team ", 30) +
		"Qualifications include years of experience."
	doc := mustParse(t, `<html><body>
<article>
<nav>Careers / Listings</nav>
<aside class="sidebar">Related jobs</aside>
`+body+`
</article>
</body></html>`)

	got, ok := bestDescriptionCandidate(doc)
	assert.True(t, ok)
	assert.NotContains(t, got, "Careers / Listings")
	assert.NotContains(t, got, "Related jobs")
	assert.Contains(t, got, "Qualifications include")
}

// Boilerplate-heavy containers must lose to real content even when larger.
func TestBestDescriptionCandidatePrefersContent(t *testing.T) {
	content := strings.Repeat("build and ship features for our customers every sprint ", 25) +
		"Requirements: years of experience with Go."
	footer := strings.Repeat("link ", 60) + "Privacy Policy. Copyright. All rights reserved. Apply now."
	doc := mustParse(t, `<html><body>
<div class="content">`+content+`</div>
<div class="footer-content">`+footer+`</div>
</body></html>`)

	got, ok := bestDescriptionCandidate(doc)
	assert.True(t, ok)
	assert.Contains(t, got, "Requirements:")
	assert.NotContains(t, got, "Privacy Policy")
}
