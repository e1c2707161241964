package scrape

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Generic fallback: no vendor strategy matched, so score candidate elements
// for "looks like a job title" / "looks like a job description".

// Title signals.
var (
	titleKeywordRe     = regexp.MustCompile(`(?i)engineer|developer|manager|analyst|designer|specialist|coordinator|director`)
	seniorityKeywordRe = regexp.MustCompile(`(?i)senior|junior|lead|staff|principal|intern`)
)

// Description signals.
var (
	jobSectionRe  = regexp.MustCompile(`(?i)responsibilities|qualifications|requirements|experience|skills`)
	credentialsRe = regexp.MustCompile(`(?i)bachelor|master|degree|years of experience`)
	pitchRe       = regexp.MustCompile(`(?i)we are looking for|the ideal candidate|you will`)
	legalNoiseRe  = regexp.MustCompile(`(?i)privacy policy|terms of service|©|copyright|all rights reserved`)
	applyNoiseRe  = regexp.MustCompile(`(?i)apply now|share this job|back to jobs`)
)

const (
	titleSelector   = "h1, h2"
	contentSelector = `main, article, section, div[class*="content"], div[class*="description"], div[id*="description"]`
	contentNoise    = "script, style, nav, header, footer, aside, .sidebar, .apply, .share, .navigation"
)

type candidate struct {
	text  string
	score int
}

// extractWithHeuristics fills role and/or description by scoring candidates.
func extractWithHeuristics(doc *goquery.Document, data *JobData) {
	if data.Role == "" {
		if best, ok := bestTitleCandidate(doc); ok {
			data.Role = best
		}
	}

	if !data.descriptionAccepted() {
		if best, ok := bestDescriptionCandidate(doc); ok {
			data.JobDescription = best
		}
	}
}

func bestTitleCandidate(doc *goquery.Document) (string, bool) {
	var cands []candidate
	doc.Find(titleSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		cands = append(cands, candidate{text: text, score: scoreTitle(text)})
	})
	return pickBest(cands)
}

func scoreTitle(text string) int {
	score := 0
	if len(text) > 5 && len(text) < 100 {
		score += 10
	}
	if titleKeywordRe.MatchString(text) {
		score += 20
	}
	if seniorityKeywordRe.MatchString(text) {
		score += 10
	}
	return score
}

func bestDescriptionCandidate(doc *goquery.Document) (string, bool) {
	var cands []candidate
	doc.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		clone := s.Clone()
		clone.Find(contentNoise).Remove()
		text := strings.TrimSpace(clone.Text())
		cands = append(cands, candidate{text: text, score: scoreDescription(text)})
	})
	return pickBest(cands)
}

func scoreDescription(text string) int {
	words := len(strings.Fields(text))
	score := 0

	if words > 100 {
		score += 20
	}
	if words > 300 {
		score += 20
	}
	if words > 500 {
		score += 10
	}

	if jobSectionRe.MatchString(text) {
		score += 30
	}
	if credentialsRe.MatchString(text) {
		score += 20
	}
	if pitchRe.MatchString(text) {
		score += 15
	}

	if words < 50 {
		score -= 50
	}
	if words > 3000 {
		score -= 20
	}

	if legalNoiseRe.MatchString(text) {
		score -= 30
	}
	if applyNoiseRe.MatchString(text) {
		score -= 10
	}

	return score
}

// pickBest returns the highest-scoring candidate with a positive score.
// The stable sort keeps document order on ties, so the first element found
// wins.
func pickBest(cands []candidate) (string, bool) {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	if len(cands) > 0 && cands[0].score > 0 {
		return cands[0].text, true
	}
	return "", false
}
