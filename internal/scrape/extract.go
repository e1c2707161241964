package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techready-engine/internal/scrape/util"
)

// Parse turns raw HTML into a queryable document. goquery tolerates malformed
// markup, so extraction degrades to a partial tree instead of failing.
func Parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// Extract recovers structured job-posting fields from an arbitrary page.
//
// Strategies run in strict priority order, each one only filling fields the
// earlier ones left empty (or, for the description, too short to trust):
//
//  1. JSON-LD JobPosting structured data
//  2. embedded ATS config blob (jobDescriptionConfig)
//  3. known per-vendor selector patterns
//  4. generic heuristic scoring
//  5. meta tags / <title>
//
// A strategy finding nothing is not an error; worst case the result is all
// empty strings with the default seniority.
func Extract(doc *goquery.Document) JobData {
	data := JobData{Seniority: SeniorityJunior}

	fromStructuredData(doc, &data)

	if !data.descriptionAccepted() {
		fromJobDescriptionConfig(doc, &data)
	}

	if !data.descriptionAccepted() {
		tryATSPatterns(doc, &data)
	}

	if data.Role == "" || !data.descriptionAccepted() {
		extractWithHeuristics(doc, &data)
	}

	fromMetaTags(doc, &data)

	data.Seniority = DetectSeniority(data.Role)

	data.Company = util.SanitizeText(data.Company)
	data.Role = util.SanitizeText(data.Role)
	data.JobDescription = util.SanitizeText(data.JobDescription)
	data.CompanyInfo = util.SanitizeText(data.CompanyInfo)

	return data
}
