package scrape

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techready-engine/internal/scrape/util"
)

// fromStructuredData fills JobData from an embedded JSON-LD JobPosting block.
// Structured data, when present, is the most reliable vendor-agnostic signal,
// which is why it runs first.
func fromStructuredData(doc *goquery.Document, data *JobData) {
	raw := strings.TrimSpace(doc.Find(`script[type="application/ld+json"]`).First().Text())
	if raw == "" {
		return
	}

	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("[scrape] json-ld parse failed: %v", err)
		return
	}

	posting := findJobPosting(payload)
	if posting == nil {
		return
	}

	data.Role = jsonString(posting["title"])
	data.Company = jsonString(mapField(posting["hiringOrganization"], "name"))
	data.JobDescription = util.SanitizeText(jsonString(posting["description"]))
	data.CompanyInfo = jsonString(mapField(posting["hiringOrganization"], "description"))
}

// findJobPosting selects the JobPosting entry from a JSON-LD payload, which
// may be a single object or an array of typed objects.
func findJobPosting(payload any) map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		if jsonString(v["@type"]) == "JobPosting" {
			return v
		}
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok && jsonString(m["@type"]) == "JobPosting" {
				return m
			}
		}
	}
	return nil
}

func mapField(v any, key string) any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

func jsonString(v any) string {
	s, _ := v.(string)
	return s
}
