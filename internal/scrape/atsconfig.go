package scrape

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techready-engine/internal/scrape/util"
)

// configMarker identifies the iCIMS-style global that several ATS platforms
// embed with the full job object.
const configMarker = "jobDescriptionConfig"

var configAssignRe = regexp.MustCompile(`(?s)window\.jobDescriptionConfig\s*=\s*(\{.*?\});`)

// descriptionSections are appended to the composed description under a
// labeled heading when present in the config's job object.
var descriptionSections = []struct {
	key   string
	label string
}{
	{"qualifications", "Qualifications"},
	{"responsibilities", "Responsibilities"},
	{"requirements", "Requirements"},
}

// fromJobDescriptionConfig extracts the JSON object assigned to the
// jobDescriptionConfig global and fills JobData from its job record.
func fromJobDescriptionConfig(doc *goquery.Document, data *JobData) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), configMarker) {
			script = s.Text()
			return false
		}
		return true
	})
	if script == "" {
		return
	}

	m := configAssignRe.FindStringSubmatch(script)
	if m == nil {
		return
	}

	var cfg map[string]any
	if err := json.Unmarshal([]byte(m[1]), &cfg); err != nil {
		log.Printf("[scrape] jobDescriptionConfig parse failed: %v", err)
		return
	}

	job, ok := cfg["job"].(map[string]any)
	if !ok {
		job, ok = cfg["jobFormatted"].(map[string]any)
	}
	if !ok {
		return
	}

	data.Role = util.CleanText(firstJSONString(job, "title", "job_title"))
	data.Company = util.CleanText(firstJSONString(job, "hiring_organization", "clientName", "company_name"))

	full := stripFragment(jsonString(job["description"]))

	// Prepend the summary unless the description already contains it; the
	// containment check uses the summary's first 50 characters.
	if summary := stripFragment(firstJSONString(job, "summary", "job_summary")); summary != "" {
		probe := summary
		if len(probe) > 50 {
			probe = probe[:50]
		}
		if !strings.Contains(full, probe) {
			full = summary + "\n\n" + full
		}
	}

	for _, sec := range descriptionSections {
		if text := stripFragment(jsonString(job[sec.key])); text != "" {
			full += "\n\n" + sec.label + ":\n" + text
		}
	}

	data.JobDescription = strings.TrimSpace(full)
}

// stripFragment parses an HTML fragment, drops script/style, and returns its
// trimmed text. Each config field is a separate blob of vendor HTML.
func stripFragment(html string) string {
	if html == "" {
		return ""
	}
	frag, err := Parse(html)
	if err != nil {
		return ""
	}
	frag.Find("script, style").Remove()
	return strings.TrimSpace(frag.Text())
}

func firstJSONString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := jsonString(m[k]); s != "" {
			return s
		}
	}
	return ""
}
