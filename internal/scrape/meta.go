package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techready-engine/internal/scrape/util"
)

// fromMetaTags is the last-resort strategy: meta tags and the <title> element.
// Runs unconditionally for any field still empty.
func fromMetaTags(doc *goquery.Document, data *JobData) {
	if data.Company == "" {
		data.Company = metaContent(doc, "og:site_name")
		if data.Company == "" {
			parts := strings.Split(doc.Find("title").First().Text(), "|")
			data.Company = util.CleanText(parts[len(parts)-1])
		}
	}

	if data.Role == "" {
		data.Role = metaContent(doc, "og:title")
		if data.Role == "" {
			parts := strings.Split(doc.Find("title").First().Text(), "|")
			data.Role = util.CleanText(parts[0])
		}
	}

	if data.JobDescription == "" {
		data.JobDescription = metaContent(doc, "og:description")
		if data.JobDescription == "" {
			data.JobDescription = metaContent(doc, "description")
		}
	}
}

// metaContent looks a meta tag up by property= or name= and returns its
// trimmed content attribute.
func metaContent(doc *goquery.Document, key string) string {
	sel := `meta[property="` + key + `"], meta[name="` + key + `"]`
	content, _ := doc.Find(sel).First().Attr("content")
	return strings.TrimSpace(content)
}
