package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// atsPattern is a selector triple tuned to one hosted ATS platform.
type atsPattern struct {
	name        string
	company     string
	title       string
	description string
}

// atsPatterns is tried in order; selectors are data, not logic, so they can
// be extended without touching the matching loop.
var atsPatterns = []atsPattern{
	{
		name:        "icims",
		company:     ".iCIMS_Header, .iCIMS_Branding",
		title:       "h1.iCIMS_InfoMsg_Job",
		description: ".iCIMS_InfoMsg, #iCIMS_JobDescription",
	},
	{
		name:        "greenhouse",
		company:     ".company-name",
		title:       ".app-title",
		description: "#content .content",
	},
	{
		name:        "lever",
		company:     ".main-header-text a",
		title:       ".posting-headline h2",
		description: ".section.page-centered",
	},
	{
		name:        "workday",
		company:     `[data-automation-id="jobPostingCompany"]`,
		title:       `h2[data-automation-id="jobPostingHeader"]`,
		description: `[data-automation-id="jobPostingDescription"]`,
	},
	{
		name:        "linkedin",
		company:     ".topcard__org-name-link, .top-card-layout__card .topcard__flavor--black-link",
		title:       ".topcard__title, .top-card-layout__title",
		description: ".show-more-less-html__markup, .description__text",
	},
	{
		name:        "indeed",
		company:     "[data-company-name], .jobsearch-InlineCompanyRating-companyHeader a",
		title:       ".jobsearch-JobInfoHeader-title, h1.jobsearch-JobInfoHeader-title",
		description: "#jobDescriptionText",
	},
	{
		name:        "smartrecruiters",
		company:     ".header-company-name",
		title:       "h1.job-title",
		description: ".job-description",
	},
	{
		name:        "bamboohr",
		company:     ".company-header__name",
		title:       "h1.BambooHR-ATS-Job-Title",
		description: ".BambooHR-ATS-Description",
	},
}

// descriptionNoise is removed from a cloned description element before taking
// its text: chrome, apply buttons, share widgets.
const descriptionNoise = "script, style, nav, header, footer, .apply-button, .social-share"

// tryATSPatterns walks the vendor selector table and fills whatever fields are
// still missing. A pattern that lands at least two of the three fields is
// taken as the right vendor and stops the walk.
func tryATSPatterns(doc *goquery.Document, data *JobData) {
	for _, p := range atsPatterns {
		matched := 0

		if data.Company == "" {
			if el := doc.Find(p.company).First(); el.Length() > 0 {
				data.Company = strings.TrimSpace(el.Text())
				matched++
			}
		}

		if data.Role == "" {
			if el := doc.Find(p.title).First(); el.Length() > 0 {
				data.Role = strings.TrimSpace(el.Text())
				matched++
			}
		}

		if !data.descriptionAccepted() {
			if el := doc.Find(p.description).First(); el.Length() > 0 {
				clone := el.Clone()
				clone.Find(descriptionNoise).Remove()
				text := strings.TrimSpace(clone.Text())
				if len(text) > minDescriptionLen {
					data.JobDescription = text
					matched++
				}
			}
		}

		if matched >= 2 {
			break
		}
	}
}
