package scrape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const greenhouseBody = `We are hiring a platform engineer to own our deployment pipeline. ` +
	`You will work across infrastructure, tooling, and developer experience to keep shipping fast and safe.`

func TestTryATSPatternsGreenhouse(t *testing.T) {
	html := `<html><body>
<div class="company-name">Globex</div>
<h1 class="app-title">Senior Platform Engineer</h1>
<div id="content"><div class="content">
<nav>Home / Careers</nav>
` + greenhouseBody + `
<div class="apply-button">Apply Now</div>
</div></div>
</body></html>`

	data := JobData{}
	tryATSPatterns(mustParse(t, html), &data)

	assert.Equal(t, "Globex", data.Company)
	assert.Equal(t, "Senior Platform Engineer", data.Role)
	assert.Contains(t, data.JobDescription, "platform engineer")
	assert.NotContains(t, data.JobDescription, "Home / Careers")
	assert.NotContains(t, data.JobDescription, "Apply Now")
}

// Two fields from one vendor are enough to stop the walk: a later vendor's
// description selector on the same page must not be consulted.
func TestTryATSPatternsTwoFieldStop(t *testing.T) {
	html := `<html><body>
<div class="company-name">Globex</div>
<h1 class="app-title">Staff Engineer</h1>
<div id="jobDescriptionText">` + greenhouseBody + `</div>
</body></html>`

	data := JobData{}
	tryATSPatterns(mustParse(t, html), &data)

	assert.Equal(t, "Globex", data.Company)
	assert.Equal(t, "Staff Engineer", data.Role)
	assert.Empty(t, data.JobDescription)
}

// A matching description element under 100 characters does not count as a hit.
func TestTryATSPatternsShortDescriptionRejected(t *testing.T) {
	html := `<html><body><div id="jobDescriptionText">Great job, apply today.</div></body></html>`

	data := JobData{}
	tryATSPatterns(mustParse(t, html), &data)

	assert.Empty(t, data.JobDescription)
}

// Fields discovered by earlier strategies are never overwritten.
func TestTryATSPatternsKeepsExistingFields(t *testing.T) {
	html := `<html><body>
<div class="company-name">Globex</div>
<h1 class="app-title">Staff Engineer</h1>
</body></html>`

	data := JobData{Company: "Acme Corp", JobDescription: strings.Repeat("existing ", 20)}
	tryATSPatterns(mustParse(t, html), &data)

	assert.Equal(t, "Acme Corp", data.Company)
	assert.Equal(t, "Staff Engineer", data.Role)
	assert.True(t, strings.HasPrefix(data.JobDescription, "existing"))
}

func TestTryATSPatternsWorkday(t *testing.T) {
	html := `<html><body>
<div data-automation-id="jobPostingCompany">Umbrella</div>
<h2 data-automation-id="jobPostingHeader">Security Engineer</h2>
<div data-automation-id="jobPostingDescription">` + greenhouseBody + `</div>
</body></html>`

	data := JobData{}
	tryATSPatterns(mustParse(t, html), &data)

	assert.Equal(t, "Umbrella", data.Company)
	assert.Equal(t, "Security Engineer", data.Role)
	assert.Contains(t, data.JobDescription, "deployment pipeline")
}
