package scrape

// Seniority is the coarse experience level derived from a role title.
type Seniority string

const (
	SeniorityIntern Seniority = "intern"
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
)

// JobData is the structured result of extracting a job posting page.
// String fields are empty (never null) when a value could not be determined;
// Seniority always carries a value, defaulting to junior.
type JobData struct {
	Company        string    `json:"company"`
	Role           string    `json:"role"`
	JobDescription string    `json:"jobDescription"`
	CompanyInfo    string    `json:"companyInfo"`
	Seniority      Seniority `json:"seniority"`
}

// minDescriptionLen is the confidence gate for an accepted job description.
// A description shorter than this keeps lower-priority strategies running.
const minDescriptionLen = 100

// descriptionAccepted reports whether the description is good enough to stop
// further strategies from touching it.
func (d *JobData) descriptionAccepted() bool {
	return len(d.JobDescription) >= minDescriptionLen
}
