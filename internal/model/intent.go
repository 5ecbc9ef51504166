package model

// Intent is the coarse category of what the user is asking for.
type Intent string

const (
	IntentFindJob     Intent = "find_job"
	IntentFindCompany Intent = "find_company"
	IntentGeneral     Intent = "general"
)

// Entities represents the structured conditions extracted from a message.
// Every field is independently optional; an absent field means
// "unconstrained", never "exclude".
type Entities struct {
	Location        string `json:"location,omitempty"`
	JobTitle        string `json:"job_title,omitempty"`
	Requirements    string `json:"requirements,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	Industry        string `json:"industry,omitempty"`
	MinSalary       *int64 `json:"min_salary,omitempty"` // VND
	MaxSalary       *int64 `json:"max_salary,omitempty"` // VND
	ExperienceYears string `json:"experience_years,omitempty"`
}

// ParsedQuery represents the intent and entities parsed from one message.
type ParsedQuery struct {
	Intent   Intent   `json:"intent"`
	Entities Entities `json:"entities"`
}

// EscalateToFindJob upgrades the intent to find_job. This is the only
// transition allowed after baseline classification: general or find_company
// may become find_job, and nothing ever downgrades.
func (p *ParsedQuery) EscalateToFindJob() {
	p.Intent = IntentFindJob
}
