package model

// Employer represents the company account that posted a job.
type Employer struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Job represents a single open job posting. Salary is unstructured text
// (e.g. "15-20 triệu", "Thỏa thuận"); numeric bounds are parsed from it,
// never stored.
type Job struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Position     string   `json:"position,omitempty"`
	Requirements string   `json:"requirements,omitempty"`
	Location     string   `json:"location,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	Employer     Employer `json:"employer"`
}

// Company represents an employer grouped with its currently-open jobs. A
// company only exists in a response set when it has at least one open job.
type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Jobs        []Job  `json:"jobs"`
}

// CompanyJobRow is one row of the companies-with-open-jobs join, before
// grouping by employer.
type CompanyJobRow struct {
	EmployerID  int64
	CompanyName string
	CompanyLogo string
	Industry    string
	Website     string
	Description string
	Job         Job
}
