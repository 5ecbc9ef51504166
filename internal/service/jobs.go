package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"jobchat/internal/model"
)

const (
	// jobPoolLimit caps the candidate pool fetched from storage before any
	// in-memory filtering.
	jobPoolLimit = 100
	// maxFilteredJobs caps the surviving set after filtering.
	maxFilteredJobs = 10
)

// JobStore is the slice of the record store the job engine consumes.
type JobStore interface {
	// FetchOpenJobs returns non-expired jobs, optionally pre-filtered by a
	// requirements substring at the storage level, capped at limit rows.
	FetchOpenJobs(ctx context.Context, requirementsLike string, limit int) ([]model.Job, error)
}

// JobFilterEngine narrows a fetched job pool with per-entity predicates.
type JobFilterEngine struct {
	store JobStore
}

// NewJobFilterEngine creates a new job filter engine.
func NewJobFilterEngine(store JobStore) *JobFilterEngine {
	return &JobFilterEngine{store: store}
}

// FilterJobs fetches the candidate pool and applies each entity filter in a
// fixed order. Filters compose as logical AND and each one only narrows the
// current set; fetch order is preserved and nothing is re-ranked. The
// entities are never mutated.
func (e *JobFilterEngine) FilterJobs(ctx context.Context, ent model.Entities) ([]model.Job, error) {
	jobs, err := e.store.FetchOpenJobs(ctx, ent.Requirements, jobPoolLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch job pool: %w", err)
	}

	if ent.Location != "" {
		jobs = filterByLocation(jobs, ent.Location)
	}
	if ent.JobTitle != "" {
		jobs = filterByTitle(jobs, ent.JobTitle)
	}
	if ent.Industry != "" {
		jobs = filterByIndustry(jobs, ent.Industry)
	}
	if ent.CompanyName != "" {
		jobs = filterByCompany(jobs, ent.CompanyName)
	}
	if ent.MinSalary != nil || ent.MaxSalary != nil {
		jobs = filterBySalary(jobs, ent.MinSalary, ent.MaxSalary)
	}

	if len(jobs) > maxFilteredJobs {
		jobs = jobs[:maxFilteredJobs]
	}
	return jobs, nil
}

// filterByLocation keeps a job when any comma-separated part of its location
// equals, contains, or is contained by the requested location. Jobs without
// a location are dropped while this filter is active.
func filterByLocation(jobs []model.Job, location string) []model.Job {
	want := strings.ToLower(strings.TrimSpace(location))
	var out []model.Job
	for _, job := range jobs {
		if job.Location == "" {
			continue
		}
		for _, part := range strings.Split(strings.ToLower(job.Location), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if part == want || strings.Contains(part, want) || strings.Contains(want, part) {
				out = append(out, job)
				break
			}
		}
	}
	return out
}

// filterByTitle expands the requested title into its synonym set and keeps a
// job when any keyword is a substring of its title, position, or
// requirements. One match in one field suffices.
func filterByTitle(jobs []model.Job, title string) []model.Job {
	keywords := ExpandJobTitle(title)
	var out []model.Job
	for _, job := range jobs {
		fields := []string{
			strings.ToLower(job.Title),
			strings.ToLower(job.Position),
			strings.ToLower(job.Requirements),
		}
		if anyKeywordInFields(keywords, fields) {
			out = append(out, job)
		}
	}
	return out
}

func anyKeywordInFields(keywords, fields []string) bool {
	for _, kw := range keywords {
		for _, field := range fields {
			if field != "" && strings.Contains(field, kw) {
				return true
			}
		}
	}
	return false
}

func filterByIndustry(jobs []model.Job, industry string) []model.Job {
	want := strings.ToLower(industry)
	var out []model.Job
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Position), want) {
			out = append(out, job)
		}
	}
	return out
}

func filterByCompany(jobs []model.Job, name string) []model.Job {
	want := strings.ToLower(name)
	var out []model.Job
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Employer.CompanyName), want) {
			out = append(out, job)
		}
	}
	return out
}

var firstNumberPattern = regexp.MustCompile(`\d+`)

// filterBySalary compares the job's effective minimum salary against the
// requested bounds. Jobs without a parsable number are dropped while a
// salary filter is active; that is a data condition, not an error.
func filterBySalary(jobs []model.Job, min, max *int64) []model.Job {
	var out []model.Job
	for _, job := range jobs {
		effective, ok := effectiveMinSalary(job.Salary)
		if !ok {
			continue
		}
		if min != nil && effective < *min {
			continue
		}
		if max != nil && effective > *max {
			continue
		}
		out = append(out, job)
	}
	return out
}

// effectiveMinSalary reads the first integer anywhere in the free-text
// salary field and treats it as the job's minimum in VND. A range like
// "15-20 triệu" is therefore evaluated only against its lower bound; text
// like "Thỏa thuận" has no number at all.
func effectiveMinSalary(salary string) (int64, bool) {
	digits := firstNumberPattern.FindString(salary)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n * million, true
}
