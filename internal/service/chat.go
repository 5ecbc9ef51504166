package service

import (
	"context"

	"jobchat/internal/model"
)

// maxResponseResults caps the jobs/companies slices attached to a reply.
const maxResponseResults = 5

// ChatService sequences classify → fetch → filter → render for a single
// message. It holds no state across calls; concurrent calls are fully
// independent. Persisting the exchange is the caller's responsibility.
type ChatService struct {
	jobs      *JobFilterEngine
	companies *CompanyFilterEngine
}

// NewChatService creates a new chat service.
func NewChatService(jobs *JobFilterEngine, companies *CompanyFilterEngine) *ChatService {
	return &ChatService{
		jobs:      jobs,
		companies: companies,
	}
}

// Chat handles one message and returns the rendered response together with
// the query parsed from it. The caller must pass a trimmed, non-empty
// message. A storage failure fails the whole call; no partial response is
// synthesized.
func (s *ChatService) Chat(ctx context.Context, message string) (*model.ChatResponse, model.ParsedQuery, error) {
	parsed := ParseMessage(message)

	var (
		jobs      []model.Job
		companies []model.Company
		err       error
	)
	switch parsed.Intent {
	case model.IntentFindJob:
		jobs, err = s.jobs.FilterJobs(ctx, parsed.Entities)
	case model.IntentFindCompany:
		companies, err = s.companies.FilterCompanies(ctx, parsed.Entities)
	}
	if err != nil {
		return nil, parsed, err
	}

	resp := &model.ChatResponse{
		Message: RenderResponse(parsed.Intent, parsed.Entities, jobs, companies),
		Intent:  parsed.Intent,
		Data: model.ChatData{
			Jobs:      capJobs(jobs, maxResponseResults),
			Companies: capCompanies(companies, maxResponseResults),
		},
	}
	return resp, parsed, nil
}

func capJobs(jobs []model.Job, n int) []model.Job {
	if jobs == nil {
		return []model.Job{}
	}
	if len(jobs) > n {
		return jobs[:n]
	}
	return jobs
}

func capCompanies(companies []model.Company, n int) []model.Company {
	if companies == nil {
		return []model.Company{}
	}
	if len(companies) > n {
		return companies[:n]
	}
	return companies
}
