package service

import (
	"context"
	"fmt"

	"jobchat/internal/model"
)

const (
	// companyRowLimit bounds the join fetch the same way jobPoolLimit bounds
	// the job pool.
	companyRowLimit = 100
	// maxFilteredCompanies caps the grouped output.
	maxFilteredCompanies = 10
)

// CompanyStore is the slice of the record store the company engine consumes.
type CompanyStore interface {
	// FetchCompanyJobRows returns employers inner-joined with their
	// non-expired jobs, so an employer with zero open jobs never appears.
	// The industry and name predicates are optional substring filters
	// applied at the storage level.
	FetchCompanyJobRows(ctx context.Context, industryLike, nameLike string, limit int) ([]model.CompanyJobRow, error)
}

// CompanyFilterEngine groups open-job rows into company records.
type CompanyFilterEngine struct {
	store CompanyStore
}

// NewCompanyFilterEngine creates a new company filter engine.
func NewCompanyFilterEngine(store CompanyStore) *CompanyFilterEngine {
	return &CompanyFilterEngine{store: store}
}

// FilterCompanies fetches the joined rows and groups them by employer id,
// keeping order of first appearance. Output is capped at ten companies;
// jobs keep accumulating on companies already in the result.
func (e *CompanyFilterEngine) FilterCompanies(ctx context.Context, ent model.Entities) ([]model.Company, error) {
	rows, err := e.store.FetchCompanyJobRows(ctx, ent.Industry, ent.CompanyName, companyRowLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch company rows: %w", err)
	}

	index := make(map[int64]int)
	var companies []model.Company
	for _, row := range rows {
		i, seen := index[row.EmployerID]
		if !seen {
			if len(companies) >= maxFilteredCompanies {
				continue
			}
			companies = append(companies, model.Company{
				ID:          row.EmployerID,
				Name:        row.CompanyName,
				Logo:        row.CompanyLogo,
				Industry:    row.Industry,
				Website:     row.Website,
				Description: row.Description,
			})
			i = len(companies) - 1
			index[row.EmployerID] = i
		}
		companies[i].Jobs = append(companies[i].Jobs, row.Job)
	}
	return companies, nil
}
