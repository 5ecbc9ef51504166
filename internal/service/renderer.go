package service

import (
	"fmt"
	"strings"

	"jobchat/internal/model"
)

// maxRenderedResults caps the numbered lines in a rendered reply.
const maxRenderedResults = 5

const (
	defaultCompanyName = "Công ty"

	noCompaniesMessage = "Rất tiếc, tôi không tìm thấy công ty nào phù hợp với yêu cầu của bạn."

	greetingMessage = "Xin chào! Tôi là trợ lý tìm việc của bạn. " +
		"Bạn có thể hỏi tôi những câu như \"Tìm việc frontend developer ở Hà Nội\" " +
		"hoặc \"Công ty FPT đang tuyển gì?\"."

	adjustSuggestion = "Bạn có thể thử điều chỉnh địa điểm, mức lương hoặc vị trí công việc để xem thêm kết quả."
)

// RenderResponse formats the filtered results into the reply text. It is a
// pure function of its arguments and renders at most five numbered lines.
func RenderResponse(intent model.Intent, ent model.Entities, jobs []model.Job, companies []model.Company) string {
	switch {
	case intent == model.IntentFindJob && len(jobs) > 0:
		return renderJobList(ent, jobs)
	case intent == model.IntentFindJob:
		return renderNoJobs(ent)
	case intent == model.IntentFindCompany && len(companies) > 0:
		return renderCompanyList(companies)
	case intent == model.IntentFindCompany:
		return noCompaniesMessage
	default:
		return greetingMessage
	}
}

func renderJobList(ent model.Entities, jobs []model.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tôi đã tìm thấy %d công việc phù hợp", len(jobs))
	if clause := criteriaClause(ent, false); clause != "" {
		b.WriteString(" cho " + clause)
	}
	b.WriteString(":\n")
	for i, job := range jobs {
		if i >= maxRenderedResults {
			break
		}
		name := job.Employer.CompanyName
		if name == "" {
			name = defaultCompanyName
		}
		fmt.Fprintf(&b, "\n%d. %s - %s - %s", i+1, name, job.Title, job.Location)
	}
	return b.String()
}

func renderNoJobs(ent model.Entities) string {
	msg := "Rất tiếc, hiện chưa có công việc phù hợp"
	if clause := criteriaClause(ent, true); clause != "" {
		msg += " cho " + clause
	}
	return msg + ". " + adjustSuggestion
}

func renderCompanyList(companies []model.Company) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tôi đã tìm thấy %d công ty phù hợp:\n", len(companies))
	for i, company := range companies {
		if i >= maxRenderedResults {
			break
		}
		industry := company.Industry
		if industry == "" {
			industry = "N/A"
		}
		fmt.Fprintf(&b, "\n%d. %s - %s", i+1, company.Name, industry)
	}
	return b.String()
}

// criteriaClause concatenates the active search criteria in a fixed order.
// The empty-result variant (short=true) keeps only the title, salary and
// location criteria and always spells out both salary bounds; the full
// variant mentions the upper bound only when no lower bound is set.
func criteriaClause(ent model.Entities, short bool) string {
	var parts []string
	if ent.JobTitle != "" {
		parts = append(parts, ent.JobTitle)
	}
	if !short && ent.Requirements != "" {
		parts = append(parts, "kỹ năng "+ent.Requirements)
	}
	if !short && ent.CompanyName != "" {
		parts = append(parts, "tại "+ent.CompanyName)
	}
	if ent.MinSalary != nil {
		parts = append(parts, fmt.Sprintf("lương từ %d triệu trở lên", *ent.MinSalary/million))
	}
	if ent.MaxSalary != nil && (short || ent.MinSalary == nil) {
		parts = append(parts, fmt.Sprintf("lương dưới %d triệu", *ent.MaxSalary/million))
	}
	if ent.Location != "" {
		parts = append(parts, "tại "+ent.Location)
	}
	if !short && ent.Industry != "" && ent.JobTitle == "" && ent.Requirements == "" {
		parts = append(parts, "ngành "+ent.Industry)
	}
	return strings.Join(parts, ", ")
}
