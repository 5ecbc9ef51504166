package service

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobchat/internal/model"
)

var (
	companyNamePattern = regexp.MustCompile(`công ty\s+([\p{L}\d]+)`)
	minSalaryPattern   = regexp.MustCompile(`(\d+)\s*triệu\s*(?:trở lên|\+)|trên\s*(\d+)\s*triệu`)
	maxSalaryPattern   = regexp.MustCompile(`dưới\s*(\d+)\s*triệu|(\d+)\s*triệu\s*trở xuống`)
	salaryRangePattern = regexp.MustCompile(`(\d+)\s*(?:đến|tới|-)\s*(\d+)\s*triệu`)
	experiencePattern  = regexp.MustCompile(`(\d+)\s*năm`)
)

const million = 1_000_000

// ParseMessage classifies a chat message and extracts its entities. The
// message is lower-cased once at entry; each extraction category
// short-circuits on the first hit within its table, and categories are
// independent of each other. Pure function, no I/O.
func ParseMessage(message string) model.ParsedQuery {
	msg := strings.ToLower(message)
	parsed := model.ParsedQuery{Intent: baselineIntent(msg)}
	ent := &parsed.Entities

	// 1. Location: districts scan before cities, first table entry wins.
	for _, place := range locationGazetteer {
		if strings.Contains(msg, place) {
			ent.Location = titleCase(place)
			break
		}
	}

	// 2. Job title: stored verbatim lower-case. A title hit forces find_job
	// regardless of what the baseline classifier decided.
	for _, phrase := range jobTitlePhrases {
		if strings.Contains(msg, phrase) {
			ent.JobTitle = phrase
			parsed.EscalateToFindJob()
			break
		}
	}

	// 3. Technology keyword.
	for _, tech := range techKeywords {
		if strings.Contains(msg, tech) {
			ent.Requirements = tech
			parsed.EscalateToFindJob()
			break
		}
	}

	// 4. Company name: roster hit first, then the free-text
	// "công ty <name>" pattern, which overwrites the roster hit.
	for _, name := range companyRoster {
		if strings.Contains(msg, name) {
			ent.CompanyName = name
			parsed.EscalateToFindJob()
			break
		}
	}
	if m := companyNamePattern.FindStringSubmatch(msg); m != nil {
		ent.CompanyName = m[1]
	}

	// 5. Industry: subordinate to job title.
	if ent.JobTitle == "" {
		for _, industry := range industries {
			if strings.Contains(msg, industry) {
				ent.Industry = industry
				break
			}
		}
	}

	// 6. Salary: minimum-only, then maximum-only, then range. An explicit
	// range overwrites whatever the first two patterns set.
	if m := minSalaryPattern.FindStringSubmatch(msg); m != nil {
		ent.MinSalary = salaryVND(firstGroup(m))
	}
	if m := maxSalaryPattern.FindStringSubmatch(msg); m != nil {
		ent.MaxSalary = salaryVND(firstGroup(m))
	}
	if m := salaryRangePattern.FindStringSubmatch(msg); m != nil {
		ent.MinSalary = salaryVND(m[1])
		ent.MaxSalary = salaryVND(m[2])
	}

	// 7. Experience: kept as the literal "<N> năm" string.
	if m := experiencePattern.FindStringSubmatch(msg); m != nil {
		ent.ExperienceYears = m[1] + " năm"
	}

	return parsed
}

// baselineIntent classifies the message before entity side-effects.
func baselineIntent(msg string) model.Intent {
	for _, kw := range jobQueryKeywords {
		if strings.Contains(msg, kw) {
			return model.IntentFindJob
		}
	}
	for _, kw := range companyQueryKeywords {
		if strings.Contains(msg, kw) {
			return model.IntentFindCompany
		}
	}
	return model.IntentGeneral
}

// firstGroup returns the first non-empty capture group of a match. The
// salary patterns are alternations, so the number may land in either group.
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

func salaryVND(digits string) *int64 {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	v := n * million
	return &v
}

// titleCase capitalizes each word of a gazetteer entry for display, e.g.
// "hà nội" -> "Hà Nội".
func titleCase(s string) string {
	return cases.Title(language.Vietnamese).String(s)
}
