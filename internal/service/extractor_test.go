package service

import (
	"testing"

	"jobchat/internal/model"
)

func TestParseMessage_Location(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "city name",
			message: "Tìm việc ở Hà Nội",
			want:    "Hà Nội",
		},
		{
			name:    "district wins over city when both present",
			message: "tuyển dụng ở Cầu Giấy, Hà Nội",
			want:    "Cầu Giấy",
		},
		{
			name:    "district wins regardless of word order",
			message: "việc làm hà nội khu vực cầu giấy",
			want:    "Cầu Giấy",
		},
		{
			name:    "numbered district",
			message: "việc làm quận 7",
			want:    "Quận 7",
		},
		{
			name:    "no location",
			message: "tìm việc lập trình",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseMessage(tt.message)
			if parsed.Entities.Location != tt.want {
				t.Errorf("Location = %q, want %q", parsed.Entities.Location, tt.want)
			}
		})
	}
}

func TestParseMessage_JobTitleForcesFindJob(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantTitle string
	}{
		{
			name:      "multi-word phrase captured whole",
			message:   "có frontend developer nào không",
			wantTitle: "frontend developer",
		},
		{
			name:      "single-word abbreviation",
			message:   "mình muốn làm tester",
			wantTitle: "tester",
		},
		{
			name:      "title hit overrides company baseline",
			message:   "công ty nào cần backend developer",
			wantTitle: "backend developer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseMessage(tt.message)
			if parsed.Entities.JobTitle != tt.wantTitle {
				t.Errorf("JobTitle = %q, want %q", parsed.Entities.JobTitle, tt.wantTitle)
			}
			if parsed.Intent != model.IntentFindJob {
				t.Errorf("Intent = %q, want %q", parsed.Intent, model.IntentFindJob)
			}
		})
	}
}

func TestParseMessage_Technology(t *testing.T) {
	parsed := ParseMessage("tuyển dụng react ở Đà Nẵng")

	if parsed.Entities.Requirements != "react" {
		t.Errorf("Requirements = %q, want %q", parsed.Entities.Requirements, "react")
	}
	if parsed.Entities.Location != "Đà Nẵng" {
		t.Errorf("Location = %q, want %q", parsed.Entities.Location, "Đà Nẵng")
	}
	if parsed.Intent != model.IntentFindJob {
		t.Errorf("Intent = %q, want %q", parsed.Intent, model.IntentFindJob)
	}
}

func TestParseMessage_TechnologyOrder(t *testing.T) {
	// "javascript" must not be reported as "java".
	parsed := ParseMessage("cần việc javascript")
	if parsed.Entities.Requirements != "javascript" {
		t.Errorf("Requirements = %q, want %q", parsed.Entities.Requirements, "javascript")
	}
}

func TestParseMessage_CompanyName(t *testing.T) {
	t.Run("roster hit forces find_job", func(t *testing.T) {
		parsed := ParseMessage("Công ty FPT đang tuyển gì?")
		if parsed.Entities.CompanyName != "fpt" {
			t.Errorf("CompanyName = %q, want %q", parsed.Entities.CompanyName, "fpt")
		}
		if parsed.Intent != model.IntentFindJob {
			t.Errorf("Intent = %q, want %q", parsed.Intent, model.IntentFindJob)
		}
	})

	t.Run("free-text pattern overwrites roster hit", func(t *testing.T) {
		parsed := ParseMessage("viettel hay công ty wintech thì hơn")
		if parsed.Entities.CompanyName != "wintech" {
			t.Errorf("CompanyName = %q, want %q", parsed.Entities.CompanyName, "wintech")
		}
	})

	t.Run("pattern alone keeps find_company", func(t *testing.T) {
		parsed := ParseMessage("công ty wintech thế nào")
		if parsed.Entities.CompanyName != "wintech" {
			t.Errorf("CompanyName = %q, want %q", parsed.Entities.CompanyName, "wintech")
		}
		if parsed.Intent != model.IntentFindCompany {
			t.Errorf("Intent = %q, want %q", parsed.Intent, model.IntentFindCompany)
		}
	})
}

func TestParseMessage_IndustryFallback(t *testing.T) {
	t.Run("applied without job title", func(t *testing.T) {
		parsed := ParseMessage("tìm việc ngành marketing")
		if parsed.Entities.Industry != "marketing" {
			t.Errorf("Industry = %q, want %q", parsed.Entities.Industry, "marketing")
		}
	})

	t.Run("suppressed by job title", func(t *testing.T) {
		parsed := ParseMessage("tìm việc tester ngành marketing")
		if parsed.Entities.Industry != "" {
			t.Errorf("Industry = %q, want empty", parsed.Entities.Industry)
		}
		if parsed.Entities.JobTitle != "tester" {
			t.Errorf("JobTitle = %q, want %q", parsed.Entities.JobTitle, "tester")
		}
	})
}

func TestParseMessage_Salary(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantMin int64
		wantMax int64
	}{
		{
			name:    "minimum with trở lên",
			message: "lương 30 triệu trở lên",
			wantMin: 30_000_000,
		},
		{
			name:    "minimum with plus",
			message: "15 triệu+ thì nhận",
			wantMin: 15_000_000,
		},
		{
			name:    "minimum with trên",
			message: "lương trên 25 triệu",
			wantMin: 25_000_000,
		},
		{
			name:    "maximum with dưới",
			message: "việc lương dưới 20 triệu",
			wantMax: 20_000_000,
		},
		{
			name:    "maximum with trở xuống",
			message: "12 triệu trở xuống cũng được, miễn là có job",
			wantMax: 12_000_000,
		},
		{
			name:    "range with đến",
			message: "lương từ 15 đến 20 triệu",
			wantMin: 15_000_000,
			wantMax: 20_000_000,
		},
		{
			name:    "range with dash",
			message: "tìm việc 10-18 triệu",
			wantMin: 10_000_000,
			wantMax: 18_000_000,
		},
		{
			name:    "range overwrites earlier minimum",
			message: "lương 10 đến 20 triệu trở lên",
			wantMin: 10_000_000,
			wantMax: 20_000_000,
		},
		{
			name:    "no salary",
			message: "tìm việc tester",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseMessage(tt.message)
			checkSalary(t, "MinSalary", parsed.Entities.MinSalary, tt.wantMin)
			checkSalary(t, "MaxSalary", parsed.Entities.MaxSalary, tt.wantMax)
		})
	}
}

func checkSalary(t *testing.T, field string, got *int64, want int64) {
	t.Helper()
	if want == 0 {
		if got != nil {
			t.Errorf("%s = %d, want unset", field, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s = nil, want %d", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %d, want %d", field, *got, want)
	}
}

func TestParseMessage_Experience(t *testing.T) {
	parsed := ParseMessage("tuyển dụng java 3 năm kinh nghiệm")
	if parsed.Entities.ExperienceYears != "3 năm" {
		t.Errorf("ExperienceYears = %q, want %q", parsed.Entities.ExperienceYears, "3 năm")
	}
}

func TestParseMessage_BaselineIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    model.Intent
	}{
		{"job keyword", "có việc làm nào không", model.IntentFindJob},
		{"salary keyword", "lương thế nào", model.IntentFindJob},
		{"company keyword", "công ty nào tốt", model.IntentFindCompany},
		{"english company keyword", "best company here", model.IntentFindCompany},
		{"no keyword", "xin chào", model.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseMessage(tt.message)
			if parsed.Intent != tt.want {
				t.Errorf("Intent = %q, want %q", parsed.Intent, tt.want)
			}
		})
	}
}

func TestParseMessage_EndToEndScenario(t *testing.T) {
	parsed := ParseMessage("Tìm việc frontend developer ở Hà Nội")

	if parsed.Intent != model.IntentFindJob {
		t.Errorf("Intent = %q, want %q", parsed.Intent, model.IntentFindJob)
	}
	if parsed.Entities.JobTitle != "frontend developer" {
		t.Errorf("JobTitle = %q, want %q", parsed.Entities.JobTitle, "frontend developer")
	}
	if parsed.Entities.Location != "Hà Nội" {
		t.Errorf("Location = %q, want %q", parsed.Entities.Location, "Hà Nội")
	}
}
