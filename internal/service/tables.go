package service

import "strings"

// The extraction rule tables live here as data rather than branching logic.
// Table order is load-bearing: every scan short-circuits on its first hit,
// so districts must come before cities and multi-word phrases before their
// single-word abbreviations.

// locationGazetteer lists known places in precedence order: Hanoi districts,
// then HCMC districts, then cities. "Cầu Giấy" must win over a later
// "Hà Nội" when a message contains both.
var locationGazetteer = []string{
	// Hanoi districts
	"cầu giấy",
	"đống đa",
	"ba đình",
	"hoàn kiếm",
	"hai bà trưng",
	"thanh xuân",
	"hà đông",
	"nam từ liêm",
	"bắc từ liêm",
	"long biên",
	"tây hồ",
	"hoàng mai",
	// HCMC districts
	"quận 1",
	"quận 2",
	"quận 3",
	"quận 7",
	"quận 9",
	"bình thạnh",
	"tân bình",
	"gò vấp",
	"phú nhuận",
	"thủ đức",
	// Cities
	"hà nội",
	"hồ chí minh",
	"sài gòn",
	"đà nẵng",
	"hải phòng",
	"cần thơ",
	"nha trang",
	"biên hòa",
	"vũng tàu",
	"huế",
}

// jobTitlePhrases lists canonical job titles, multi-word phrases first so
// "frontend developer" is captured whole instead of stopping at "frontend".
var jobTitlePhrases = []string{
	"frontend developer",
	"front end developer",
	"backend developer",
	"back end developer",
	"fullstack developer",
	"full stack developer",
	"mobile developer",
	"web developer",
	"software engineer",
	"data engineer",
	"data analyst",
	"business analyst",
	"product manager",
	"project manager",
	"ui/ux designer",
	"test engineer",
	"qa engineer",
	"lập trình viên",
	"kiểm thử phần mềm",
	"frontend",
	"backend",
	"fullstack",
	"tester",
	"devops",
	"designer",
	"developer",
}

// techKeywords lists technologies scanned as requirement signals. Longer
// names come before their substrings ("javascript" before "java",
// "react native" before "react").
var techKeywords = []string{
	"react native",
	"spring boot",
	"node.js",
	"nodejs",
	"reactjs",
	"react",
	"angular",
	"vuejs",
	"vue",
	"flutter",
	"javascript",
	"typescript",
	"python",
	"golang",
	"java",
	"kotlin",
	"swift",
	"laravel",
	"php",
	"c#",
	".net",
	"django",
	"docker",
	"kubernetes",
	"aws",
	"mongodb",
	"postgresql",
	"mysql",
	"sql",
}

// companyRoster is the fixed set of employer names recognized in free text.
var companyRoster = []string{
	"fpt",
	"viettel",
	"vnpt",
	"vng",
	"cmc",
	"tiki",
	"shopee",
	"lazada",
	"momo",
	"zalo",
	"grab",
	"vinai",
	"techcombank",
	"mbbank",
}

// industries is a fallback signal, only consulted when no job title matched.
var industries = []string{
	"công nghệ thông tin",
	"marketing",
	"kế toán",
	"nhân sự",
	"bán hàng",
	"tài chính",
	"ngân hàng",
	"xây dựng",
	"giáo dục",
	"y tế",
	"logistics",
	"du lịch",
}

// jobQueryKeywords trigger the find_job baseline intent.
var jobQueryKeywords = []string{
	"tìm việc",
	"việc làm",
	"tuyển dụng",
	"job",
	"công việc",
	"vị trí",
	"lương",
	"salary",
	"yêu cầu",
}

// companyQueryKeywords trigger the find_company baseline intent.
var companyQueryKeywords = []string{
	"công ty",
	"company",
}

// titleSynonyms maps one canonical job title to the keyword set used for
// substring matching against job records.
type titleSynonyms struct {
	title    string
	keywords []string
}

// jobTitleSynonyms is kept as an ordered list of pairs so lookup behavior
// stays independent of map iteration order.
var jobTitleSynonyms = []titleSynonyms{
	{"frontend developer", []string{"frontend", "front-end", "front end", "reactjs", "react", "angular", "vuejs", "vue"}},
	{"frontend", []string{"frontend", "front-end", "front end", "reactjs", "react", "angular", "vuejs", "vue"}},
	{"backend developer", []string{"backend", "back-end", "back end", "nodejs", "java", "golang", "python", "php", "api"}},
	{"backend", []string{"backend", "back-end", "back end", "nodejs", "java", "golang", "python", "php", "api"}},
	{"fullstack developer", []string{"fullstack", "full-stack", "full stack", "frontend", "backend"}},
	{"fullstack", []string{"fullstack", "full-stack", "full stack", "frontend", "backend"}},
	{"tester", []string{"tester", "qa", "quality assurance", "test engineer", "qa engineer", "quality engineer"}},
	{"test engineer", []string{"tester", "qa", "quality assurance", "test engineer", "qa engineer", "quality engineer"}},
	{"qa engineer", []string{"tester", "qa", "quality assurance", "test engineer", "qa engineer", "quality engineer"}},
	{"kiểm thử phần mềm", []string{"kiểm thử", "tester", "qa", "quality assurance", "test engineer"}},
	{"mobile developer", []string{"mobile", "android", "ios", "react native", "flutter"}},
	{"web developer", []string{"web", "frontend", "backend", "fullstack"}},
	{"devops", []string{"devops", "sre", "ci/cd", "system engineer"}},
	{"data analyst", []string{"data analyst", "phân tích dữ liệu", "data"}},
	{"data engineer", []string{"data engineer", "etl", "data pipeline", "data"}},
	{"business analyst", []string{"business analyst", "phân tích nghiệp vụ"}},
	{"lập trình viên", []string{"lập trình viên", "developer", "programmer", "engineer"}},
	{"developer", []string{"developer", "lập trình viên", "programmer", "engineer"}},
	{"designer", []string{"designer", "ui/ux", "thiết kế"}},
	{"ui/ux designer", []string{"designer", "ui/ux", "ui", "ux", "thiết kế"}},
}

// ExpandJobTitle maps a job title to its synonym keyword set for broader
// substring matching. Unknown titles fall back to a single-element set
// holding the normalized input, so expansion never fails and never returns
// an empty set.
func ExpandJobTitle(title string) []string {
	norm := strings.ToLower(strings.TrimSpace(title))
	for _, entry := range jobTitleSynonyms {
		if entry.title == norm {
			return entry.keywords
		}
	}
	return []string{norm}
}
