package service

import (
	"strings"
	"testing"
)

func TestExpandJobTitle_KnownTitle(t *testing.T) {
	got := ExpandJobTitle("tester")

	want := []string{"tester", "qa", "quality assurance", "test engineer", "qa engineer", "quality engineer"}
	for _, kw := range want {
		if !contains(got, kw) {
			t.Errorf("ExpandJobTitle(\"tester\") = %v, missing %q", got, kw)
		}
	}
}

func TestExpandJobTitle_NormalizesInput(t *testing.T) {
	got := ExpandJobTitle("  FRONTEND DEVELOPER ")
	if !contains(got, "reactjs") {
		t.Errorf("ExpandJobTitle with padding/case = %v, expected frontend synonym set", got)
	}
}

func TestExpandJobTitle_IdentityFallback(t *testing.T) {
	got := ExpandJobTitle("Unknown-Role")
	if len(got) != 1 || got[0] != "unknown-role" {
		t.Errorf("ExpandJobTitle(\"Unknown-Role\") = %v, want [unknown-role]", got)
	}
}

func TestExpandJobTitle_NeverEmpty(t *testing.T) {
	for _, title := range []string{"", "  ", "tester", "zzz"} {
		if got := ExpandJobTitle(title); len(got) == 0 {
			t.Errorf("ExpandJobTitle(%q) returned an empty set", title)
		}
	}
}

// Table order is semantically load-bearing; these tests pin the precedence
// the scans rely on.

func TestGazetteerOrder_DistrictsBeforeCities(t *testing.T) {
	if indexOf(locationGazetteer, "cầu giấy") > indexOf(locationGazetteer, "hà nội") {
		t.Error("gazetteer must list Hanoi districts before cities")
	}
	if indexOf(locationGazetteer, "bình thạnh") > indexOf(locationGazetteer, "hồ chí minh") {
		t.Error("gazetteer must list HCMC districts before cities")
	}
}

func TestJobTitleOrder_PhrasesBeforeAbbreviations(t *testing.T) {
	pairs := [][2]string{
		{"frontend developer", "frontend"},
		{"backend developer", "backend"},
		{"fullstack developer", "fullstack"},
		{"test engineer", "tester"},
	}
	for _, pair := range pairs {
		if indexOf(jobTitlePhrases, pair[0]) > indexOf(jobTitlePhrases, pair[1]) {
			t.Errorf("job title table must list %q before %q", pair[0], pair[1])
		}
	}
}

func TestTechKeywordOrder_LongNamesBeforeSubstrings(t *testing.T) {
	pairs := [][2]string{
		{"javascript", "java"},
		{"react native", "react"},
		{"reactjs", "react"},
		{"vuejs", "vue"},
	}
	for _, pair := range pairs {
		if indexOf(techKeywords, pair[0]) > indexOf(techKeywords, pair[1]) {
			t.Errorf("technology table must list %q before %q", pair[0], pair[1])
		}
	}
}

func TestSynonymKeys_AreLowerCase(t *testing.T) {
	for _, entry := range jobTitleSynonyms {
		if entry.title != strings.ToLower(entry.title) {
			t.Errorf("synonym key %q must be lower-case", entry.title)
		}
		if len(entry.keywords) == 0 {
			t.Errorf("synonym key %q has an empty keyword set", entry.title)
		}
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return len(values)
}
