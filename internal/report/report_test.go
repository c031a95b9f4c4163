package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jobscout/internal/domain"
)

var testTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("job_results", testTime)
	want := filepath.Join("job_results", "job_results_20250314_150926.txt")
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

func TestRenderCandidates(t *testing.T) {
	jobs := []domain.JobCandidate{
		{
			Title:           "Python Developer",
			SourceURL:       "https://example.com/careers",
			ApplyURL:        "https://example.com/apply/1",
			MatchedKeywords: []string{"python"},
		},
		{
			Title:           "Go Engineer",
			SourceURL:       "https://acme.com/jobs",
			MatchedKeywords: []string{"go", "backend"},
		},
	}

	out := Render(jobs, testTime)

	for _, want := range []string{
		"Job Search Results - 2025-03-14 15:09:26",
		"1. Python Developer",
		"   Source: https://example.com/careers",
		"   Apply: https://example.com/apply/1",
		"   Matched Keywords: python",
		"2. Go Engineer",
		"   Apply: N/A",
		"   Matched Keywords: go, backend",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyRun(t *testing.T) {
	out := Render(nil, testTime)
	if !strings.Contains(out, "No jobs found matching your criteria.") {
		t.Errorf("empty run should still render a valid report:\n%s", out)
	}
}

func TestWriteCreatesFileAndReturnsCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.txt")

	jobs := []domain.JobCandidate{
		{Title: "A", SourceURL: "https://a.com", ApplyURL: "https://a.com/1", MatchedKeywords: []string{"go"}},
	}
	count, err := Write(path, jobs, testTime)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(b), "1. A") {
		t.Errorf("unexpected report contents:\n%s", b)
	}

	// No leftover temp file.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}

func TestWriteEmptyRunStillWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	count, err := Write(path, nil, testTime)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("empty run must still produce a report file: %v", err)
	}
}
