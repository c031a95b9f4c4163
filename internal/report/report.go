package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobscout/internal/domain"
)

// DefaultPath builds the timestamped report filename inside dir.
func DefaultPath(dir string, now time.Time) string {
	return filepath.Join(dir, "job_results_"+now.Format("20060102_150405")+".txt")
}

// Render formats the deduplicated candidates as the plain-text report body.
func Render(jobs []domain.JobCandidate, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Job Search Results - %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(jobs) == 0 {
		b.WriteString("No jobs found matching your criteria.\n")
		return b.String()
	}

	for i, j := range jobs {
		apply := j.ApplyURL
		if apply == "" {
			apply = "N/A"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, j.Title)
		fmt.Fprintf(&b, "   Source: %s\n", j.SourceURL)
		fmt.Fprintf(&b, "   Apply: %s\n", apply)
		fmt.Fprintf(&b, "   Matched Keywords: %s\n", strings.Join(j.MatchedKeywords, ", "))
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

// Write renders the report and writes it in one atomic rename, so an
// interrupted run never leaves a partial file. Returns the candidate count.
func Write(path string, jobs []domain.JobCandidate, now time.Time) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create results dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Render(jobs, now)), 0o644); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}

	log.Printf("[report] %d results saved to %s", len(jobs), path)
	return len(jobs), nil
}
