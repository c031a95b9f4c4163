package scrape

import (
	"regexp"
	"strings"
)

// Text heuristics separating actual postings from the rest of a career site.
// A block must mention a configured keyword and carry enough job vocabulary;
// marketing, docs and listing-index pages are rejected up front.

var strongJobIndicators = []string{
	"apply now", "apply for this position", "job description", "requirements",
	"responsibilities", "qualifications", "years of experience", "submit resume",
	"cv", "application", "candidate", "hiring", "employment", "position details",
	"role description", "job summary", "what you'll do", "what you will do",
	"required skills", "preferred qualifications", "salary", "compensation",
	"benefits package", "location:", "reports to", "department:", "job type",
	"full-time", "part-time", "contract", "permanent", "temporary",
}

var weakJobIndicators = []string{
	"career", "opportunity", "role", "position", "team", "join us",
	"remote", "on-site", "hybrid", "office", "skills", "experience",
}

var antiPatterns = []string{
	"developer tools", "documentation", "api reference", "getting started",
	"tutorials", "examples", "download", "pricing", "features", "product",
	"solutions", "services", "about us", "contact us", "news", "blog",
	"press release", "company overview", "our story", "mission", "vision",
	"job search", "search jobs", "all jobs", "job listings", "browse jobs",
	"filter jobs", "sort by", "results found", "showing", "page",
}

// Very specific posting phrases; non-job-ID URLs must carry one of these (or
// a strong indicator) so that category pages don't slip through.
var specificJobIndicators = []string{
	"apply now", "apply for this position", "job description", "responsibilities",
	"requirements", "qualifications", "submit resume", "submit application",
}

var listingPageIndicators = []string{
	"search results", "filter by", "sort by", "results found", "showing",
	"job listings", "browse jobs", "all jobs", "find jobs", "job search",
	"total jobs", "open positions", "view all", "more jobs",
}

var jobIDPattern = regexp.MustCompile(`(?i)/jobs?/\d+`)

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// ClassifyPage reports whether text reads like a single job posting, and the
// configured keywords it mentions. URLs that embed a job ID get a more
// lenient check since the URL itself vouches for the page.
func ClassifyPage(text string, keywords []string, pageURL string) (bool, []string) {
	lower := strings.ToLower(text)

	if containsAny(lower, antiPatterns) {
		return false, nil
	}

	matched := MatchKeywords(text, keywords)
	if len(matched) == 0 {
		return false, nil
	}

	strong := containsAny(lower, strongJobIndicators)
	weakCount := 0
	for _, w := range weakJobIndicators {
		if strings.Contains(lower, w) {
			weakCount++
		}
	}
	indicated := strong || weakCount >= 2
	if !indicated {
		return false, nil
	}

	if pageURL != "" && jobIDPattern.MatchString(pageURL) {
		return true, matched
	}
	if strong || containsAny(lower, specificJobIndicators) {
		return true, matched
	}
	return false, nil
}

// LooksLikeListingPage flags index pages so they aren't reported as a single
// posting; their individual links get probed instead.
func LooksLikeListingPage(text string) bool {
	return containsAny(strings.ToLower(text), listingPageIndicators)
}
