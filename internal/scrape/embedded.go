package scrape

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout/internal/domain"
	"jobscout/internal/scrape/util"
)

// Modern job boards ship their listings as server-rendered JSON blobs inside
// <script> tags. These patterns cover the common ATS vendors; the page is
// still static HTML, nothing gets executed.
var jsStatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)phApp\.ddo\s*=\s*(\{.*?\});`), // Phenom
	regexp.MustCompile(`(?is)window\.__INITIAL_STATE__\s*=\s*(\{.*?\});`),
	regexp.MustCompile(`(?is)window\.jobData\s*=\s*(\{.*?\});`),
	regexp.MustCompile(`(?is)window\.jobs\s*=\s*(\[.*?\]);`),
	regexp.MustCompile(`(?is)"jobs"\s*:\s*(\[.*?\])`),
	regexp.MustCompile(`(?is)"jobListings"\s*:\s*(\[.*?\])`),
	regexp.MustCompile(`(?is)window\.gon\s*=\s*(\{.*?\});`),           // Greenhouse
	regexp.MustCompile(`(?is)window\.INITIAL_STATE\s*=\s*(\{.*?\});`), // Lever
	regexp.MustCompile(`(?is)window\.APP_STATE\s*=\s*(\{.*?\});`),     // BambooHR
	regexp.MustCompile(`(?is)var\s+wdAppInstanceData\s*=\s*(\{.*?\});`),
	regexp.MustCompile(`(?is)window\.mosaic\.providerData\s*=\s*(\{.*?\});`), // Indeed
}

// ExtractEmbedded scans raw HTML for embedded job-board state and returns the
// postings that mention a configured keyword. The first pattern that decodes
// to any postings wins.
func ExtractEmbedded(html, sourceURL string, keywords []string) []domain.JobCandidate {
	for _, re := range jsStatePatterns {
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			var data any
			if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
				continue
			}
			if jobs := candidatesFromState(data, sourceURL, keywords); len(jobs) > 0 {
				return jobs
			}
		}
	}
	return nil
}

func candidatesFromState(data any, sourceURL string, keywords []string) []domain.JobCandidate {
	switch v := data.(type) {
	case []any:
		return candidatesFromList(v, sourceURL, keywords)
	case map[string]any:
		// Phenom: eagerLoadRefineSearch.data.jobs
		if refine, ok := v["eagerLoadRefineSearch"].(map[string]any); ok {
			if inner, ok := refine["data"].(map[string]any); ok {
				if jobs, ok := inner["jobs"].([]any); ok {
					return candidatesFromList(jobs, sourceURL, keywords)
				}
			}
		}
		// Greenhouse: departments[].jobs
		if depts, ok := v["departments"].([]any); ok {
			var out []domain.JobCandidate
			for _, d := range depts {
				dm, ok := d.(map[string]any)
				if !ok {
					continue
				}
				if jobs, ok := dm["jobs"].([]any); ok {
					out = append(out, candidatesFromList(jobs, sourceURL, keywords)...)
				}
			}
			return out
		}
		// Lever: postings[]
		if postings, ok := v["postings"].([]any); ok {
			return candidatesFromList(postings, sourceURL, keywords)
		}
		// Generic: jobs[]
		if jobs, ok := v["jobs"].([]any); ok {
			return candidatesFromList(jobs, sourceURL, keywords)
		}
	}
	return nil
}

func candidatesFromList(items []any, sourceURL string, keywords []string) []domain.JobCandidate {
	var out []domain.JobCandidate
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}

		title := firstString(m, "title", "text", "name", "jobTitle")
		if title == "" {
			continue
		}
		applyURL := firstString(m, "applyUrl", "hostedUrl", "absolute_url", "url", "link", "applicationUrl")
		desc := firstString(m, "description", "descriptionTeaser", "content", "summary")

		matched := MatchKeywords(title+" "+desc, keywords)
		if len(matched) == 0 {
			continue
		}

		out = append(out, domain.JobCandidate{
			Title:           util.Truncate(util.CleanText(title), maxTitleLen),
			SourceURL:       sourceURL,
			ApplyURL:        util.Resolve(sourceURL, applyURL),
			MatchedKeywords: matched,
		})
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// ExtractJSONLD pulls schema.org JobPosting structured data out of
// application/ld+json script tags.
func ExtractJSONLD(doc *goquery.Document, sourceURL string, keywords []string) []domain.JobCandidate {
	var out []domain.JobCandidate

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}
		if t, _ := data["@type"].(string); t != "JobPosting" {
			return
		}

		title := firstString(data, "title")
		if title == "" {
			title = "Unknown Position"
		}
		applyURL := firstString(data, "directApply", "url")
		if applyURL == "" {
			return
		}

		desc := firstString(data, "description")
		matched := MatchKeywords(title+" "+desc, keywords)
		if len(matched) == 0 {
			return
		}

		out = append(out, domain.JobCandidate{
			Title:           util.Truncate(util.CleanText(title), maxTitleLen),
			SourceURL:       sourceURL,
			ApplyURL:        util.Resolve(sourceURL, applyURL),
			MatchedKeywords: matched,
		})
	})

	return out
}
