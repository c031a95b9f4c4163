package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"jobscout/internal/domain"
	"jobscout/internal/scrape/util"
)

// Titles get clipped so pathological markup can't flood the report.
const maxTitleLen = 200

// Selectors that career pages commonly hang individual postings on.
var jobSelectors = []string{
	".job-listing", ".job-post", ".position", ".opening",
	`[class*="job"]`, `[class*="position"]`, `[class*="career"]`,
	"article", ".listing", ".vacancy",
}

// Substrings marking an anchor as job-related, in text or href.
var anchorJobWords = []string{
	"job", "career", "position", "apply", "opening", "vacancy",
	"hiring", "opportunity", "role", "employment",
}

// ExtractPage applies both discovery strategies to one parsed document: the
// whole-page check plus the job-selector elements (verified by the text
// heuristics), and anchors carrying job vocabulary (verified by plain keyword
// match).
func ExtractPage(doc *goquery.Document, pageURL string, keywords []string) []domain.JobCandidate {
	var out []domain.JobCandidate

	pageText := doc.Text()
	isJob, matched := ClassifyPage(pageText, keywords, pageURL)
	if isJob && !LooksLikeListingPage(pageText) {
		out = append(out, domain.JobCandidate{
			Title:           pageTitle(doc.Selection, "Job Posting"),
			SourceURL:       pageURL,
			ApplyURL:        pageURL,
			MatchedKeywords: matched,
		})
	}

	out = append(out, extractElements(doc, pageURL, keywords)...)
	out = append(out, extractAnchors(doc, pageURL, keywords)...)
	return out
}

func extractElements(doc *goquery.Document, pageURL string, keywords []string) []domain.JobCandidate {
	var out []domain.JobCandidate

	// Selectors overlap; process each node once.
	seen := map[*html.Node]bool{}
	for _, sel := range jobSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			node := s.Get(0)
			if seen[node] {
				return
			}
			seen[node] = true

			text := util.CleanText(s.Text())
			if text == "" {
				return
			}
			isJob, matched := ClassifyPage(text, keywords, pageURL)
			if !isJob {
				return
			}

			title := util.CleanText(s.Find("h1, h2, h3, h4, a").First().Text())
			if title == "" {
				title = util.Truncate(text, 100)
			}

			applyURL := ""
			if href, ok := s.Find("a[href]").First().Attr("href"); ok {
				applyURL = util.Resolve(pageURL, href)
			}

			out = append(out, domain.JobCandidate{
				Title:           util.Truncate(title, maxTitleLen),
				SourceURL:       pageURL,
				ApplyURL:        applyURL,
				MatchedKeywords: matched,
			})
		})
	}
	return out
}

func extractAnchors(doc *goquery.Document, pageURL string, keywords []string) []domain.JobCandidate {
	var out []domain.JobCandidate

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := util.CleanText(a.Text())
		if text == "" {
			return
		}

		blob := strings.ToLower(text + " " + href)
		if !containsAny(blob, anchorJobWords) {
			return
		}

		matched := MatchKeywords(text, keywords)
		if len(matched) == 0 {
			return
		}

		out = append(out, domain.JobCandidate{
			Title:           util.Truncate(text, maxTitleLen),
			SourceURL:       pageURL,
			ApplyURL:        util.Resolve(pageURL, href),
			MatchedKeywords: matched,
		})
	})
	return out
}

// pageTitle prefers the first h1/h2 and falls back to <title>.
func pageTitle(s *goquery.Selection, fallback string) string {
	for _, sel := range []string{"h1", "h2", "title"} {
		if t := util.CleanText(s.Find(sel).First().Text()); t != "" {
			return util.Truncate(t, maxTitleLen)
		}
	}
	return fallback
}
