package scrape

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout/internal/domain"
	"jobscout/internal/scrape/util"
)

// Listing pages rarely hold full posting text, so promising links get fetched
// and verified individually. Links are ranked before spending the per-site
// probe budget on them.

type probeLink struct {
	url      string
	text     string
	priority string // "high", "high-jobid", "medium", "low"
}

var highPriorityLinkText = []string{
	"apply now", "apply for", "view job", "job details", "apply today",
	"submit application", "apply here", "learn more", "see details",
	"view position", "more info",
}

var socialHosts = []string{
	"facebook.com", "twitter.com", "linkedin.com", "instagram.com", "youtube.com",
}

// Navigation chrome; links inside these never lead to a specific posting.
const navAncestorSelector = "header, nav, footer, " +
	".header, .nav, .navbar, .navigation, .menu, .top-nav, .main-nav, " +
	".site-header, .page-header, .breadcrumb, .breadcrumbs, .footer, .site-footer"

// The search narrows to the page's main content when one of these matches,
// which keeps sidebars and footers out of the link pool.
var mainContentSelectors = []string{
	"main", ".main", "#main", ".content", "#content", ".main-content",
	".page-content", ".job-listings", ".jobs", ".positions", ".careers-content",
	"article", ".container", ".wrapper",
}

// collectProbeLinks gathers and ranks candidate links from doc, capped at
// maxLinks. High-priority links (apply buttons, job-ID URLs) fill first.
func collectProbeLinks(doc *goquery.Document, pageURL string, keywords []string, maxLinks int) []probeLink {
	searchArea := doc.Selection
	for _, sel := range mainContentSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			searchArea = found.First()
			break
		}
	}

	var high, medium, low []probeLink

	searchArea.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") {
			return
		}
		lowerHref := strings.ToLower(href)
		for _, host := range socialHosts {
			if strings.Contains(lowerHref, host) {
				return
			}
		}
		if a.Closest(navAncestorSelector).Length() > 0 {
			return
		}

		text := strings.ToLower(util.CleanText(a.Text()))
		abs := util.Resolve(pageURL, href)
		if abs == "" {
			return
		}

		switch {
		case containsAny(text, highPriorityLinkText):
			high = append(high, probeLink{abs, text, "high"})
		case jobIDPattern.MatchString(href):
			high = append(high, probeLink{abs, text, "high-jobid"})
		case containsAny(text, anchorJobWords) || containsAny(lowerHref, anchorJobWords):
			medium = append(medium, probeLink{abs, text, "medium"})
		case len(MatchKeywords(text, keywords)) > 0:
			low = append(low, probeLink{abs, text, "low"})
		}
	})

	highCap := maxLinks / 2
	if highCap < 8 {
		highCap = 8
	}
	out := take(high, highCap)
	out = append(out, take(medium, maxLinks-len(out))...)
	out = append(out, take(low, maxLinks-len(out))...)
	if len(out) > maxLinks {
		out = out[:maxLinks]
	}

	log.Printf("[probe] %s: %d high, %d medium, %d low priority links",
		pageURL, len(high), len(medium), len(low))
	return out
}

func take(links []probeLink, n int) []probeLink {
	if n <= 0 {
		return nil
	}
	if len(links) > n {
		links = links[:n]
	}
	return links
}

// probeLinks fetches each ranked link and keeps the pages that verify as
// postings. Requests stay sequential, paced by the host limiter plus a short
// fixed delay.
func (r *Runner) probeLinks(ctx context.Context, doc *goquery.Document, site string) []domain.JobCandidate {
	links := collectProbeLinks(doc, site, r.keywords, r.maxLinks)

	var out []domain.JobCandidate
	for _, l := range links {
		if ctx.Err() != nil {
			break
		}
		r.debugf("[probe] checking %s priority link: %s", l.priority, l.url)
		r.sleep(r.probeDelay)
		if err := r.limiter.WaitURL(ctx, l.url); err != nil {
			break
		}

		body, err := r.client.FetchPage(ctx, l.url)
		if err != nil {
			r.debugf("[probe] %s: %v", l.url, err)
			continue
		}
		linkDoc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			r.debugf("[probe] parse %s: %v", l.url, err)
			continue
		}

		isJob, matched := ClassifyPage(linkDoc.Text(), r.keywords, l.url)
		if !isJob {
			continue
		}

		title := pageTitle(linkDoc.Selection, l.text)
		out = append(out, domain.JobCandidate{
			Title:           title,
			SourceURL:       site,
			ApplyURL:        l.url,
			MatchedKeywords: matched,
		})
		log.Printf("[probe] found job: %s", title)
	}
	return out
}
