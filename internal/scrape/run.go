package scrape

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobscout/internal/config"
	"jobscout/internal/domain"
	"jobscout/internal/scrape/util"
)

// Runner drives the whole pipeline: fetch -> extract -> match per site,
// sequentially with a fixed delay between sites, then one dedupe pass over
// everything. Sites are independent; a failing site is logged and skipped.
type Runner struct {
	client     *Client
	limiter    *util.HostLimiter
	keywords   []string
	siteDelay  time.Duration
	probeDelay time.Duration
	maxLinks   int
	verbose    bool

	sleep func(time.Duration) // swapped out in tests
}

func NewRunner(cfg config.Settings, keywords []string, verbose bool) *Runner {
	return &Runner{
		client:     NewClient(cfg.Timeout(), cfg.HTTP.UserAgent),
		limiter:    util.NewHostLimiter(cfg.Scrape.HostRatePerSec, cfg.Scrape.HostBurst),
		keywords:   keywords,
		siteDelay:  cfg.SiteDelay(),
		probeDelay: cfg.ProbeDelay(),
		maxLinks:   cfg.Scrape.MaxLinksPerSite,
		verbose:    verbose,
		sleep:      time.Sleep,
	}
}

// SetMaxLinks overrides the configured per-site probe budget.
func (r *Runner) SetMaxLinks(n int) {
	if n > 0 {
		r.maxLinks = n
	}
}

func (r *Runner) debugf(format string, args ...any) {
	if r.verbose {
		log.Printf(format, args...)
	}
}

// RunAll scrapes every site in order and returns the deduplicated candidates.
func (r *Runner) RunAll(ctx context.Context, sites []string) []domain.JobCandidate {
	var all []domain.JobCandidate
	for i, site := range sites {
		if i > 0 {
			r.sleep(r.siteDelay)
		}
		if ctx.Err() != nil {
			break
		}

		jobs, err := r.RunSite(ctx, site)
		if err != nil {
			log.Printf("[scrape] %s: %v", site, err)
			continue
		}
		all = append(all, jobs...)
	}
	return Dedupe(all)
}

// RunSite fetches one site and runs every extraction strategy over it:
// embedded board state, JSON-LD, the page/element/anchor heuristics, and the
// link prober. Malformed HTML recovers as zero DOM candidates.
func (r *Runner) RunSite(ctx context.Context, site string) ([]domain.JobCandidate, error) {
	log.Printf("[scrape] fetching %s", site)

	body, err := r.client.FetchPage(ctx, site)
	if err != nil {
		return nil, err
	}

	var jobs []domain.JobCandidate
	if embedded := ExtractEmbedded(body, site, r.keywords); len(embedded) > 0 {
		log.Printf("[scrape] %s: %d jobs from embedded data", site, len(embedded))
		jobs = append(jobs, embedded...)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		log.Printf("[scrape] parse %s: %v", site, err)
		return jobs, nil
	}

	jobs = append(jobs, ExtractJSONLD(doc, site, r.keywords)...)
	jobs = append(jobs, ExtractPage(doc, site, r.keywords)...)
	jobs = append(jobs, r.probeLinks(ctx, doc, site)...)

	log.Printf("[scrape] %s: %d candidates", site, len(jobs))
	return jobs, nil
}
