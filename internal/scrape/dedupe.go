package scrape

import (
	"jobscout/internal/domain"
	"jobscout/internal/scrape/util"
)

// Dedupe collapses candidates sharing an identity key, keeping the first
// occurrence in processing order. Matched keywords are never merged across
// duplicates. Running it on its own output is a no-op.
func Dedupe(in []domain.JobCandidate) []domain.JobCandidate {
	seen := map[string]bool{}
	out := make([]domain.JobCandidate, 0, len(in))
	for _, j := range in {
		k := identityKey(j)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, j)
	}
	return out
}

// identityKey is the canonical apply URL, or (title, source) when the
// candidate carried no link.
func identityKey(j domain.JobCandidate) string {
	if u := util.CanonicalizeURL(j.ApplyURL); u != "" {
		return "url\x00" + u
	}
	return "title\x00" + j.Title + "\x00" + j.SourceURL
}
