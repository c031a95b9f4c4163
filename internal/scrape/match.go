package scrape

import "strings"

// MatchKeywords returns the subsequence of keywords (keyword-list order
// preserved) that appear as case-insensitive substrings of text. Matching is
// plain containment with no word boundaries, so "java" matches "javascript";
// that looseness is intentional.
func MatchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)

	var out []string
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		if strings.Contains(lower, k) {
			out = append(out, kw)
		}
	}
	return out
}
