package domain

// JobCandidate is one extracted posting. MatchedKeywords stays empty while the
// candidate is still a draft; every candidate that reaches the report has at
// least one match.
type JobCandidate struct {
	Title           string
	SourceURL       string // the configured site the candidate came from
	ApplyURL        string // absolute; empty when the element had no usable href
	MatchedKeywords []string
}
