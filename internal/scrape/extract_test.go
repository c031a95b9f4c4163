package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/domain"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func findByApplyURL(jobs []domain.JobCandidate, url string) *domain.JobCandidate {
	for i := range jobs {
		if jobs[i].ApplyURL == url {
			return &jobs[i]
		}
	}
	return nil
}

func TestExtractPageAnchorStrategy(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<a class="job-listing" href="/apply/1">Python Developer</a>
	</body></html>`)

	jobs := ExtractPage(doc, "https://example.com/careers", []string{"python"})

	require.Len(t, jobs, 1)
	assert.Equal(t, "Python Developer", jobs[0].Title)
	assert.Equal(t, "https://example.com/apply/1", jobs[0].ApplyURL)
	assert.Equal(t, "https://example.com/careers", jobs[0].SourceURL)
	assert.Equal(t, []string{"python"}, jobs[0].MatchedKeywords)
}

func TestExtractPageElementStrategy(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<div class="job-post">
			<h3>Go Platform Engineer</h3>
			<p>Requirements: Go, Kubernetes. 3 years of experience. Apply now.</p>
			<a href="https://acme.com/jobs/77">Details</a>
		</div>
	</body></html>`)

	jobs := ExtractPage(doc, "https://acme.com/careers", []string{"go"})

	job := findByApplyURL(jobs, "https://acme.com/jobs/77")
	require.NotNil(t, job, "expected an element candidate linking to the posting")
	assert.Equal(t, "Go Platform Engineer", job.Title)
	assert.Equal(t, []string{"go"}, job.MatchedKeywords)
}

func TestExtractPageSkipsWhitespaceOnlyElements(t *testing.T) {
	doc := mustDoc(t, `<div class="job-listing">   </div><a class="position" href="/x">  </a>`)
	jobs := ExtractPage(doc, "https://a.com", []string{"python"})
	assert.Empty(t, jobs)
}

func TestExtractPageKeepsURLLessCandidates(t *testing.T) {
	doc := mustDoc(t, `<div class="opening">
		Python Engineer role on our team. Requirements: Python. Apply now.
	</div>`)
	jobs := ExtractPage(doc, "https://a.com/careers", []string{"python"})

	job := findByApplyURL(jobs, "")
	require.NotNil(t, job, "element without href must still be kept, title-only")
	assert.Contains(t, job.Title, "Python Engineer role")
	assert.Equal(t, []string{"python"}, job.MatchedKeywords)
}

func TestExtractPageTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("python ", 100)
	doc := mustDoc(t, `<a href="/careers/apply">`+long+`</a>`)
	jobs := ExtractPage(doc, "https://a.com", []string{"python"})

	require.NotEmpty(t, jobs)
	assert.LessOrEqual(t, len([]rune(jobs[0].Title)), 200)
}

func TestExtractPageDoesNotDuplicateOverlappingSelectors(t *testing.T) {
	// Matches .job-listing and [class*="job"]; the node must be processed once.
	doc := mustDoc(t, `<div class="job-listing">
		Python Engineer. Responsibilities: builds. Requirements: Python. Apply now.
	</div>`)
	jobs := ExtractPage(doc, "https://a.com/careers", []string{"python"})

	elementCandidates := 0
	for _, j := range jobs {
		if j.ApplyURL == "" {
			elementCandidates++
		}
	}
	assert.Equal(t, 1, elementCandidates)
}
