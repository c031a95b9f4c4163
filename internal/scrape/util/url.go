package util

import (
	"net/url"
	"strings"
)

// CanonicalizeURL normalizes a URL for deduplication: scheme and host are
// lowercased, the trailing slash and fragment are stripped. The query string
// survives untouched, and "www." is kept (stripping it would conflate
// distinct hosts).
func CanonicalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

// Resolve makes href absolute against the page base URL. Fragments, mailto
// and javascript pseudo-links resolve to "".
func Resolve(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "javascript:") {
		return ""
	}

	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	h, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(h).String()
}
