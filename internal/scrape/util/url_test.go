package util

import "testing"

func TestCanonicalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases scheme and host", "HTTPS://Example.COM/Jobs/1", "https://example.com/Jobs/1"},
		{"strips trailing slash", "https://example.com/jobs/1/", "https://example.com/jobs/1"},
		{"strips root slash", "https://example.com/", "https://example.com"},
		{"drops fragment", "https://example.com/jobs#apply", "https://example.com/jobs"},
		{"preserves query untouched", "https://example.com/jobs?utm_source=x&id=1", "https://example.com/jobs?utm_source=x&id=1"},
		{"keeps www", "https://www.example.com/jobs", "https://www.example.com/jobs"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"unparseable passes through", "://bad url", "://bad url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalizeURL(tt.in); got != tt.want {
				t.Errorf("CanonicalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	base := "https://example.com/careers/"

	tests := []struct {
		name string
		href string
		want string
	}{
		{"relative path", "/apply/1", "https://example.com/apply/1"},
		{"relative to dir", "apply/1", "https://example.com/careers/apply/1"},
		{"absolute", "https://other.com/jobs", "https://other.com/jobs"},
		{"fragment", "#top", ""},
		{"mailto", "mailto:jobs@example.com", ""},
		{"javascript", "javascript:void(0)", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(base, tt.href); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", base, tt.href, got, tt.want)
			}
		})
	}
}
