package util

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"non breaking space", "non breaking space"},
		{"line\nbreaks\tand\ttabs", "line breaks and tabs"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanTextNormalizesNFC(t *testing.T) {
	// "é" as combining sequence should collapse to the precomposed form.
	decomposed := "ingénieur"
	if got := CleanText("ingénieur"); got != decomposed {
		t.Errorf("CleanText = %q, want %q", got, decomposed)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"this is a long string", 10, "this is..."},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestTruncateMultibyte(t *testing.T) {
	got := Truncate("こんにちは世界です", 5)
	if got != "こん..." {
		t.Errorf("Truncate = %q, want %q", got, "こん...")
	}
}
