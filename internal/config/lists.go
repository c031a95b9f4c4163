package config

import (
	"fmt"
	"os"
	"strings"
)

// Flat text lists: one entry per line, blank lines and #-comments ignored.
// Entry order is preserved across load/save round-trips.

const (
	WebsitesHeader = "# Add websites to scrape, one per line"
	KeywordsHeader = "# Add job keywords to search for, one per line"
)

func LoadList(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// LoadKeywords lowercases entries on load; matching is case-insensitive and
// the keyword file is the canonical lowercase form.
func LoadKeywords(path string) ([]string, error) {
	entries, err := LoadList(path)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		entries[i] = strings.ToLower(e)
	}
	return entries, nil
}

func SaveList(path, header string, entries []string) error {
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, e := range entries {
		b.WriteString(e + "\n")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// AddEntry appends entry to the list at path, creating the file if needed.
// Returns false if the entry was already present.
func AddEntry(path, header, entry string) (bool, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return false, fmt.Errorf("empty entry")
	}

	entries, err := LoadList(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	for _, e := range entries {
		if e == entry {
			return false, nil
		}
	}
	return true, SaveList(path, header, append(entries, entry))
}

// RemoveEntry deletes entry from the list at path. Returns false if the entry
// was not present.
func RemoveEntry(path, header, entry string) (bool, error) {
	entries, err := LoadList(path)
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e == entry {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return false, nil
	}
	return true, SaveList(path, header, kept)
}
