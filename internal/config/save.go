package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func Validate(s Settings) error {
	var errs []string

	if s.HTTP.TimeoutSeconds <= 0 {
		errs = append(errs, "http.timeout_seconds must be > 0")
	}
	if s.HTTP.UserAgent == "" {
		errs = append(errs, "http.user_agent is required")
	}
	if s.Scrape.SiteDelaySeconds < 0 {
		errs = append(errs, "scrape.site_delay_seconds must be >= 0")
	}
	if s.Scrape.MaxLinksPerSite < 0 {
		errs = append(errs, "scrape.max_links_per_site must be >= 0")
	}
	if s.Scrape.HostRatePerSec <= 0 {
		errs = append(errs, "scrape.host_rate_per_sec must be > 0")
	}
	if s.Output.ResultsDir == "" {
		errs = append(errs, "output.results_dir is required")
	}

	if len(errs) > 0 {
		return errors.New("settings validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func SaveAtomic(path string, s Settings) error {
	if err := Validate(s); err != nil {
		return err
	}

	b, err := yaml.Marshal(&s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
