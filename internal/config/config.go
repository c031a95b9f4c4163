package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Settings struct {
	HTTP struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"http"`

	Scrape struct {
		SiteDelaySeconds int     `yaml:"site_delay_seconds"`
		ProbeDelayMillis int     `yaml:"probe_delay_ms"`
		MaxLinksPerSite  int     `yaml:"max_links_per_site"`
		HostRatePerSec   float64 `yaml:"host_rate_per_sec"`
		HostBurst        int     `yaml:"host_burst"`
	} `yaml:"scrape"`

	Output struct {
		ResultsDir string `yaml:"results_dir"`
		LogFile    string `yaml:"log_file"`
	} `yaml:"output"`
}

func Default() Settings {
	var s Settings
	s.HTTP.TimeoutSeconds = 10
	s.HTTP.UserAgent = defaultUserAgent
	s.Scrape.SiteDelaySeconds = 1
	s.Scrape.ProbeDelayMillis = 500
	s.Scrape.MaxLinksPerSite = 10
	s.Scrape.HostRatePerSec = 2
	s.Scrape.HostBurst = 1
	s.Output.ResultsDir = "job_results"
	s.Output.LogFile = "jobscout.log"
	return s
}

func Load(path string) (Settings, error) {
	var s Settings
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	err = yaml.Unmarshal(b, &s)
	return s, err
}

func (s Settings) Timeout() time.Duration {
	if s.HTTP.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.HTTP.TimeoutSeconds) * time.Second
}

func (s Settings) SiteDelay() time.Duration {
	if s.Scrape.SiteDelaySeconds < 0 {
		return 0
	}
	return time.Duration(s.Scrape.SiteDelaySeconds) * time.Second
}

func (s Settings) ProbeDelay() time.Duration {
	if s.Scrape.ProbeDelayMillis < 0 {
		return 0
	}
	return time.Duration(s.Scrape.ProbeDelayMillis) * time.Millisecond
}
