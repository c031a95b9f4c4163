package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"jobscout/internal/config"
)

var version = "dev"

var (
	flagOutput   string
	flagMaxLinks int
	flagVerbose  bool
	flagInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Personal job-listing scraper",
	Long: "jobscout fetches configured career pages, extracts candidate job postings,\n" +
		"filters them against your keyword list and writes timestamped text reports.",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	scrapeCmd.Flags().StringVar(&flagOutput, "output", "", "output file for results (default: timestamped file in results dir)")
	scrapeCmd.Flags().IntVar(&flagMaxLinks, "max-links", 0, "max links to probe per site (overrides settings)")
	watchCmd.Flags().DurationVar(&flagInterval, "interval", 30*time.Minute, "time between scrape runs")
	watchCmd.Flags().IntVar(&flagMaxLinks, "max-links", 0, "max links to probe per site (overrides settings)")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(websitesCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jobscout %s\n", version)
	},
}

// app holds everything a command needs once the data dir is resolved and the
// settings are loaded.
type app struct {
	dataDir  string
	settings config.Settings
	logFile  *os.File
}

func dataDir() string {
	if d := os.Getenv("JOBSCOUT_DATA_DIR"); d != "" {
		return d
	}
	return "."
}

func bootstrap() (*app, error) {
	dir := dataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	path, err := config.EnsureSettings(dir)
	if err != nil {
		return nil, fmt.Errorf("settings bootstrap: %w", err)
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("settings load (%s): %w", path, err)
	}
	if err := config.Validate(settings); err != nil {
		return nil, err
	}

	a := &app{dataDir: dir, settings: settings}

	// Log lines go to the console and the log file, like the report a run
	// leaves behind.
	logPath := filepath.Join(dir, settings.Output.LogFile)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[init] cannot open log file %s: %v", logPath, err)
	} else {
		a.logFile = f
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	return a, nil
}

func (a *app) close() {
	if a.logFile != nil {
		log.SetOutput(os.Stderr)
		_ = a.logFile.Close()
	}
}

func (a *app) websitesPath() string { return filepath.Join(a.dataDir, "websites.txt") }
func (a *app) keywordsPath() string { return filepath.Join(a.dataDir, "keywords.txt") }
