package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"jobscout/internal/config"
	"jobscout/internal/poll"
	"jobscout/internal/report"
	"jobscout/internal/scrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run the scraper once and write a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		return a.withRunLock(func() error {
			count, path, err := a.scrapeOnce(cmd.Context(), flagOutput)
			if err != nil {
				return err
			}
			fmt.Printf("Scraping complete! Found %d jobs.\n", count)
			fmt.Printf("Results saved to: %s\n", path)
			return nil
		})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the scraper on an interval until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		return a.withRunLock(func() error {
			poll.Watch(cmd.Context(), flagInterval, func(ctx context.Context) error {
				// Each run writes its own timestamped report.
				count, path, err := a.scrapeOnce(ctx, "")
				if err != nil {
					return err
				}
				fmt.Printf("Found %d jobs, saved to %s\n", count, path)
				return nil
			})
			return nil
		})
	},
}

// withRunLock guards a scrape with a file lock so two invocations sharing a
// data dir can't interleave config and report writes.
func (a *app) withRunLock(fn func() error) error {
	lock := flock.New(filepath.Join(a.dataDir, "jobscout.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another jobscout run is already active in %s", a.dataDir)
	}
	defer lock.Unlock()

	return fn()
}

func (a *app) scrapeOnce(ctx context.Context, output string) (int, string, error) {
	sites, err := config.LoadList(a.websitesPath())
	if err != nil {
		return 0, "", fmt.Errorf("load websites: %w", err)
	}
	keywords, err := config.LoadKeywords(a.keywordsPath())
	if err != nil {
		return 0, "", fmt.Errorf("load keywords: %w", err)
	}

	runner := scrape.NewRunner(a.settings, keywords, flagVerbose)
	runner.SetMaxLinks(flagMaxLinks)

	jobs := runner.RunAll(ctx, sites)

	now := time.Now()
	path := output
	if path == "" {
		path = report.DefaultPath(filepath.Join(a.dataDir, a.settings.Output.ResultsDir), now)
	}
	count, err := report.Write(path, jobs, now)
	if err != nil {
		return 0, "", err
	}
	return count, path, nil
}
