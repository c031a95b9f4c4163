package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobscout/internal/config"
)

var websitesCmd = &cobra.Command{
	Use:   "websites",
	Short: "Manage the list of career pages to scrape",
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Manage the keyword list postings are matched against",
}

func init() {
	websitesCmd.AddCommand(
		addCmd("website", (*app).websitesPath, config.WebsitesHeader),
		removeCmd("website", (*app).websitesPath, config.WebsitesHeader),
		listCmd("websites", (*app).websitesPath),
	)
	keywordsCmd.AddCommand(
		addCmd("keyword", (*app).keywordsPath, config.KeywordsHeader),
		removeCmd("keyword", (*app).keywordsPath, config.KeywordsHeader),
		listCmd("keywords", (*app).keywordsPath),
	)
}

func addCmd(noun string, path func(*app) string, header string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <" + noun + ">",
		Short: "Add a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			added, err := config.AddEntry(path(a), header, args[0])
			if err != nil {
				return err
			}
			if !added {
				fmt.Printf("%s already exists: %s\n", noun, args[0])
				return nil
			}
			fmt.Printf("Added %s: %s\n", noun, args[0])
			return nil
		},
	}
}

func removeCmd(noun string, path func(*app) string, header string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <" + noun + ">",
		Short: "Remove a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			removed, err := config.RemoveEntry(path(a), header, args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("%s not found: %s\n", noun, args[0])
				return nil
			}
			fmt.Printf("Removed %s: %s\n", noun, args[0])
			return nil
		},
	}
}

func listCmd(noun string, path func(*app) string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured " + noun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			entries, err := config.LoadList(path(a))
			if err != nil {
				return err
			}
			fmt.Printf("\nConfigured %s:\n", noun)
			if len(entries) == 0 {
				fmt.Printf("No %s configured.\n", noun)
				return nil
			}
			for i, e := range entries {
				fmt.Printf("%d. %s\n", i+1, e)
			}
			fmt.Println()
			return nil
		},
	}
}
