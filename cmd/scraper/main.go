package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CalendarScraper/internal/app"
)

func main() {
	var startDate, endDate string

	root := &cobra.Command{
		Use:   "scraper",
		Short: "TV calendar scraping pipeline",
	}

	scrapeCmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape the calendar for a date window and print records as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.New()
			if err != nil {
				return err
			}
			defer application.Close()

			records, err := application.RunScrape(cmd.Context(), startDate, endDate)
			if err != nil {
				zap.L().Error("scrape failed", zap.Error(err))
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}
	scrapeCmd.Flags().StringVar(&startDate, "start", "", "window start date (YYYY-MM-DD)")
	scrapeCmd.Flags().StringVar(&endDate, "end", "", "window end date (YYYY-MM-DD)")
	_ = scrapeCmd.MarkFlagRequired("start")
	_ = scrapeCmd.MarkFlagRequired("end")

	root.AddCommand(scrapeCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
