package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CalendarScraper/internal/app"
	"CalendarScraper/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:   "server",
		Short: "HTTP API exposing the calendar scrape pipeline",
		RunE: func(*cobra.Command, []string) error {
			application, err := app.New()
			if err != nil {
				return err
			}
			defer application.Close()

			srv := server.New(application)
			if err := srv.Start(); err != nil {
				zap.L().Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
