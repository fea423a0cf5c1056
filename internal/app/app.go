package app

import (
	"context"

	"go.uber.org/zap"

	"CalendarScraper/internal/database"
	"CalendarScraper/internal/links"
	"CalendarScraper/internal/models"
	"CalendarScraper/internal/scraper"
	"CalendarScraper/internal/scraper/tvinsider"
	"CalendarScraper/pkg/config"
)

// App holds the dependencies shared by the CLI and the HTTP server.
type App struct {
	Config *config.Config
	Repo   *database.ChannelRepository
}

// New loads configuration, initializes logging, and opens the channel store.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		return nil, err
	}

	repo, err := database.InitDB(cfg.Channels.DBPath)
	if err != nil {
		return nil, err
	}
	if err := repo.SeedFromYAML(cfg.Channels.SeedPath); err != nil {
		repo.Close()
		return nil, err
	}

	return &App{Config: cfg, Repo: repo}, nil
}

// Close releases shared resources.
func (a *App) Close() {
	a.Repo.Close()
}

// NewScraper constructs a fresh pipeline instance. One per request; each call
// owns its own browser session and nothing is shared between them.
func (a *App) NewScraper() scraper.Scraper {
	return tvinsider.New(a.Config.Scraper)
}

// RunScrape validates the window, runs a fresh pipeline, and decorates the
// results with watch-now links.
func (a *App) RunScrape(ctx context.Context, startDate, endDate string) ([]models.Record, error) {
	req, err := models.ParseScrapeRequest(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := a.NewScraper().Scrape(ctx, req)
	if err != nil {
		return nil, err
	}

	return a.Decorate(records), nil
}

// Decorate fills WatchURL and Country on every record. A channel-store hit
// wins; the normalized source URL is the fallback.
func (a *App) Decorate(records []models.Record) []models.Record {
	for i := range records {
		r := &records[i]
		r.Channel = links.NormalizeChannelName(r.Channel)
		if website, ok := a.Repo.Lookup(r.Channel); ok {
			r.WatchURL = links.EnsureHTTPS(website)
		} else {
			r.WatchURL = links.NormalizeWatchURL(r.SourceURL)
			zap.L().Debug("channel not in store, using normalized source URL",
				zap.String("channel", r.Channel))
		}
		if r.Country == "" {
			r.Country = "US"
		}
	}
	return records
}
