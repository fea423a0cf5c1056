package scraper

import (
	"context"

	"CalendarScraper/internal/models"
)

// Scraper is the behavior every calendar-source scraper implements.
// Implementations own the full pipeline for one source: connectivity check,
// browser session, incremental load, extraction, date resolution, filtering.
type Scraper interface {
	// Scrape returns the normalized records whose resolved date falls inside
	// the inclusive [start, end] window. A fresh browser session is acquired
	// per call and always torn down before Scrape returns.
	Scrape(ctx context.Context, req models.ScrapeRequest) ([]models.Record, error)
}
