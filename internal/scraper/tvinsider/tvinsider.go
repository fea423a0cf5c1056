package tvinsider

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"CalendarScraper/internal/models"
	"CalendarScraper/internal/scraper"
	"CalendarScraper/pkg/config"
	"CalendarScraper/utils"
)

// Scraper runs the TVInsider calendar pipeline: connectivity probe, browser
// session, incremental load, extraction pass, date resolution, filtering.
// A fresh instance is constructed for every request; configuration is carried
// by value and no session state survives a Scrape call.
type Scraper struct {
	cfg config.ScraperConfig
	now func() time.Time
}

var _ scraper.Scraper = (*Scraper)(nil)

// New returns a pipeline instance for a single scrape call.
func New(cfg config.ScraperConfig) *Scraper {
	return &Scraper{cfg: cfg, now: time.Now}
}

// Scrape drives the full pipeline and returns the records whose resolved date
// falls inside the inclusive [StartDate, EndDate] window. The browser session
// is torn down on every exit path.
func (s *Scraper) Scrape(ctx context.Context, req models.ScrapeRequest) ([]models.Record, error) {
	log := zap.L().With(
		zap.String("start", req.StartDate.Format(models.ISODate)),
		zap.String("end", req.EndDate.Format(models.ISODate)),
	)

	log.Info("testing network connectivity to calendar site", zap.String("url", s.cfg.BaseURL))
	if err := probe(s.cfg.BaseURL); err != nil {
		return nil, err
	}

	sess, err := newSession(s.cfg.Headless, s.cfg.BrowserPath)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	timeout := time.Duration(s.cfg.TimeoutSecs) * time.Second
	page := sess.page.Context(ctx)

	log.Info("loading calendar page")
	if err := page.Timeout(timeout).Navigate(s.cfg.BaseURL); err != nil {
		return nil, classifyNavigateErr(s.cfg.BaseURL, err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, classifyNavigateErr(s.cfg.BaseURL, err)
	}

	log.Info("scrolling to load all listings")
	if err := loadAllContent(page); err != nil {
		return nil, &scraper.PipelineError{Stage: "incremental load", Err: err}
	}

	raw, err := extractRawRecords(page, timeout)
	if err != nil {
		return nil, err
	}
	log.Info("extracted listings from page", zap.Int("count", len(raw)))

	records := normalizeRecords(raw, s.now())
	records = fixChannelTypos(records)
	records = filterDateRange(records, req.StartDate, req.EndDate)
	records = filterExcluded(records)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Channel)
	}
	log.Info("scrape finished",
		zap.Int("records", len(records)),
		zap.Strings("channels", utils.UniqueStrings(names)),
	)

	return records, nil
}

func classifyNavigateErr(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &scraper.PageTimeoutError{URL: url, Err: err}
	}
	return &scraper.PipelineError{Stage: "page load", Err: err}
}
