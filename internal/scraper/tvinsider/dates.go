package tvinsider

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"CalendarScraper/internal/models"
)

// headerFormats are tried in order; first match wins. The source page mixes
// all four, and the yearless ones rely on inference below.
var headerFormats = []struct {
	layout  string
	hasYear bool
}{
	{"Monday, January 2, 2006", true},
	{"January 2, 2006", true},
	{"Monday, January 2", false},
	{"January 2", false},
}

// resolveHeaderDate converts date-header text into a calendar date. Source
// capitalization is inconsistent, so the text is title-cased before matching.
// Yearless formats assume now's year, then advance one year when the result
// lands more than 30 days in the past: a "December 31" header scraped in
// early January means the next occurrence, not last year's tail. The
// heuristic is deliberately one-directional; it never moves a date back.
// A month/day that does not exist in the resolved year (February 29 outside
// a leap year) drops the record instead of sliding into March.
func resolveHeaderDate(text string, now time.Time) (time.Time, bool) {
	// cases.Caser carries internal transform state and is not safe for
	// concurrent use; each call gets its own.
	caser := cases.Title(language.English)

	text = caser.String(strings.TrimSpace(text))
	if text == "" {
		return time.Time{}, false
	}

	for _, f := range headerFormats {
		t, err := time.Parse(f.layout, text)
		if err != nil {
			continue
		}
		if !f.hasYear {
			month, day := t.Month(), t.Day()
			t = time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
			if t.Before(now.AddDate(0, 0, -30)) {
				t = t.AddDate(1, 0, 0)
			}
			if t.Month() != month || t.Day() != day {
				return time.Time{}, false
			}
		}
		return t, true
	}
	return time.Time{}, false
}

// normalizeRecords resolves each raw record's header into an ISO date.
// Records whose header matches no recognized format are dropped, not failed;
// one unreadable day must not sink the whole scrape.
func normalizeRecords(raw []models.RawRecord, now time.Time) []models.Record {
	out := make([]models.Record, 0, len(raw))
	for _, r := range raw {
		d, ok := resolveHeaderDate(r.DateHeaderText, now)
		if !ok {
			zap.L().Debug("dropping record with unparseable date header",
				zap.String("header", r.DateHeaderText),
				zap.String("name", r.Name),
			)
			continue
		}
		out = append(out, models.Record{
			Date:            d.Format(models.ISODate),
			Name:            r.Name,
			Type:            r.Type,
			Description:     r.Description,
			Channel:         r.Channel,
			ChannelImageURL: r.ChannelImageURL,
			ShowImageURL:    r.ShowImageURL,
			SourceURL:       r.SourceURL,
		})
	}
	return out
}
