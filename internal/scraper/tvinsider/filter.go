package tvinsider

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"CalendarScraper/internal/models"
)

// excludedKeywords disqualify a record when any of them appears,
// case-insensitively, in its combined name/type/channel text: sports leagues,
// sports-adjacent categories, and a competing streaming service the
// newsletter never covers.
var excludedKeywords = []string{
	"Sports", "VOD / Buy / Rent", "YouTube", "Fox Soccer Plus",
	"ESPN", "Gold Channel", "Baseball", "Cup", "Football", "Championship",
	"WWE", "NFL", "Tennis", "Formula 1", "NBA", "Apple TV+", "Soccer",
	"Boxing", "UFC", "MMA", "Golf", "Hockey", "Cricket", "Rugby",
}

// fixChannelTypos corrects known source-side misspellings before any
// filtering so both predicates see the clean channel name.
func fixChannelTypos(recs []models.Record) []models.Record {
	for i := range recs {
		recs[i].Channel = strings.ReplaceAll(recs[i].Channel, "Parmount+", "Paramount+")
	}
	return recs
}

// filterDateRange keeps records satisfying start <= date <= end, inclusive
// both ends. Records carrying a malformed date are dropped.
func filterDateRange(recs []models.Record, start, end time.Time) []models.Record {
	kept := make([]models.Record, 0, len(recs))
	for _, r := range recs {
		d, err := time.Parse(models.ISODate, r.Date)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// filterExcluded drops records matching the exclusion vocabulary. Order
// relative to filterDateRange does not matter; both are independent
// predicates.
func filterExcluded(recs []models.Record) []models.Record {
	kept := make([]models.Record, 0, len(recs))
	for _, r := range recs {
		if isExcluded(r) {
			zap.L().Debug("filtered out excluded content",
				zap.String("name", r.Name),
				zap.String("channel", r.Channel),
			)
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func isExcluded(r models.Record) bool {
	content := strings.ToLower(r.Name + " " + r.Type + " " + r.Channel)
	for _, kw := range excludedKeywords {
		if strings.Contains(content, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
