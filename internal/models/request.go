package models

import (
	"time"

	"github.com/rotisserie/eris"
)

const (
	maxRangeDays  = 30
	maxFutureDays = 90
)

// ParseScrapeRequest validates a raw date window from the caller. The range
// is bounded to keep a single scrape (and the newsletter built from it)
// manageable.
func ParseScrapeRequest(startDate, endDate string) (ScrapeRequest, error) {
	start, err := time.Parse(ISODate, startDate)
	if err != nil {
		return ScrapeRequest{}, eris.New("invalid date format, use YYYY-MM-DD")
	}
	end, err := time.Parse(ISODate, endDate)
	if err != nil {
		return ScrapeRequest{}, eris.New("invalid date format, use YYYY-MM-DD")
	}

	if start.After(end) {
		return ScrapeRequest{}, eris.New("start date must be before end date")
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return ScrapeRequest{}, eris.New("date range cannot exceed 30 days")
	}
	if end.After(time.Now().AddDate(0, 0, maxFutureDays)) {
		return ScrapeRequest{}, eris.New("end date cannot be more than 90 days in the future")
	}

	return ScrapeRequest{StartDate: start, EndDate: end}, nil
}
