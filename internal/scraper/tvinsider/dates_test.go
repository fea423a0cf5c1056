package tvinsider

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CalendarScraper/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveHeaderDate(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		now      time.Time
		expected string
		ok       bool
	}{
		{"full format with year", "Friday, December 15, 2024", date(2025, time.August, 10), "2024-12-15", true},
		{"month day year", "December 15, 2024", date(2025, time.August, 10), "2024-12-15", true},
		{"yearless near future", "August 21", date(2025, time.August, 10), "2025-08-21", true},
		{"yearless with weekday", "Thursday, August 21", date(2025, time.August, 10), "2025-08-21", true},
		{"yearless recent past stays", "August 1", date(2025, time.August, 10), "2025-08-01", true},
		{"yearless rollover in january", "December 31", date(2025, time.January, 5), "2025-12-31", true},
		{"yearless late past advances", "June 1", date(2025, time.August, 10), "2026-06-01", true},
		{"lowercase input", "friday, december 15, 2024", date(2025, time.August, 10), "2024-12-15", true},
		{"uppercase input", "AUGUST 21", date(2025, time.August, 10), "2025-08-21", true},
		{"surrounding whitespace", "  August 21  ", date(2025, time.August, 10), "2025-08-21", true},
		{"unparseable text", "Sometime Soon", date(2025, time.August, 10), "", false},
		{"empty header", "", date(2025, time.August, 10), "", false},
		{"leap day in leap year", "February 29", date(2024, time.February, 10), "2024-02-29", true},
		{"leap day in non-leap year", "February 29", date(2025, time.February, 10), "", false},
		{"leap day advancing into non-leap year", "February 29", date(2024, time.December, 1), "", false},
		{"leap day with explicit year", "Thursday, February 29, 2024", date(2025, time.August, 10), "2024-02-29", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := resolveHeaderDate(tc.header, tc.now)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.expected, got.Format(models.ISODate))
			}
		})
	}
}

// Concurrent scrapes resolve headers in parallel; run with -race.
func TestResolveHeaderDateConcurrent(t *testing.T) {
	now := date(2025, time.August, 10)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, ok := resolveHeaderDate("friday, december 15, 2024", now)
				assert.True(t, ok)
				assert.Equal(t, "2024-12-15", got.Format(models.ISODate))
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeRecordsDropsUnparseableHeaders(t *testing.T) {
	raw := []models.RawRecord{
		{DateHeaderText: "Monday, June 2, 2025", Name: "Show A", Channel: "Netflix"},
		{DateHeaderText: "Sometime Soon", Name: "Show B", Channel: "Hulu"},
		{DateHeaderText: "Tuesday, June 3, 2025", Name: "Show C", Channel: "NBC"},
	}

	recs := normalizeRecords(raw, date(2025, time.June, 1))

	require.Len(t, recs, 2)
	assert.Equal(t, "2025-06-02", recs[0].Date)
	assert.Equal(t, "Show A", recs[0].Name)
	assert.Equal(t, "2025-06-03", recs[1].Date)
	assert.Equal(t, "Show C", recs[1].Name)
}

func TestNormalizeRecordsCarriesAllFields(t *testing.T) {
	raw := []models.RawRecord{{
		DateHeaderText:  "June 2, 2025",
		Name:            "Show A",
		Type:            "Series Premiere",
		Description:     "A new drama.",
		Channel:         "Netflix",
		ChannelImageURL: "https://cdn.example.com/netflix.png",
		ShowImageURL:    "https://cdn.example.com/show-a.jpg",
		SourceURL:       "https://www.tvinsider.com/show/show-a/",
	}}

	recs := normalizeRecords(raw, date(2025, time.June, 1))

	require.Len(t, recs, 1)
	assert.Equal(t, models.Record{
		Date:            "2025-06-02",
		Name:            "Show A",
		Type:            "Series Premiere",
		Description:     "A new drama.",
		Channel:         "Netflix",
		ChannelImageURL: "https://cdn.example.com/netflix.png",
		ShowImageURL:    "https://cdn.example.com/show-a.jpg",
		SourceURL:       "https://www.tvinsider.com/show/show-a/",
	}, recs[0])
}
