package models

import "time"

// ISODate is the wire format for calendar dates throughout the pipeline.
const ISODate = "2006-01-02"

// ScrapeRequest is a validated date window for a single scrape call.
// StartDate is never after EndDate; range length is checked by the caller.
type ScrapeRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// RawRecord is one listing exactly as seen on the calendar page, tagged with
// the date-header text that was in effect at its position in the document.
// Every field except Name may be empty; records with an empty Name are
// discarded at extraction time and never reach the pipeline.
type RawRecord struct {
	DateHeaderText  string
	Name            string
	Type            string
	Description     string
	Channel         string
	ChannelImageURL string
	ShowImageURL    string
	SourceURL       string
}

// Record is a RawRecord whose header text has been resolved to a calendar
// date. WatchURL and Country are filled in downstream from the channel store;
// the scraper itself leaves them empty.
type Record struct {
	Date            string `json:"date"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Description     string `json:"description"`
	Channel         string `json:"channel"`
	ChannelImageURL string `json:"channel_image"`
	ShowImageURL    string `json:"show_image"`
	SourceURL       string `json:"website"`
	WatchURL        string `json:"website_url,omitempty"`
	Country         string `json:"country,omitempty"`
}

// Channel is one row of the channel→website lookup table.
type Channel struct {
	ID      int64  `yaml:"-" json:"id"`
	Name    string `yaml:"channel" json:"channel"`
	Website string `yaml:"website" json:"website"`
	Country string `yaml:"country" json:"country"`
}
