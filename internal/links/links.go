// Package links normalizes channel names and watch-now URLs for scraped
// records before they reach newsletter assembly.
package links

import (
	"strings"

	"CalendarScraper/utils"
)

// domainOverrides maps domains as they appear in scraped source URLs onto the
// canonical watch-now host for that service.
var domainOverrides = map[string]string{
	"hbomax.com":      "max.com",
	"disneyplus.com":  "disneyplus.com",
	"netflix.com":     "netflix.com",
	"hulu.com":        "hulu.com",
	"primevideo.com":  "primevideo.com",
	"peacocktv.com":   "peacocktv.com",
	"paramountplus.com": "paramountplus.com",
	"tv.apple.com":    "tv.apple.com",
	"plus.espn.com":   "plus.espn.com",
	"servustv.com":    "servustv.com",
}

// channelNames maps slugged channel names onto their display form.
var channelNames = map[string]string{
	"hbo-max":        "HBO Max",
	"disney-plus":    "Disney+",
	"disney":         "Disney",
	"netflix":        "Netflix",
	"hulu":           "Hulu",
	"amazon-prime":   "Prime Video",
	"prime-video":    "Prime Video",
	"peacock":        "Peacock",
	"paramount-plus": "Paramount+",
	"paramount":      "Paramount",
	"apple-tv":       "Apple TV",
	"espn":           "ESPN",
	"espn-plus":      "ESPN+",
	"showtime":       "Showtime",
	"starz":          "Starz",
	"amc":            "AMC",
	"amc-plus":       "AMC+",
	"discovery":      "Discovery",
	"discovery-plus": "Discovery+",
	"servustv":       "ServusTV",
	"bbc":            "BBC",
	"fox":            "FOX",
	"nbc":            "NBC",
	"abc":            "ABC",
	"cbs":            "CBS",
}

// NormalizeWatchURL reduces a scraped source URL to a clean https:// link to
// the service's front door: scheme and www stripped, path and query dropped,
// known streaming domains mapped to their canonical hosts. An empty input
// yields "#" so templates always have a target.
func NormalizeWatchURL(raw string) string {
	if raw == "" {
		return "#"
	}

	clean := strings.TrimPrefix(raw, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	clean = strings.TrimPrefix(clean, "www.")
	clean = strings.SplitN(clean, "/", 2)[0]
	clean = strings.SplitN(clean, "?", 2)[0]

	for pattern, replacement := range domainOverrides {
		if strings.Contains(clean, pattern) {
			return "https://" + replacement
		}
	}

	return "https://" + clean
}

// EnsureHTTPS prefixes a bare domain from the channel store with https://.
func EnsureHTTPS(website string) string {
	if strings.HasPrefix(website, "http://") || strings.HasPrefix(website, "https://") {
		return website
	}
	return "https://" + website
}

// NormalizeChannelName maps a scraped channel name onto its consistent
// display form, falling back to the original text for unknown channels.
func NormalizeChannelName(channel string) string {
	if channel == "" {
		return "unknown"
	}
	if display, ok := channelNames[utils.Slugify(channel)]; ok {
		return display
	}
	return channel
}
