package tvinsider

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"CalendarScraper/internal/models"
	"CalendarScraper/internal/scraper"
	"CalendarScraper/utils"
)

// contentSelector is the single known container holding date headers and
// listings interleaved in document order.
const contentSelector = "main section"

// extractRawRecords grabs the rendered content container and runs the single
// extraction pass over it. One atomic pass: the live page is not re-queried.
func extractRawRecords(page *rod.Page, timeout time.Duration) ([]models.RawRecord, error) {
	el, err := page.Timeout(timeout).Element(contentSelector)
	if err != nil {
		return nil, &scraper.ExtractionError{Err: err}
	}
	html, err := el.HTML()
	if err != nil {
		return nil, &scraper.ExtractionError{Err: err}
	}

	records, err := parseListings(html)
	if err != nil {
		return nil, &scraper.ExtractionError{Err: err}
	}
	return records, nil
}

// parseListings walks the container's children in document order, tracking
// the current date header. Every h6 updates the header; every anchor under a
// header becomes a raw record, provided it has a name. Listings seen before
// the first header have no day to belong to and are skipped.
func parseListings(html string) ([]models.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var records []models.RawRecord
	currentHeader := ""

	doc.Find("section").First().Children().Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h6":
			currentHeader = strings.TrimSpace(sel.Text())
		case "a":
			if currentHeader == "" {
				return
			}
			rec := parseListing(sel, currentHeader)
			if rec.Name == "" {
				return
			}
			records = append(records, rec)
		}
	})

	return records, nil
}

// parseListing extracts one listing's fields by structural position: first
// heading is the title, sub-heading the type, paragraph the description,
// first image the channel logo, second the artwork, the anchor target the
// source URL. A missing field never fails; it defaults to the empty string.
func parseListing(sel *goquery.Selection, header string) models.RawRecord {
	rec := models.RawRecord{DateHeaderText: header}

	rec.Name = strings.TrimSpace(sel.Find("div h3").First().Text())
	rec.Type = strings.TrimSpace(sel.Find("div h5").First().Text())

	if desc, err := sel.Find("div p").First().Html(); err == nil {
		rec.Description = utils.StripTags(desc)
	}

	imgs := sel.Find("img")
	if first := imgs.Eq(0); first.Length() > 0 {
		rec.Channel = first.AttrOr("alt", "")
		rec.ChannelImageURL = first.AttrOr("src", "")
	}
	if second := imgs.Eq(1); second.Length() > 0 {
		rec.ShowImageURL = second.AttrOr("src", "")
	}

	rec.SourceURL = sel.AttrOr("href", "")
	return rec
}
