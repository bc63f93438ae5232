// ABOUTME: Event extractor: marker-emoji headings, labeled venue fields and a derived sort date
// ABOUTME: Admission requires a non-empty image URL; events without a parseable date sort last

package extract

import (
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

const (
	eventBodyMax      = 250
	eventDefaultEmoji = "🎟️"
)

// Events extracts event records from the events feed. Items without an image
// URL are skipped per the admission rule.
func Events(items []*feedxml.Item) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			frag := item.HTML()

			image := firstImage(frag)
			if image == "" {
				return nil, false
			}

			title := strings.TrimSpace(item.Title())
			if title == "" {
				title = headingText(frag)
			}

			event := domain.Event{
				ID:         recordID(item, i),
				Title:      title,
				Body:       truncate(collapseText(frag), eventBodyMax),
				Venue:      labelValue(frag, "Venue:"),
				Location:   labelValue(frag, "Location:"),
				Address:    labelValue(frag, "Address:"),
				Category:   labelValue(frag, "Category:"),
				Genre:      labelValue(frag, "Genre:"),
				PriceRange: labelValue(frag, "Price Range:"),
				Emoji:      leadingEmoji(title, eventDefaultEmoji),
				ImageURL:   image,
				Link:       item.Link(),
				Published:  item.Published(),
			}

			dateText := labelValue(frag, "Date:")
			if dateText == "" {
				dateText = item.Published()
			}
			if t, err := dateparse.ParseAny(dateText); err == nil {
				event.SortDate = t
				event.DateKnown = true
			}

			return event, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// headingText returns the text of the first heading in the fragment, used as
// a title fallback for feeds that bury the event name in the body.
func headingText(frag *goquery.Document) string {
	if frag == nil {
		return ""
	}
	return strings.TrimSpace(frag.Find("h1, h2, h3").First().Text())
}

// SortEvents orders events so those on the given calendar day come first,
// then the rest ascending by date. Events whose date could not be parsed sort
// after every dated event, preserving their relative input order.
func SortEvents(records []domain.Record, today time.Time) {
	y, m, d := today.Date()

	rank := func(rec domain.Record) int {
		ev, ok := rec.(domain.Event)
		if !ok || !ev.DateKnown {
			return 2
		}
		ey, em, ed := ev.SortDate.Date()
		if ey == y && em == m && ed == d {
			return 0
		}
		return 1
	}

	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := rank(records[i]), rank(records[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 2 {
			return false // undated events keep input order
		}
		ei := records[i].(domain.Event)
		ej := records[j].(domain.Event)
		return ei.SortDate.Before(ej.SortDate)
	})
}
