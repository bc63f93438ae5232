// ABOUTME: Weather report extractor over labeled paragraphs in the embedded HTML
// ABOUTME: Unrecognized labels are ignored; missing fields stay empty

package extract

import (
	"strings"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

const (
	weatherBodyMax      = 200
	weatherDefaultEmoji = "🌤️"
)

// Weather extracts weather report records.
func Weather(items []*feedxml.Item) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			title := strings.TrimSpace(item.Title())
			if title == "" {
				return nil, false
			}

			frag := item.HTML()

			return domain.WeatherReport{
				ID:          recordID(item, i),
				Title:       title,
				Summary:     truncate(collapseText(frag), weatherBodyMax),
				Temperature: labelValue(frag, "Temperature:"),
				Conditions:  labelValue(frag, "Conditions:"),
				High:        labelValue(frag, "High:"),
				Low:         labelValue(frag, "Low:"),
				Wind:        labelValue(frag, "Wind:"),
				Humidity:    labelValue(frag, "Humidity:"),
				Emoji:       leadingEmoji(title, weatherDefaultEmoji),
				Published:   item.Published(),
				Link:        item.Link(),
			}, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}
