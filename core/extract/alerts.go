// ABOUTME: Emergency alert extractor with severity and area labels
// ABOUTME: Admission requires a non-empty headline

package extract

import (
	"strings"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

const alertBodyMax = 400

// severityPrefixes are recognized leading severity markers in alert titles.
var severityPrefixes = []string{"EXTREME", "SEVERE", "MODERATE", "MINOR"}

// Alerts extracts emergency alert records.
func Alerts(items []*feedxml.Item) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			headline := strings.TrimSpace(item.Title())
			if headline == "" {
				return nil, false
			}

			frag := item.HTML()

			alert := domain.EmergencyAlert{
				ID:        recordID(item, i),
				Headline:  headline,
				Body:      truncate(collapseText(frag), alertBodyMax),
				Severity:  labelValue(frag, "Severity:"),
				Area:      labelValue(frag, "Area:"),
				Effective: labelValue(frag, "Effective:"),
				Expires:   labelValue(frag, "Expires:"),
				Published: item.Published(),
				Link:      item.Link(),
			}

			if alert.Severity == "" {
				alert.Severity = titleSeverity(headline)
			}

			return alert, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// titleSeverity picks a severity out of the headline when the feed does not
// label it explicitly.
func titleSeverity(headline string) string {
	upper := strings.ToUpper(headline)
	for _, s := range severityPrefixes {
		if strings.Contains(upper, s) {
			return s[:1] + strings.ToLower(s[1:])
		}
	}
	return ""
}
