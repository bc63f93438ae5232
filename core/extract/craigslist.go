// ABOUTME: Classifieds extractor for the craigslist feed family
// ABOUTME: Price comes from a title regex; free items are flagged instead of priced

package extract

import (
	"strings"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

const classifiedBodyMax = 200

// Classifieds extracts classifieds listing records.
func Classifieds(items []*feedxml.Item) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			title := strings.TrimSpace(item.Title())
			if title == "" {
				return nil, false
			}

			frag := item.HTML()
			price := firstPrice(title)
			free := price == domain.PriceUnlisted &&
				strings.Contains(strings.ToLower(title), "free")

			category := ""
			if cats := item.Categories(); len(cats) > 0 {
				category = cats[0]
			}
			if v := labelValue(frag, "Category:"); v != "" {
				category = v
			}

			return domain.ClassifiedItem{
				ID:        recordID(item, i),
				Title:     title,
				Body:      truncate(collapseText(frag), classifiedBodyMax),
				Price:     price,
				IsFree:    free,
				Category:  category,
				ImageURL:  firstImage(frag),
				Link:      item.Link(),
				Published: item.Published(),
			}, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}
