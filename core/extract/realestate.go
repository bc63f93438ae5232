// ABOUTME: Real estate listing extractor: title-driven parse plus labeled-paragraph fields
// ABOUTME: Coordinates are left unset here and filled in by the geocoding enrichment phase

package extract

import (
	"regexp"
	"strings"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

// Title shape: "🏠 NEW: 123 Main St, Ann Arbor, MI 48103 - $299,900 | 4BR/2BA"
var (
	listingStatusRe  = regexp.MustCompile(`^([A-Z][A-Z ]{1,20}?):`)
	listingBedBathRe = regexp.MustCompile(`(\d+)\s*BR\s*/\s*(\d+(?:\.\d+)?)\s*BA`)
	// streetAddressRe matches a street-address-shaped run: number, street,
	// optionally through a city/state/zip tail.
	streetAddressRe = regexp.MustCompile(`\d+\s+[A-Za-z0-9 .'-]+(?:,\s*[A-Za-z .'-]+)*(?:,\s*[A-Z]{2}\s*\d{5})?`)
)

const (
	listingBodyMax      = 300
	listingDefaultEmoji = "🏠"
)

// Listings extracts real estate listing records. The title carries the
// headline fields; labeled paragraphs in the embedded HTML fill in the rest.
func Listings(items []*feedxml.Item) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			title := strings.TrimSpace(item.Title())
			if title == "" {
				return nil, false
			}

			frag := item.HTML()
			bare := stripLeadingEmoji(title)

			listing := domain.Listing{
				ID:        recordID(item, i),
				Title:     title,
				Body:      truncate(collapseText(frag), listingBodyMax),
				Emoji:     leadingEmoji(title, listingDefaultEmoji),
				Price:     firstPrice(title),
				Address:   strings.TrimSpace(streetAddressRe.FindString(bare)),
				ImageURL:  firstImage(frag),
				Link:      item.Link(),
				Published: item.Published(),
			}

			if m := listingStatusRe.FindStringSubmatch(bare); len(m) > 1 {
				listing.Status = strings.TrimSpace(m[1])
			}
			if m := listingBedBathRe.FindStringSubmatch(bare); len(m) > 2 {
				listing.Bedrooms = m[1]
				listing.Bathrooms = m[2]
			}

			// Labeled paragraphs override or supplement title-derived fields.
			if v := labelValue(frag, "Status:"); v != "" {
				listing.Status = v
			}
			if v := labelValue(frag, "Price:"); v != "" {
				listing.Price = firstPrice(v)
			}
			if v := labelValue(frag, "Bedrooms:"); v != "" {
				listing.Bedrooms = v
			}
			if v := labelValue(frag, "Bathrooms:"); v != "" {
				listing.Bathrooms = v
			}
			listing.SquareFootage = labelValue(frag, "Square Footage:")
			listing.PricePerSqFt = labelValue(frag, "Price per Sq Ft:")
			if v := labelValue(frag, "Address:"); v != "" {
				listing.Address = v
			}

			return listing, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// ListingAddresses returns the index→address map used to drive geocoding
// enrichment. Listings without an extracted address are absent.
func ListingAddresses(records []domain.Record) map[int]string {
	addresses := make(map[int]string)
	for i, rec := range records {
		listing, ok := rec.(domain.Listing)
		if !ok || listing.Address == "" {
			continue
		}
		addresses[i] = listing.Address
	}
	return addresses
}
