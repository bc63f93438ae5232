// ABOUTME: Windowing utilities for extracted record lists
// ABOUTME: Slices a fully-extracted list into pages and reports whether more remain

package feeds

import "localpulse-api/core/domain"

// Window returns the slice [page*pageSize, (page+1)*pageSize) of records and
// whether further pages remain past the window. Page numbers are zero-based.
func Window(records []domain.Record, page, pageSize int) ([]domain.Record, bool) {
	if page < 0 {
		page = 0
	}
	if pageSize < 1 {
		return []domain.Record{}, false
	}

	start := page * pageSize
	end := start + pageSize

	if start >= len(records) {
		return []domain.Record{}, false
	}
	if end > len(records) {
		end = len(records)
	}

	return records[start:end], end < len(records)
}
