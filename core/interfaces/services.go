// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for enrichment services used by the feed pipelines

package interfaces

import (
	"context"

	"localpulse-api/core/domain"
)

// Geocoder resolves free-text addresses to approximate coordinates.
// Implementations batch lookups to respect third-party rate limits.
type Geocoder interface {
	// LookupBatch resolves a set of addresses keyed by caller-chosen index.
	// The returned patch set contains an entry only for addresses that
	// resolved; failed lookups are silently absent.
	LookupBatch(ctx context.Context, addresses map[int]string) map[int]domain.Coordinates
}

// ReaderService extracts readable article content from web pages.
type ReaderService interface {
	ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView
}
