// ABOUTME: Extractor registry mapping each feed domain to its extraction routine
// ABOUTME: Plain-text domains share one routine parameterized by TextConfig

package extract

import (
	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

// Extractor turns parsed feed items into typed records for one domain.
type Extractor func(items []*feedxml.Item) []domain.Record

// ForDomain returns the extractor for the given feed domain, or nil for an
// unknown domain.
func ForDomain(d domain.FeedDomain) Extractor {
	switch d {
	case domain.DomainWeather:
		return Weather
	case domain.DomainAlerts:
		return Alerts
	case domain.DomainEvents:
		return Events
	case domain.DomainRealEstate:
		return Listings
	case domain.DomainReddit:
		return RedditPosts
	case domain.DomainCraigslist:
		return Classifieds
	case domain.DomainNews:
		return func(items []*feedxml.Item) []domain.Record { return Articles(items, NewsConfig) }
	case domain.DomainPolitics:
		return func(items []*feedxml.Item) []domain.Record { return Articles(items, PoliticsConfig) }
	case domain.DomainEducation:
		return func(items []*feedxml.Item) []domain.Record { return Articles(items, EducationConfig) }
	}
	return nil
}
