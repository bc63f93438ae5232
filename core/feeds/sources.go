// ABOUTME: Per-domain feed source configuration: URL, refresh interval, page size, policies
// ABOUTME: Defaults live here; URLs are overridable through pkg/config

package feeds

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"localpulse-api/core/domain"
)

// SourceConfig describes one feed source and its pipeline tuning.
type SourceConfig struct {
	// Domain is the feed family this source belongs to.
	Domain domain.FeedDomain

	// URL is the feed endpoint.
	URL string

	// MimeType is the declared type sent upstream ("text/xml" or "application/xml").
	MimeType string

	// Interval is the scheduled refresh period.
	Interval time.Duration

	// PageSize is the windowing constant for this domain.
	PageSize int

	// EmptyIsError marks domains where zero admissible items is anomalous
	// rather than a normal empty state.
	EmptyIsError bool
}

// Accept returns the Accept header for fetching this source: the declared
// mime type first, then the generic feed types as fallbacks.
func (c SourceConfig) Accept() string {
	return c.MimeType + ", application/rss+xml;q=0.9, application/atom+xml;q=0.9, */*;q=0.5"
}

// Refresh intervals: emergency alerts poll fast, everything else slow.
const (
	alertInterval   = 5 * time.Minute
	defaultInterval = 30 * time.Minute
)

// defaultPageSize is large enough to make windowing a no-op for most domains.
const defaultPageSize = 100

// DefaultSources returns the source configuration for every feed domain,
// keyed by domain. URLs are placeholders replaced from configuration at
// startup.
func DefaultSources() map[domain.FeedDomain]SourceConfig {
	sources := make(map[domain.FeedDomain]SourceConfig)
	for _, d := range domain.AllDomains() {
		cfg := SourceConfig{
			Domain:   d,
			MimeType: "text/xml",
			Interval: defaultInterval,
			PageSize: defaultPageSize,
		}
		switch d {
		case domain.DomainAlerts:
			cfg.Interval = alertInterval
			cfg.MimeType = "application/xml"
		case domain.DomainReddit:
			cfg.PageSize = 20
			cfg.EmptyIsError = true
			cfg.MimeType = "application/xml"
		}
		sources[d] = cfg
	}
	return sources
}

// ValidateSources checks that every source has a feed URL. Called at startup
// so a missing FEED_URL_* variable fails the boot instead of producing nine
// pipelines that fetch nothing.
func ValidateSources(sources map[domain.FeedDomain]SourceConfig) error {
	var missing []string
	for d, cfg := range sources {
		if strings.TrimSpace(cfg.URL) == "" {
			missing = append(missing, string(d))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("no feed URL configured for: %s", strings.Join(missing, ", "))
}
