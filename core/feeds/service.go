// ABOUTME: Per-domain feed pipeline service: fetch, sanitize, parse, extract, window, publish
// ABOUTME: Owns the domain's record list exclusively; page requests are serialized by an in-flight flag

package feeds

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"localpulse-api/core/domain"
	coreerrors "localpulse-api/core/errors"
	"localpulse-api/core/extract"
	"localpulse-api/core/feedxml"
	"localpulse-api/core/interfaces"
	"localpulse-api/core/sanitize"
)

// Service runs the fetch→sanitize→parse→extract→window pipeline for one feed
// domain and publishes the resulting record list with its status triple.
type Service struct {
	cfg       SourceConfig
	deps      interfaces.Dependencies
	extractor extract.Extractor
	geocoder  interfaces.Geocoder // nil for every domain except real estate

	mu       sync.Mutex
	records  []domain.Record
	status   domain.FeedStatus
	inFlight bool
	now      func() time.Time
}

// NewService creates a pipeline service for one source. The geocoder may be
// nil; it is only consulted for the real estate domain.
func NewService(cfg SourceConfig, deps interfaces.Dependencies, geocoder interfaces.Geocoder) *Service {
	return &Service{
		cfg:       cfg,
		deps:      deps,
		extractor: extract.ForDomain(cfg.Domain),
		geocoder:  geocoder,
		records:   []domain.Record{},
		now:       time.Now,
	}
}

// Domain returns the feed domain this service owns.
func (s *Service) Domain() domain.FeedDomain { return s.cfg.Domain }

// Interval returns the scheduled refresh period for this source.
func (s *Service) Interval() time.Duration { return s.cfg.Interval }

// PageSize returns the window size used for paging this source.
func (s *Service) PageSize() int { return s.cfg.PageSize }

// Snapshot returns the currently published records and status.
func (s *Service) Snapshot() ([]domain.Record, domain.FeedStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, s.status
}

// Refresh re-runs the pipeline from fetch with page-0 (replacement)
// semantics. A failure leaves the previously published records in place and
// sets the status error.
func (s *Service) Refresh(ctx context.Context) error {
	return s.RequestPage(ctx, 0)
}

// RequestPage runs the pipeline and publishes the requested window. Page 0
// replaces the published list; later pages append. A request arriving while
// another is in flight is dropped, not queued. For the real estate domain,
// coordinate enrichment continues in the background after the page is
// published.
func (s *Service) RequestPage(ctx context.Context, page int) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.status.Loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.status.Loading = false
		s.mu.Unlock()
	}()

	all, err := s.fetchAll(ctx)
	if err != nil {
		s.mu.Lock()
		s.status.Error = err.Error()
		s.mu.Unlock()
		if s.deps.Logger != nil {
			s.deps.Logger.Error("feed pipeline failed", map[string]interface{}{
				"domain": string(s.cfg.Domain),
				"error":  err.Error(),
			})
		}
		return err
	}

	window, hasMore := Window(all, page, s.cfg.PageSize)

	s.mu.Lock()
	if page == 0 {
		s.records = window
	} else {
		s.records = append(s.records, window...)
	}
	s.status.Error = ""
	s.status.HasMore = hasMore
	published := len(s.records)
	s.mu.Unlock()

	if s.deps.Logger != nil {
		s.deps.Logger.Info("feed refreshed", map[string]interface{}{
			"domain":    string(s.cfg.Domain),
			"page":      page,
			"extracted": len(all),
			"published": published,
		})
	}

	if s.cfg.Domain == domain.DomainRealEstate && s.geocoder != nil {
		// Enrichment runs detached: the page is already published and the
		// caller must not wait out the geocoder's batch pacing.
		go s.enrichCoordinates(context.WithoutCancel(ctx))
	}

	return nil
}

// fetchAll runs fetch→sanitize→parse→extract→sort and returns the fully
// extracted record list.
func (s *Service) fetchAll(ctx context.Context) ([]domain.Record, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("no extractor for domain %s", s.cfg.Domain)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, cacheBust(s.cfg.URL, s.now()), s.cfg.Accept())
	if err != nil {
		return nil, &coreerrors.TransportError{Domain: string(s.cfg.Domain), URL: s.cfg.URL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.TransportError{
			Domain:     string(s.cfg.Domain),
			URL:        s.cfg.URL,
			StatusCode: resp.StatusCode(),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.TransportError{Domain: string(s.cfg.Domain), URL: s.cfg.URL, Err: err}
	}

	doc, err := feedxml.Parse(sanitize.FeedText(string(body)))
	if err != nil {
		return nil, &coreerrors.FormatError{Domain: string(s.cfg.Domain), Err: err}
	}

	records := s.extractor(doc.Items())

	if s.cfg.Domain == domain.DomainEvents {
		extract.SortEvents(records, s.now())
	}

	if len(records) == 0 && s.cfg.EmptyIsError {
		return nil, &coreerrors.EmptyFeedError{Domain: string(s.cfg.Domain)}
	}

	return records, nil
}

// enrichCoordinates runs the geocoding phase: a sparse index to coordinates
// patch set computed from the published listings, applied under the lock.
// Published records are replaced, never mutated in place. It runs after the
// page request has returned; the patch application tolerates the list having
// been replaced or shrunk in the meantime.
func (s *Service) enrichCoordinates(ctx context.Context) {
	s.mu.Lock()
	snapshot := make([]domain.Record, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	addresses := extract.ListingAddresses(snapshot)
	if len(addresses) == 0 {
		return
	}

	patch := s.geocoder.LookupBatch(ctx, addresses)
	if len(patch) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, coords := range patch {
		if i >= len(s.records) {
			continue
		}
		listing, ok := s.records[i].(domain.Listing)
		if !ok {
			continue
		}
		listing.Coordinates = coords
		s.records[i] = listing
	}
}

// cacheBust appends a cache-busting query parameter to the feed URL.
func cacheBust(feedURL string, now time.Time) string {
	sep := "?"
	if strings.Contains(feedURL, "?") {
		sep = "&"
	}
	return feedURL + sep + "_=" + strconv.FormatInt(now.UnixNano(), 10)
}
