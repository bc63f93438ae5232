package feeds

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"localpulse-api/core/domain"
	coreerrors "localpulse-api/core/errors"
	"localpulse-api/core/interfaces"
)

func newsService(client *mockHTTPClient) *Service {
	cfg := DefaultSources()[domain.DomainNews]
	cfg.URL = "https://example.com/news/feed"
	return NewService(cfg, testDeps(client), nil)
}

func newsFeedBody(n int) string {
	var b strings.Builder
	b.WriteString(`<rss version="2.0"><channel>`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<item><title>Story %d</title><guid>s%d</guid><description>short</description></item>`, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestRefresh_PublishesRecords(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: newsFeedBody(3)}, nil
		},
	}
	svc := newsService(client)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	records, status := svc.Snapshot()
	if len(records) != 3 {
		t.Errorf("published %d records, want 3", len(records))
	}
	if status.Error != "" || status.Loading {
		t.Errorf("status = %+v, want clean", status)
	}
}

func TestRefresh_CacheBustingParamAppended(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: newsFeedBody(1)}, nil
		},
	}
	svc := newsService(client)

	_ = svc.Refresh(context.Background())

	if len(client.getCalls) != 1 || !strings.Contains(client.getCalls[0], "?_=") {
		t.Errorf("fetch URL should carry a cache-busting parameter, got %v", client.getCalls)
	}
}

func TestRefresh_Non200IsTransportError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503, body: ""}, nil
		},
	}
	svc := newsService(client)

	err := svc.Refresh(context.Background())

	if !coreerrors.IsTransport(err) {
		t.Errorf("error = %v, want TransportError", err)
	}
	_, status := svc.Snapshot()
	if status.Error == "" {
		t.Error("status error should be set after a failed refresh")
	}
}

func TestRefresh_MalformedFeedIsFormatError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "<rss><channel><item></channel>"}, nil
		},
	}
	svc := newsService(client)

	err := svc.Refresh(context.Background())

	if !coreerrors.IsFormat(err) {
		t.Errorf("error = %v, want FormatError", err)
	}
}

func TestRefresh_BareAmpersandRepairedBeforeParse(t *testing.T) {
	body := `<rss version="2.0"><channel><item><title>R&D Fair</title><guid>g1</guid><description>short</description></item></channel></rss>`
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	svc := newsService(client)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	records, _ := svc.Snapshot()
	if len(records) != 1 {
		t.Fatalf("published %d records, want 1", len(records))
	}
	if got := records[0].(domain.Article).Title; got != "R&D Fair" {
		t.Errorf("Title = %q, want R&D Fair", got)
	}
}

func TestRefresh_FailurePreservesPublishedRecords(t *testing.T) {
	ok := true
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if ok {
				return &mockResponse{statusCode: 200, body: newsFeedBody(2)}, nil
			}
			return &mockResponse{statusCode: 500, body: ""}, nil
		},
	}
	svc := newsService(client)

	_ = svc.Refresh(context.Background())
	ok = false
	_ = svc.Refresh(context.Background())

	records, status := svc.Snapshot()
	if len(records) != 2 {
		t.Errorf("published records should survive a failed refresh, got %d", len(records))
	}
	if status.Error == "" {
		t.Error("status should carry the refresh error")
	}
}

func TestRequestPage_ZeroReplacesNotDuplicates(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: newsFeedBody(5)}, nil
		},
	}
	svc := newsService(client)

	_ = svc.RequestPage(context.Background(), 0)
	_ = svc.RequestPage(context.Background(), 0)

	records, _ := svc.Snapshot()
	if len(records) != 5 {
		t.Errorf("page 0 twice should replace, not duplicate: got %d records", len(records))
	}
}

func TestRequestPage_AppendsExactlyRemaining(t *testing.T) {
	cfg := DefaultSources()[domain.DomainReddit] // page size 20
	cfg.URL = "https://example.com/r/town.rss"
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			var b strings.Builder
			b.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">`)
			for i := 0; i < 30; i++ {
				fmt.Fprintf(&b, `<entry><id>p%d</id><title>post %d</title><link href="https://www.reddit.com/%d"/></entry>`, i, i, i)
			}
			b.WriteString(`</feed>`)
			return &mockResponse{statusCode: 200, body: b.String()}, nil
		},
	}
	svc := NewService(cfg, testDeps(client), nil)

	_ = svc.RequestPage(context.Background(), 0)
	records, status := svc.Snapshot()
	if len(records) != 20 || !status.HasMore {
		t.Fatalf("page 0: %d records hasMore=%v, want 20/true", len(records), status.HasMore)
	}

	_ = svc.RequestPage(context.Background(), 1)
	records, status = svc.Snapshot()
	if len(records) != 30 {
		t.Errorf("page 1 should append min(pageSize, remaining)=10, got %d total", len(records))
	}
	if status.HasMore {
		t.Error("hasMore should be false after the last page")
	}
}

func TestRequestPage_DroppedWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			close(started)
			<-release
			return &mockResponse{statusCode: 200, body: newsFeedBody(1)}, nil
		},
	}
	svc := newsService(client)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.RequestPage(context.Background(), 0)
	}()

	<-started
	// Second request arrives while the first is in flight: dropped.
	if err := svc.RequestPage(context.Background(), 1); err != nil {
		t.Errorf("dropped request should return nil, got %v", err)
	}
	close(release)
	wg.Wait()

	if len(client.getCalls) != 1 {
		t.Errorf("in-flight guard should drop the second fetch, got %d calls", len(client.getCalls))
	}
}

func TestRefresh_EmptyRedditFeedIsError(t *testing.T) {
	cfg := DefaultSources()[domain.DomainReddit]
	cfg.URL = "https://example.com/r/town.rss"
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `<feed xmlns="http://www.w3.org/2005/Atom"><title>r/town</title></feed>`}, nil
		},
	}
	svc := NewService(cfg, testDeps(client), nil)

	err := svc.Refresh(context.Background())

	if !coreerrors.IsEmptyFeed(err) {
		t.Errorf("error = %v, want EmptyFeedError", err)
	}
}

func TestRefresh_EmptyNewsFeedIsNormal(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `<rss version="2.0"><channel><title>empty</title></channel></rss>`}, nil
		},
	}
	svc := newsService(client)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Errorf("empty news feed should not be an error, got %v", err)
	}

	records, status := svc.Snapshot()
	if len(records) != 0 || status.Error != "" {
		t.Errorf("want empty success state, got %d records, error %q", len(records), status.Error)
	}
}

func TestRefresh_GeocodingPatchApplied(t *testing.T) {
	cfg := DefaultSources()[domain.DomainRealEstate]
	cfg.URL = "https://example.com/listings/feed"
	body := `<rss version="2.0"><channel>
		<item><title>🏠 NEW: 123 Main St, Ann Arbor, MI 48103 - $299,900 | 4BR/2BA</title><guid>l1</guid></item>
	</channel></rss>`
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	geo := &mockGeocoder{patch: map[int]domain.Coordinates{0: {Lat: 42.28, Lon: -83.74}}}
	svc := NewService(cfg, testDeps(client), geo)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	waitFor(t, func() bool {
		records, _ := svc.Snapshot()
		return records[0].(domain.Listing).Coordinates.IsSet()
	}, "coordinates patch should be applied to the published listing")

	if geo.callCount() != 1 {
		t.Errorf("geocoder called %d times, want 1", geo.callCount())
	}
}

func TestRefresh_GeocoderEmptyPatchLeavesCoordinatesUnset(t *testing.T) {
	cfg := DefaultSources()[domain.DomainRealEstate]
	cfg.URL = "https://example.com/listings/feed"
	body := `<rss version="2.0"><channel>
		<item><title>🏠 NEW: 5 Oak St, Ann Arbor, MI 48104 - $250,000 | 3BR/1BA</title><guid>l2</guid></item>
	</channel></rss>`
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	geo := &mockGeocoder{}
	svc := NewService(cfg, testDeps(client), geo)

	_ = svc.Refresh(context.Background())

	waitFor(t, func() bool { return geo.callCount() == 1 }, "geocoder should run")

	records, _ := svc.Snapshot()
	if records[0].(domain.Listing).Coordinates.IsSet() {
		t.Error("failed geocoding must leave coordinates unset, never fabricated")
	}
}

func TestRequestPage_ReturnsBeforeGeocodingCompletes(t *testing.T) {
	cfg := DefaultSources()[domain.DomainRealEstate]
	cfg.URL = "https://example.com/listings/feed"
	body := `<rss version="2.0"><channel>
		<item><title>🏠 NEW: 123 Main St, Ann Arbor, MI 48103 - $299,900 | 4BR/2BA</title><guid>l1</guid></item>
	</channel></rss>`
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	geo := &mockGeocoder{
		patch:   map[int]domain.Coordinates{0: {Lat: 42.28, Lon: -83.74}},
		release: make(chan struct{}),
	}
	svc := NewService(cfg, testDeps(client), geo)

	// The geocoder is held open, so a synchronous enrichment phase would
	// deadlock here instead of returning.
	if err := svc.RequestPage(context.Background(), 0); err != nil {
		t.Fatalf("RequestPage returned error: %v", err)
	}

	records, status := svc.Snapshot()
	if len(records) != 1 {
		t.Fatalf("got %d records, want the page published before enrichment", len(records))
	}
	if records[0].(domain.Listing).Coordinates.IsSet() {
		t.Error("coordinates set before the geocoder completed")
	}
	if status.Loading {
		t.Error("status still loading after RequestPage returned")
	}

	close(geo.release)

	waitFor(t, func() bool {
		records, _ := svc.Snapshot()
		return records[0].(domain.Listing).Coordinates.IsSet()
	}, "coordinates patch should land after the geocoder completes")
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestService_IntervalPerDomain(t *testing.T) {
	sources := DefaultSources()

	if sources[domain.DomainAlerts].Interval != 5*time.Minute {
		t.Errorf("alerts interval = %v, want 5m", sources[domain.DomainAlerts].Interval)
	}
	if sources[domain.DomainNews].Interval != 30*time.Minute {
		t.Errorf("news interval = %v, want 30m", sources[domain.DomainNews].Interval)
	}
	if sources[domain.DomainReddit].PageSize != 20 {
		t.Errorf("reddit page size = %d, want 20", sources[domain.DomainReddit].PageSize)
	}
}
