// ABOUTME: Feed discovery handler: turns website URLs into verified feed endpoints
// ABOUTME: Finds link[rel=alternate] candidates, verifies them with the feed parser, suggests a domain

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
	"localpulse-api/core/interfaces"
	"localpulse-api/core/sanitize"

	"github.com/PuerkitoBio/goquery"
	"github.com/danielgtaylor/huma/v2"
)

// feedAccept is sent when fetching a candidate feed for verification.
const feedAccept = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.9"

// DiscoverHandler resolves website URLs to feed endpoints. A candidate is
// only reported after it has been fetched and parsed, so every FeedLink in a
// response is known to work as a source URL.
type DiscoverHandler struct {
	httpClient interfaces.HTTPClient
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(httpClient interfaces.HTTPClient) *DiscoverHandler {
	return &DiscoverHandler{
		httpClient: httpClient,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover feeds from websites",
		Description: "Finds RSS/Atom feed URLs on the provided pages, verifies each one parses, and suggests which feed domain it could serve",
		Tags:        []string{"Discovery"},
	}, h.DiscoverFeeds)
}

// DiscoverFeedsInput defines the input for feed discovery
type DiscoverFeedsInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"List of website URLs to discover feeds from"`
	}
}

// FeedDiscoveryResult represents a single discovery result
type FeedDiscoveryResult struct {
	URL             string `json:"url" doc:"Original URL that was checked"`
	Status          string `json:"status" doc:"Discovery status: 'ok' or 'error'"`
	FeedLink        string `json:"feedLink,omitempty" doc:"Discovered and verified feed URL"`
	Kind            string `json:"kind,omitempty" doc:"Detected feed dialect: 'rss' or 'atom'"`
	Items           int    `json:"items,omitempty" doc:"Item count at verification time"`
	SuggestedDomain string `json:"suggestedDomain,omitempty" doc:"Feed domain this source could serve, when recognizable from the host"`
	Error           string `json:"error,omitempty" doc:"Error message if discovery failed"`
}

// DiscoverFeedsOutput defines the output for feed discovery
type DiscoverFeedsOutput struct {
	Body struct {
		Feeds []FeedDiscoveryResult `json:"feeds" doc:"Discovery results for each URL"`
	}
}

// DiscoverFeeds handles the POST /discover endpoint
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	var wg sync.WaitGroup
	results := make([]FeedDiscoveryResult, len(input.Body.URLs))

	for i, u := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, siteURL string) {
			defer wg.Done()
			results[idx] = h.discover(ctx, siteURL)
		}(i, u)
	}

	wg.Wait()

	output := &DiscoverFeedsOutput{}
	output.Body.Feeds = results
	return output, nil
}

// discover finds a feed candidate for one site and verifies it.
func (h *DiscoverHandler) discover(ctx context.Context, siteURL string) FeedDiscoveryResult {
	result := FeedDiscoveryResult{URL: siteURL, Status: "error"}

	feedURL, err := h.findFeedLink(ctx, siteURL)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	kind, items, err := h.verifyFeed(ctx, feedURL)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Status = "ok"
	result.FeedLink = feedURL
	result.Kind = kind
	result.Items = items
	result.SuggestedDomain = suggestDomain(feedURL)
	return result
}

// findFeedLink returns the feed URL advertised by a page. Reddit never
// advertises one in its markup but serves every listing with .rss appended.
func (h *DiscoverHandler) findFeedLink(ctx context.Context, siteURL string) (string, error) {
	parsed, err := url.Parse(siteURL)
	if err != nil {
		return "", err
	}

	if isRedditHost(parsed.Host) {
		return strings.TrimRight(siteURL, "/") + "/.rss", nil
	}

	resp, err := h.httpClient.Get(ctx, siteURL, "text/html, application/xhtml+xml")
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", errors.New("failed to fetch page")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", err
	}

	var feedURL string
	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if href, exists := s.Attr("href"); exists && href != "" {
			feedURL = href
			return false
		}
		return true
	})

	if feedURL == "" {
		return "", errors.New("no feed link on page")
	}

	return absoluteURL(parsed, feedURL)
}

// verifyFeed fetches a candidate and runs it through the same sanitize and
// parse path the pipelines use. Returns the detected dialect and item count.
func (h *DiscoverHandler) verifyFeed(ctx context.Context, feedURL string) (string, int, error) {
	resp, err := h.httpClient.Get(ctx, feedURL, feedAccept)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", 0, errors.New("feed URL did not respond with 200")
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", 0, err
	}

	doc, err := feedxml.Parse(sanitize.FeedText(string(body)))
	if err != nil {
		return "", 0, err
	}

	kind := "rss"
	if doc.Kind() == feedxml.KindAtom {
		kind = "atom"
	}
	return kind, len(doc.Items()), nil
}

// suggestDomain maps a verified feed's host onto the feed domains this
// service aggregates. Unknown hosts return the empty string.
func suggestDomain(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case isRedditHost(host):
		return string(domain.DomainReddit)
	case strings.HasSuffix(host, "craigslist.org"):
		return string(domain.DomainCraigslist)
	case host == "alerts.weather.gov":
		return string(domain.DomainAlerts)
	case strings.HasSuffix(host, "weather.gov"):
		return string(domain.DomainWeather)
	}
	return ""
}

// isRedditHost matches reddit.com and its subdomains.
func isRedditHost(host string) bool {
	host = strings.ToLower(host)
	return host == "reddit.com" || strings.HasSuffix(host, ".reddit.com")
}

// absoluteURL resolves a possibly relative feed href against the page URL.
func absoluteURL(base *url.URL, href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}
