// ABOUTME: Validation handler for checking that URLs point at parseable feeds
// ABOUTME: Fetches each URL concurrently and runs it through a feed parser

package handlers

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"localpulse-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/mmcdole/gofeed"
)

// ValidateHandler handles feed URL validation
type ValidateHandler struct {
	httpClient interfaces.HTTPClient
}

// NewValidateHandler creates a new validation handler
func NewValidateHandler(httpClient interfaces.HTTPClient) *ValidateHandler {
	return &ValidateHandler{
		httpClient: httpClient,
	}
}

// RegisterRoutes registers validation routes
func (h *ValidateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validateFeeds",
		Method:      http.MethodPost,
		Path:        "/validate",
		Summary:     "Validate feed URLs",
		Description: "Checks that provided URLs are accessible and contain a parseable RSS or Atom feed",
		Tags:        []string{"Validation"},
	}, h.ValidateFeeds)
}

// ValidateInput defines the input for feed validation
type ValidateInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"List of feed URLs to validate"`
	}
}

// FeedValidationResult represents validation result for a single URL
type FeedValidationResult struct {
	URL    string `json:"url" doc:"The URL that was validated"`
	Status string `json:"status" doc:"Validation status: 'valid' or 'invalid'"`
	Title  string `json:"title,omitempty" doc:"Feed title when the feed parsed"`
}

// ValidateOutput defines the output for feed validation
type ValidateOutput struct {
	Body struct {
		Results []FeedValidationResult `json:"results" doc:"Validation results for each URL"`
	}
}

// ValidateFeeds handles the POST /validate endpoint
func (h *ValidateHandler) ValidateFeeds(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	// Process URLs concurrently
	var wg sync.WaitGroup
	results := make([]FeedValidationResult, len(input.Body.URLs))

	for i, urlStr := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, targetURL string) {
			defer wg.Done()

			result := FeedValidationResult{URL: targetURL, Status: "invalid"}
			if title, ok := h.parseFeed(ctx, targetURL); ok {
				result.Status = "valid"
				result.Title = title
			}
			results[idx] = result
		}(i, urlStr)
	}

	wg.Wait()

	output := &ValidateOutput{}
	output.Body.Results = results
	return output, nil
}

// parseFeed fetches a URL and attempts to parse it as RSS or Atom.
func (h *ValidateHandler) parseFeed(ctx context.Context, urlStr string) (string, bool) {
	u, err := url.Parse(urlStr)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := h.httpClient.Get(ctx, urlStr, "")
	if err != nil {
		return "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 400 {
		return "", false
	}

	feed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil || feed == nil {
		return "", false
	}

	return feed.Title, true
}
