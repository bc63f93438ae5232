// ABOUTME: Reader view extraction for click-through article links
// ABOUTME: Wraps go-readability with caching and bounded per-request concurrency

package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"

	"localpulse-api/core/domain"
	"localpulse-api/core/interfaces"
)

const (
	extractTimeout = 30 * time.Second
	cacheTTL       = 1 * time.Hour
)

// Service extracts readable article content from web pages.
type Service struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewService creates a reader view service.
func NewService(cache interfaces.Cache, logger interfaces.Logger) *Service {
	return &Service{
		cache:  cache,
		logger: logger,
	}
}

// ExtractReaderViews extracts clean article content from multiple URLs.
// Results keep the input order; a failed URL carries its own error status and
// never fails the batch.
func (s *Service) ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView {
	results := make([]domain.ReaderView, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(index int, url string) {
			defer wg.Done()

			if s.cache != nil {
				cacheKey := fmt.Sprintf("reader:%s", url)
				if data, err := s.cache.Get(ctx, cacheKey); err == nil && data != nil {
					var cached domain.ReaderView
					if err := json.Unmarshal(data, &cached); err == nil {
						results[index] = cached
						return
					}
				}
			}

			view := s.extractSingleView(url)
			results[index] = view

			if s.cache != nil && view.Status == "ok" {
				cacheKey := fmt.Sprintf("reader:%s", url)
				if data, err := json.Marshal(view); err == nil {
					_ = s.cache.Set(ctx, cacheKey, data, cacheTTL)
				}
			}
		}(i, url)
	}

	wg.Wait()
	return results
}

func (s *Service) extractSingleView(url string) domain.ReaderView {
	result := domain.ReaderView{
		URL:    url,
		Status: "ok",
	}

	article, err := readability.FromURL(url, extractTimeout)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to parse reader view", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		}
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	result.Title = article.Title
	result.Content = article.Content
	result.TextContent = article.TextContent
	result.SiteName = article.SiteName
	result.Image = article.Image
	result.Favicon = article.Favicon

	return result
}
