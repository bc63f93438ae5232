// ABOUTME: Text-search geocoding client with small batches and inter-batch delay
// ABOUTME: Lookup failures are swallowed; the patch set just omits the address

package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"localpulse-api/core/domain"
	"localpulse-api/core/interfaces"
)

const (
	// batchSize bounds concurrent requests against the geocoding service.
	batchSize = 5
	// batchPause is the delay between batches, respecting upstream limits.
	batchPause = 1 * time.Second
)

// Service resolves free-text addresses through a Nominatim-style text-search
// endpoint returning a ranked candidate list.
type Service struct {
	deps    interfaces.Dependencies
	baseURL string
	limiter *rate.Limiter
	sem     *semaphore.Weighted
	pause   time.Duration
}

// NewService creates a geocoding service against the given search endpoint.
func NewService(deps interfaces.Dependencies, baseURL string) *Service {
	return &Service{
		deps:    deps,
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), batchSize),
		sem:     semaphore.NewWeighted(batchSize),
		pause:   batchPause,
	}
}

// candidate is one entry of the ranked result list. The upstream service
// returns coordinates as strings.
type candidate struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// LookupBatch resolves addresses in batches of batchSize with a pause between
// batches. The returned patch set holds an entry only for addresses that
// resolved; coordinates are never correctness-critical, so every failure is
// recovered silently.
func (s *Service) LookupBatch(ctx context.Context, addresses map[int]string) map[int]domain.Coordinates {
	patch := make(map[int]domain.Coordinates)
	if len(addresses) == 0 {
		return patch
	}

	// Stable iteration order so batching is deterministic.
	indexes := make([]int, 0, len(addresses))
	for i := range addresses {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var mu sync.Mutex
	for start := 0; start < len(indexes); start += batchSize {
		end := start + batchSize
		if end > len(indexes) {
			end = len(indexes)
		}

		var wg sync.WaitGroup
		for _, idx := range indexes[start:end] {
			if err := s.sem.Acquire(ctx, 1); err != nil {
				return patch
			}
			wg.Add(1)
			go func(idx int, address string) {
				defer wg.Done()
				defer s.sem.Release(1)

				coords, ok := s.lookup(ctx, address)
				if !ok {
					return
				}
				mu.Lock()
				patch[idx] = coords
				mu.Unlock()
			}(idx, addresses[idx])
		}
		wg.Wait()

		if end < len(indexes) {
			select {
			case <-time.After(s.pause):
			case <-ctx.Done():
				return patch
			}
		}
	}

	return patch
}

// lookup resolves one address. Returns false on any failure: network error,
// non-200 status, unparseable body, or zero candidates.
func (s *Service) lookup(ctx context.Context, address string) (domain.Coordinates, bool) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.Coordinates{}, false
	}

	query := s.baseURL + "?format=json&limit=1&q=" + url.QueryEscape(address)
	resp, err := s.deps.HTTPClient.Get(ctx, query, "application/json")
	if err != nil {
		return domain.Coordinates{}, false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return domain.Coordinates{}, false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return domain.Coordinates{}, false
	}

	var candidates []candidate
	if err := json.Unmarshal(body, &candidates); err != nil || len(candidates) == 0 {
		return domain.Coordinates{}, false
	}

	lat, errLat := strconv.ParseFloat(candidates[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(candidates[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true
}
