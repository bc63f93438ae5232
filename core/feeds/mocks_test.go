package feeds

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"localpulse-api/core/domain"
	"localpulse-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	getCalls []string
	accepts  []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url, accept string) (interfaces.Response, error) {
	m.getCalls = append(m.getCalls, url)
	m.accepts = append(m.accepts, accept)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }

func (m *mockResponse) Header(key string) string { return "" }

// mockCache is a mock implementation of the Cache interface
type mockCache struct{}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error { return nil }

// mockLogger is a no-op Logger
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockGeocoder returns a fixed patch set. Enrichment runs on its own
// goroutine, so the call counter is guarded and an optional release channel
// lets tests hold a lookup open.
type mockGeocoder struct {
	patch   map[int]domain.Coordinates
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (m *mockGeocoder) LookupBatch(ctx context.Context, addresses map[int]string) map[int]domain.Coordinates {
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.patch
}

func (m *mockGeocoder) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func testDeps(client *mockHTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:      &mockCache{},
		HTTPClient: client,
		Logger:     &mockLogger{},
	}
}
