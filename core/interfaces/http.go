package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the outbound HTTP abstraction the pipelines fetch through.
// Implementations handle retries and timeouts; callers only see the final
// response or error.
type HTTPClient interface {
	// Get performs a GET request. accept is sent as the Accept header;
	// an empty string lets the implementation pick its default.
	Get(ctx context.Context, url, accept string) (Response, error)

	// Post performs a POST request with the given body.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the slice of an HTTP response the pipelines consume.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the named header, or "" when absent. Names are
	// case-insensitive.
	Header(key string) string
}
