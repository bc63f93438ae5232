package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTransportError_WithStatusCode(t *testing.T) {
	err := &TransportError{Domain: "news", URL: "https://example.com/feed", StatusCode: 503}

	want := "news feed fetch failed: https://example.com/feed returned 503"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTransportError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Domain: "reddit", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
}

func TestIsTransport_MatchesWrappedError(t *testing.T) {
	err := fmt.Errorf("pipeline: %w", &TransportError{Domain: "weather"})

	if !IsTransport(err) {
		t.Error("IsTransport should match a wrapped TransportError")
	}
	if IsFormat(err) {
		t.Error("IsFormat should not match a TransportError")
	}
}

func TestIsFormat_MatchesFormatError(t *testing.T) {
	err := &FormatError{Domain: "events", Err: errors.New("unexpected EOF")}

	if !IsFormat(err) {
		t.Error("IsFormat should match a FormatError")
	}
}

func TestIsEmptyFeed_MatchesEmptyFeedError(t *testing.T) {
	err := &EmptyFeedError{Domain: "reddit"}

	if !IsEmptyFeed(err) {
		t.Error("IsEmptyFeed should match an EmptyFeedError")
	}
	if IsTransport(err) {
		t.Error("IsTransport should not match an EmptyFeedError")
	}
}

func TestWrapError_NilReturnsNil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestWrapError_AddsContext(t *testing.T) {
	inner := errors.New("boom")
	err := WrapError(inner, "fetching feed")

	if err.Error() != "fetching feed: boom" {
		t.Errorf("WrapError message = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is")
	}
}
