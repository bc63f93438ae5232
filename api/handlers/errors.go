// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"localpulse-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// Upstream feed failures are the upstream's fault, not the client's.
	if errors.IsTransport(err) {
		return huma.Error503ServiceUnavailable("upstream feed unavailable", err)
	}

	if errors.IsFormat(err) {
		return huma.Error502BadGateway("upstream feed malformed", err)
	}

	if errors.IsEmptyFeed(err) {
		return huma.Error502BadGateway("upstream feed returned no entries", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
