// Package api provides the HTTP API layer for the LocalPulse application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// Feed pages are served per domain:
//
//	GET  /feeds/{domain}?page=N   paged records for one feed domain
//	POST /feeds/{domain}/refresh  force an immediate refresh
//	GET  /domains                 list configured domains and their status
//
// Utility endpoints:
//
//	POST /discover   find feed URLs on a website
//	POST /validate   check that URLs point at parseable feeds
//	POST /reader     extract clean article content from web pages
//
// The OpenAPI 3.0 spec is generated automatically: the JSON document is
// available at /openapi.json and an interactive UI at /docs.
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "unknown feed domain",
//	    "instance": "/feeds/sports"
//	}
//
// Domain errors are mapped to appropriate HTTP status codes in
// handlers/errors.go.
package api
