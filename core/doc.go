// Package core contains the business logic for the LocalPulse API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (per-domain record types, feed status)
// - sanitize: Pre-parse repair of malformed feed XML
// - feedxml: RSS/Atom document parsing with format fallback
// - extract: Per-domain record extraction from parsed feed items
// - feeds: Per-domain pipeline services with pagination and enrichment
// - geocode: Batched address-to-coordinate resolution
// - scheduler: Periodic refresh scheduling
// - reader: Clean article content extraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "localpulse-api/core/feeds"
//	    "localpulse-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Build the per-domain pipelines
//	registry := feeds.NewRegistry(feeds.DefaultSources(), deps, nil)
//
//	// Fetch the first page of the news feed
//	svc, _ := registry.Service(domain.DomainNews)
//	err := svc.RequestPage(ctx, 0)
package core
