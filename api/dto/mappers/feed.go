// ABOUTME: Mappers between domain record types and response DTOs
// ABOUTME: Flattens the per-domain record shapes into the superset wire format

package mappers

import (
	"time"

	"localpulse-api/api/dto/responses"
	"localpulse-api/core/domain"
)

// Record maps a domain record to its wire representation.
func Record(r domain.Record) responses.RecordResponse {
	switch v := r.(type) {
	case domain.Article:
		return responses.RecordResponse{
			ID:        v.ID,
			Kind:      "article",
			Title:     v.Title,
			Body:      v.Body,
			Link:      v.Link,
			ImageURL:  v.ImageURL,
			Published: v.Published,
			Author:    v.Author,
		}
	case domain.WeatherReport:
		return responses.RecordResponse{
			ID:          v.ID,
			Kind:        "weather",
			Title:       v.Title,
			Summary:     v.Summary,
			Temperature: v.Temperature,
			Conditions:  v.Conditions,
			High:        v.High,
			Low:         v.Low,
			Wind:        v.Wind,
			Humidity:    v.Humidity,
			Emoji:       v.Emoji,
			Published:   v.Published,
			Link:        v.Link,
		}
	case domain.EmergencyAlert:
		return responses.RecordResponse{
			ID:        v.ID,
			Kind:      "alert",
			Title:     v.Headline,
			Body:      v.Body,
			Severity:  v.Severity,
			Area:      v.Area,
			Effective: v.Effective,
			Expires:   v.Expires,
			Published: v.Published,
			Link:      v.Link,
		}
	case domain.Event:
		resp := responses.RecordResponse{
			ID:         v.ID,
			Kind:       "event",
			Title:      v.Title,
			Body:       v.Body,
			Venue:      v.Venue,
			Location:   v.Location,
			Address:    v.Address,
			Category:   v.Category,
			Genre:      v.Genre,
			PriceRange: v.PriceRange,
			Emoji:      v.Emoji,
			ImageURL:   v.ImageURL,
			Link:       v.Link,
			Published:  v.Published,
			DateKnown:  boolPtr(v.DateKnown),
		}
		if v.DateKnown {
			resp.SortDate = v.SortDate.Format(time.RFC3339)
		}
		return resp
	case domain.Listing:
		resp := responses.RecordResponse{
			ID:            v.ID,
			Kind:          "listing",
			Title:         v.Title,
			Body:          v.Body,
			Status:        v.Status,
			Price:         v.Price,
			Bedrooms:      v.Bedrooms,
			Bathrooms:     v.Bathrooms,
			SquareFootage: v.SquareFootage,
			PricePerSqFt:  v.PricePerSqFt,
			Address:       v.Address,
			Emoji:         v.Emoji,
			ImageURL:      v.ImageURL,
			Link:          v.Link,
			Published:     v.Published,
		}
		if v.Coordinates.IsSet() {
			coords := v.Coordinates
			resp.Coordinates = &coords
		}
		return resp
	case domain.RedditPost:
		return responses.RecordResponse{
			ID:        v.ID,
			Kind:      "reddit",
			Title:     v.Title,
			Body:      v.Body,
			Author:    v.Author,
			Score:     intPtr(v.Score),
			Comments:  intPtr(v.Comments),
			PostType:  v.PostType,
			Domain:    v.Domain,
			ImageURL:  v.ImageURL,
			Link:      v.Link,
			Published: v.Published,
		}
	case domain.ClassifiedItem:
		return responses.RecordResponse{
			ID:        v.ID,
			Kind:      "classified",
			Title:     v.Title,
			Body:      v.Body,
			Price:     v.Price,
			IsFree:    boolPtr(v.IsFree),
			Category:  v.Category,
			ImageURL:  v.ImageURL,
			Link:      v.Link,
			Published: v.Published,
		}
	default:
		// Unknown record kinds still surface their identifier.
		return responses.RecordResponse{ID: r.RecordID(), Kind: "unknown"}
	}
}

// Records maps a slice of domain records to wire representations.
func Records(records []domain.Record) []responses.RecordResponse {
	out := make([]responses.RecordResponse, len(records))
	for i, r := range records {
		out[i] = Record(r)
	}
	return out
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
