// ABOUTME: Response DTOs for feed-related API endpoints
// ABOUTME: Defines the wire format for paged feed records

package responses

import "localpulse-api/core/domain"

// RecordResponse is the wire shape for one feed record. It is a superset of
// the per-domain record types; fields that do not apply to a record's kind
// are omitted.
type RecordResponse struct {
	ID        string `json:"id" doc:"Record identifier, unique within one fetch"`
	Kind      string `json:"kind" doc:"Record kind: article, weather, alert, event, listing, reddit, classified"`
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	Link      string `json:"link,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Published string `json:"published,omitempty"`
	Author    string `json:"author,omitempty"`
	Emoji     string `json:"emoji,omitempty"`

	// Weather fields
	Summary     string `json:"summary,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Conditions  string `json:"conditions,omitempty"`
	High        string `json:"high,omitempty"`
	Low         string `json:"low,omitempty"`
	Wind        string `json:"wind,omitempty"`
	Humidity    string `json:"humidity,omitempty"`

	// Alert fields
	Severity  string `json:"severity,omitempty"`
	Area      string `json:"area,omitempty"`
	Effective string `json:"effective,omitempty"`
	Expires   string `json:"expires,omitempty"`

	// Event fields
	Venue      string `json:"venue,omitempty"`
	Location   string `json:"location,omitempty"`
	Category   string `json:"category,omitempty"`
	Genre      string `json:"genre,omitempty"`
	PriceRange string `json:"price_range,omitempty"`
	SortDate   string `json:"sort_date,omitempty"`
	DateKnown  *bool  `json:"date_known,omitempty"`

	// Real estate fields
	Status        string              `json:"status,omitempty"`
	Bedrooms      string              `json:"bedrooms,omitempty"`
	Bathrooms     string              `json:"bathrooms,omitempty"`
	SquareFootage string              `json:"square_footage,omitempty"`
	PricePerSqFt  string              `json:"price_per_sqft,omitempty"`
	Address       string              `json:"address,omitempty"`
	Coordinates   *domain.Coordinates `json:"coordinates,omitempty"`

	// Marketplace fields (real estate, craigslist)
	Price  string `json:"price,omitempty"`
	IsFree *bool  `json:"is_free,omitempty"`

	// Social fields (reddit)
	Score    *int   `json:"score,omitempty"`
	Comments *int   `json:"comments,omitempty"`
	PostType string `json:"post_type,omitempty"`
	Domain   string `json:"domain,omitempty"`
}

// FeedPageResponse is the response for one page of a domain's feed.
type FeedPageResponse struct {
	Domain  string           `json:"domain" doc:"Feed domain name"`
	Page    int              `json:"page" doc:"Requested page (0-based)"`
	Loading bool             `json:"loading" doc:"Whether a fetch is in progress"`
	Error   string           `json:"error,omitempty" doc:"Last fetch error, if any"`
	HasMore bool             `json:"has_more" doc:"Whether more pages are available"`
	Records []RecordResponse `json:"records" doc:"Accumulated records through the requested page"`
}

// DomainStatusResponse summarizes one configured feed domain.
type DomainStatusResponse struct {
	Domain   string `json:"domain"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error,omitempty"`
	HasMore  bool   `json:"has_more"`
	Records  int    `json:"records" doc:"Number of records currently published"`
	Interval string `json:"interval" doc:"Scheduled refresh period"`
	PageSize int    `json:"page_size" doc:"Records per page for this domain"`
}
