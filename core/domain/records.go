// ABOUTME: Per-domain record types produced by the feed normalization layer
// ABOUTME: Each feed domain owns a flat record shape with display and domain-specific fields

package domain

import "time"

// FeedDomain identifies one of the aggregated feed families.
type FeedDomain string

const (
	DomainWeather     FeedDomain = "weather"
	DomainAlerts      FeedDomain = "alerts"
	DomainEvents      FeedDomain = "events"
	DomainRealEstate  FeedDomain = "realestate"
	DomainReddit      FeedDomain = "reddit"
	DomainCraigslist  FeedDomain = "craigslist"
	DomainNews        FeedDomain = "news"
	DomainPolitics    FeedDomain = "politics"
	DomainEducation   FeedDomain = "education"
)

// AllDomains lists every feed domain in presentation order.
func AllDomains() []FeedDomain {
	return []FeedDomain{
		DomainWeather, DomainAlerts, DomainEvents, DomainRealEstate,
		DomainReddit, DomainCraigslist, DomainNews, DomainPolitics,
		DomainEducation,
	}
}

// Record is implemented by every per-domain record type.
// Uniqueness of RecordID is only required within one fetch result.
type Record interface {
	RecordID() string
}

// Coordinates is an approximate latitude/longitude pair filled in by the
// geocoding enrichment phase. Zero value means "not resolved".
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsSet reports whether the coordinates were resolved.
func (c Coordinates) IsSet() bool {
	return c.Lat != 0 || c.Lon != 0
}

// Article is the plain-text record shape shared by the news, politics and
// education domains.
type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Link      string `json:"link,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Published string `json:"published,omitempty"`
	Author    string `json:"author,omitempty"`
}

func (a Article) RecordID() string { return a.ID }

// WeatherReport carries the labeled fields extracted from a weather feed item.
type WeatherReport struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Temperature string `json:"temperature,omitempty"`
	Conditions  string `json:"conditions,omitempty"`
	High        string `json:"high,omitempty"`
	Low         string `json:"low,omitempty"`
	Wind        string `json:"wind,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	Emoji       string `json:"emoji"`
	Published   string `json:"published,omitempty"`
	Link        string `json:"link,omitempty"`
}

func (w WeatherReport) RecordID() string { return w.ID }

// EmergencyAlert is a single emergency notification.
type EmergencyAlert struct {
	ID        string `json:"id"`
	Headline  string `json:"headline"`
	Body      string `json:"body"`
	Severity  string `json:"severity,omitempty"`
	Area      string `json:"area,omitempty"`
	Effective string `json:"effective,omitempty"`
	Expires   string `json:"expires,omitempty"`
	Published string `json:"published,omitempty"`
	Link      string `json:"link,omitempty"`
}

func (a EmergencyAlert) RecordID() string { return a.ID }

// Event is a local happening with venue details and a derived sortable date.
type Event struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Venue      string `json:"venue,omitempty"`
	Location   string `json:"location,omitempty"`
	Address    string `json:"address,omitempty"`
	Category   string `json:"category,omitempty"`
	Genre      string `json:"genre,omitempty"`
	PriceRange string `json:"price_range,omitempty"`
	Emoji      string `json:"emoji"`
	ImageURL   string `json:"image_url"`
	Link       string `json:"link,omitempty"`
	Published  string `json:"published,omitempty"`

	// SortDate is derived from the event's labeled date. DateKnown is false
	// when the date could not be parsed; such events sort after dated ones.
	SortDate  time.Time `json:"sort_date"`
	DateKnown bool      `json:"date_known"`
}

func (e Event) RecordID() string { return e.ID }

// Listing is a real estate listing. Coordinates are filled in asynchronously
// by the geocoding enrichment phase and may remain unset.
type Listing struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Body          string      `json:"body"`
	Status        string      `json:"status,omitempty"`
	Price         string      `json:"price"`
	Bedrooms      string      `json:"bedrooms,omitempty"`
	Bathrooms     string      `json:"bathrooms,omitempty"`
	SquareFootage string      `json:"square_footage,omitempty"`
	PricePerSqFt  string      `json:"price_per_sqft,omitempty"`
	Address       string      `json:"address,omitempty"`
	Emoji         string      `json:"emoji"`
	ImageURL      string      `json:"image_url,omitempty"`
	Link          string      `json:"link,omitempty"`
	Published     string      `json:"published,omitempty"`
	Coordinates   Coordinates `json:"coordinates"`
}

func (l Listing) RecordID() string { return l.ID }

// RedditPost is a social post with author and engagement fields.
type RedditPost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author,omitempty"`
	Score     int    `json:"score"`
	Comments  int    `json:"comments"`
	PostType  string `json:"post_type"`
	Domain    string `json:"domain,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Link      string `json:"link,omitempty"`
	Published string `json:"published,omitempty"`
}

func (p RedditPost) RecordID() string { return p.ID }

// ClassifiedItem is a classifieds listing (craigslist family).
type ClassifiedItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Price     string `json:"price"`
	IsFree    bool   `json:"is_free"`
	Category  string `json:"category,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Link      string `json:"link,omitempty"`
	Published string `json:"published,omitempty"`
}

func (c ClassifiedItem) RecordID() string { return c.ID }

// PostType values for RedditPost.PostType.
const (
	PostTypeLink  = "link"
	PostTypeImage = "image"
	PostTypeText  = "text"
	PostTypePoll  = "poll"
)

// PriceUnlisted is the placeholder used when no price could be extracted.
const PriceUnlisted = "unlisted"

// FeedStatus is the loading/error/hasMore triple published alongside each
// domain's record list.
type FeedStatus struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	HasMore bool   `json:"has_more"`
}
