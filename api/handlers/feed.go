// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for paged per-domain feed access

package handlers

import (
	"context"
	"net/http"
	"time"

	"localpulse-api/api/dto/mappers"
	"localpulse-api/api/dto/responses"
	"localpulse-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// FeedPipeline is the per-domain pipeline surface the handler needs.
type FeedPipeline interface {
	Domain() domain.FeedDomain
	Snapshot() ([]domain.Record, domain.FeedStatus)
	RequestPage(ctx context.Context, page int) error
	Refresh(ctx context.Context) error
	Interval() time.Duration
	PageSize() int
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	pipelines map[domain.FeedDomain]FeedPipeline
}

// NewFeedHandler creates a new feed handler over the given pipelines.
func NewFeedHandler(pipelines map[domain.FeedDomain]FeedPipeline) *FeedHandler {
	return &FeedHandler{pipelines: pipelines}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getFeedPage",
		Method:      http.MethodGet,
		Path:        "/feeds/{domain}",
		Summary:     "Get a page of feed records",
		Description: "Fetches the feed for a domain and returns the records accumulated through the requested page",
		Tags:        []string{"Feeds"},
	}, h.GetFeedPage)

	huma.Register(api, huma.Operation{
		OperationID: "refreshFeed",
		Method:      http.MethodPost,
		Path:        "/feeds/{domain}/refresh",
		Summary:     "Refresh a feed domain",
		Description: "Forces an immediate refetch of the domain's feed, replacing the published records",
		Tags:        []string{"Feeds"},
	}, h.RefreshFeed)

	huma.Register(api, huma.Operation{
		OperationID: "listDomains",
		Method:      http.MethodGet,
		Path:        "/domains",
		Summary:     "List feed domains",
		Description: "Lists every configured feed domain with its current status",
		Tags:        []string{"Feeds"},
	}, h.ListDomains)
}

// GetFeedPageInput defines the input for the GetFeedPage operation
type GetFeedPageInput struct {
	Domain string `path:"domain" doc:"Feed domain name"`
	Page   int    `query:"page" minimum:"0" default:"0" doc:"Page number (0-based)"`
}

// GetFeedPageOutput defines the output for the GetFeedPage operation
type GetFeedPageOutput struct {
	Body responses.FeedPageResponse
}

// GetFeedPage handles the GET /feeds/{domain} endpoint
func (h *FeedHandler) GetFeedPage(ctx context.Context, input *GetFeedPageInput) (*GetFeedPageOutput, error) {
	pipeline, ok := h.pipelines[domain.FeedDomain(input.Domain)]
	if !ok {
		return nil, huma.Error404NotFound("unknown feed domain: " + input.Domain)
	}

	// Fetch errors are published through the status rather than failing the
	// request; the client still gets the previous records.
	_ = pipeline.RequestPage(ctx, input.Page)

	records, status := pipeline.Snapshot()

	return &GetFeedPageOutput{
		Body: responses.FeedPageResponse{
			Domain:  input.Domain,
			Page:    input.Page,
			Loading: status.Loading,
			Error:   status.Error,
			HasMore: status.HasMore,
			Records: mappers.Records(records),
		},
	}, nil
}

// RefreshFeedInput defines the input for the RefreshFeed operation
type RefreshFeedInput struct {
	Domain string `path:"domain" doc:"Feed domain name"`
}

// RefreshFeedOutput defines the output for the RefreshFeed operation
type RefreshFeedOutput struct {
	Body responses.FeedPageResponse
}

// RefreshFeed handles the POST /feeds/{domain}/refresh endpoint
func (h *FeedHandler) RefreshFeed(ctx context.Context, input *RefreshFeedInput) (*RefreshFeedOutput, error) {
	pipeline, ok := h.pipelines[domain.FeedDomain(input.Domain)]
	if !ok {
		return nil, huma.Error404NotFound("unknown feed domain: " + input.Domain)
	}

	if err := pipeline.Refresh(ctx); err != nil {
		return nil, toHumaError(err)
	}

	records, status := pipeline.Snapshot()

	return &RefreshFeedOutput{
		Body: responses.FeedPageResponse{
			Domain:  input.Domain,
			Page:    0,
			Loading: status.Loading,
			Error:   status.Error,
			HasMore: status.HasMore,
			Records: mappers.Records(records),
		},
	}, nil
}

// ListDomainsOutput defines the output for the ListDomains operation
type ListDomainsOutput struct {
	Body struct {
		Domains []responses.DomainStatusResponse `json:"domains"`
	}
}

// ListDomains handles the GET /domains endpoint
func (h *FeedHandler) ListDomains(ctx context.Context, _ *struct{}) (*ListDomainsOutput, error) {
	out := &ListDomainsOutput{}
	for _, d := range domain.AllDomains() {
		pipeline, ok := h.pipelines[d]
		if !ok {
			continue
		}
		records, status := pipeline.Snapshot()
		out.Body.Domains = append(out.Body.Domains, responses.DomainStatusResponse{
			Domain:   string(d),
			Loading:  status.Loading,
			Error:    status.Error,
			HasMore:  status.HasMore,
			Records:  len(records),
			Interval: pipeline.Interval().String(),
			PageSize: pipeline.PageSize(),
		})
	}
	return out, nil
}
