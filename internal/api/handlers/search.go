package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/finn-client/internal/finn"
	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// SearchHandler proxies searches to FINN.
type SearchHandler struct {
	client finn.ListingClient
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(client finn.ListingClient) *SearchHandler {
	return &SearchHandler{client: client}
}

// SearchInput is the request for the search endpoint. Every query parameter
// is forwarded to FINN unchanged.
type SearchInput struct {
	Type string `path:"type" doc:"FINN ad type" example:"realestate-homes"`

	params url.Values
}

// Resolve captures the raw query string, which has no fixed schema.
func (i *SearchInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.params = u.Query()
	return nil
}

// SearchOutput is the response for the search endpoint.
type SearchOutput struct {
	Body *domain.ResultSet
}

// Search runs a FINN search for the requested ad type.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	rs, err := h.client.Search(ctx, input.Type, input.params)
	if err != nil {
		return nil, upstreamError(err)
	}
	if rs == nil {
		return nil, huma.Error404NotFound("no response from FINN for search " + input.Type)
	}

	return &SearchOutput{Body: rs}, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-ads",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/{type}",
		Summary:     "Search FINN ads",
		Description: "Forwards all query parameters to the FINN search endpoint and returns the parsed result set.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Search)
}

// upstreamError maps a client error to a 502. Malformed documents name the
// parser that rejected them.
func upstreamError(err error) error {
	var perr *finn.ParseError
	if errors.As(err, &perr) {
		return huma.Error502BadGateway("FINN returned malformed XML", perr)
	}
	return huma.Error502BadGateway("FINN request failed", err)
}
