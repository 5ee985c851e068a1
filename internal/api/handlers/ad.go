package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/finn-client/internal/finn"
	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// AdHandler proxies single-ad lookups to FINN.
type AdHandler struct {
	client finn.ListingClient
}

// NewAdHandler creates a new AdHandler.
func NewAdHandler(client finn.ListingClient) *AdHandler {
	return &AdHandler{client: client}
}

// GetAdInput identifies one ad.
type GetAdInput struct {
	Type     string `path:"type" doc:"FINN ad type" example:"realestate-homes"`
	Finncode string `path:"finncode" doc:"FINN ad code" example:"123456789"`
}

// GetAdOutput is the response for the ad endpoint.
type GetAdOutput struct {
	Body *domain.Listing
}

// GetAd fetches one ad by its finncode.
func (h *AdHandler) GetAd(ctx context.Context, input *GetAdInput) (*GetAdOutput, error) {
	l, err := h.client.GetObject(ctx, input.Type, input.Finncode)
	if err != nil {
		return nil, upstreamError(err)
	}
	if l == nil {
		return nil, huma.Error404NotFound("no response from FINN for ad " + input.Type + "/" + input.Finncode)
	}

	return &GetAdOutput{Body: l}, nil
}

// RegisterAdRoutes registers ad endpoints with the Huma API.
func RegisterAdRoutes(api huma.API, h *AdHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ad",
		Method:      http.MethodGet,
		Path:        "/api/v1/ad/{type}/{finncode}",
		Summary:     "Get a FINN ad",
		Description: "Fetches one ad from FINN and returns the parsed listing.",
		Tags:        []string{"ads"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.GetAd)
}
