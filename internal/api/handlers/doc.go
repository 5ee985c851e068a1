// Package handlers implements the HTTP handlers of the finn proxy API. The
// listing endpoints are Huma operations backed by a finn.ListingClient.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
