package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// Search runs a search through the proxy. A 404 is reported as (nil, nil),
// the same way the direct FINN client reports an absent response.
func (c *Client) Search(ctx context.Context, adType string, params url.Values) (*domain.ResultSet, error) {
	path := "/api/v1/search/" + url.PathEscape(adType)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var rs domain.ResultSet
	if err := c.get(ctx, path, &rs); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("searching %s: %w", adType, err)
	}
	return &rs, nil
}

// GetObject fetches one ad through the proxy. A 404 is reported as
// (nil, nil).
func (c *Client) GetObject(ctx context.Context, adType, finncode string) (*domain.Listing, error) {
	path := fmt.Sprintf("/api/v1/ad/%s/%s", url.PathEscape(adType), url.PathEscape(finncode))

	var l domain.Listing
	if err := c.get(ctx, path, &l); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting %s/%s: %w", adType, finncode, err)
	}
	return &l, nil
}
