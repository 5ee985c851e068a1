// Package finn provides a client for the FINN real-estate listings API. It
// fetches Atom documents over a pluggable Transport and maps them onto the
// records in pkg/types.
package finn

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/finn-client/internal/metrics"
	"github.com/donaldgifford/finn-client/pkg/logger"
	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// DefaultBaseURL is the public FINN API root.
const DefaultBaseURL = "https://cache.api.finn.no/iad/"

const (
	endpointSearch = "search"
	endpointAd     = "ad"
)

// Transport fetches the body of a URL. Any failure, including a non-200
// status, is reported as an error.
type Transport interface {
	Send(ctx context.Context, url string) ([]byte, error)
}

// ListingClient is the read API of the FINN client.
type ListingClient interface {
	Search(ctx context.Context, adType string, params url.Values) (*domain.ResultSet, error)
	GetObject(ctx context.Context, adType, finncode string) (*domain.Listing, error)
}

// Client composes a Transport with the feed and entry parsers. It holds no
// per-request state and is safe for concurrent use.
type Client struct {
	transport Transport
	baseURL   string
	log       *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL. A trailing slash is added when
// missing.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/") + "/"
	}
}

// WithLogger sets the logger used for transport failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Client sending requests through t.
func NewClient(t Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		baseURL:   DefaultBaseURL,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a search for adType with the given query parameters. It
// returns nil, nil when FINN yields no body.
func (c *Client) Search(
	ctx context.Context,
	adType string,
	params url.Values,
) (*domain.ResultSet, error) {
	u := c.baseURL + "search/" + adType + "?" + params.Encode()

	body := c.fetch(ctx, endpointSearch, u)
	if body == nil {
		return nil, nil
	}

	rs, err := ParseResultSet(body)
	if err != nil {
		metrics.ParseErrorsTotal.WithLabelValues("feed").Inc()
		metrics.APIRequestsTotal.WithLabelValues(endpointSearch, metrics.OutcomeParseError).Inc()
		return nil, fmt.Errorf("searching %s: %w", adType, err)
	}

	metrics.APIRequestsTotal.WithLabelValues(endpointSearch, metrics.OutcomeOK).Inc()
	metrics.ListingsParsedTotal.Add(float64(len(rs.Results)))
	c.log.Debug("search parsed",
		"type", adType,
		"results", len(rs.Results),
	)

	return rs, nil
}

// GetObject fetches one ad by its finncode. It returns nil, nil when FINN
// yields no body.
func (c *Client) GetObject(
	ctx context.Context,
	adType, finncode string,
) (*domain.Listing, error) {
	u := c.baseURL + "ad/" + adType + "/" + finncode

	body := c.fetch(ctx, endpointAd, u)
	if body == nil {
		return nil, nil
	}

	l, err := ParseListing(body)
	if err != nil {
		metrics.ParseErrorsTotal.WithLabelValues("entry").Inc()
		metrics.APIRequestsTotal.WithLabelValues(endpointAd, metrics.OutcomeParseError).Inc()
		return nil, fmt.Errorf("getting %s/%s: %w", adType, finncode, err)
	}

	metrics.APIRequestsTotal.WithLabelValues(endpointAd, metrics.OutcomeOK).Inc()
	metrics.ListingsParsedTotal.Inc()

	return l, nil
}

// fetch sends u and returns the body, or nil when the transport failed or
// returned nothing. Failures are logged, not returned.
func (c *Client) fetch(ctx context.Context, endpoint, u string) []byte {
	start := time.Now()
	body, err := c.transport.Send(ctx, u)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil || len(body) == 0 {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeUnavailable).Inc()
		c.log.Warn("no response from FINN",
			"url", u,
			"err", err,
		)
		return nil
	}

	return body
}
