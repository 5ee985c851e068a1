package finn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/finn-client/internal/metrics"
)

const (
	tracerName     = "github.com/donaldgifford/finn-client/internal/finn"
	defaultTimeout = 30 * time.Second
	acceptHeader   = "application/atom+xml, application/xml;q=0.9, */*;q=0.1"
)

// HTTPTransport implements Transport with a single GET per call. TLS
// certificates are always verified.
type HTTPTransport struct {
	client      *http.Client
	userAgent   string
	headers     map[string]string
	rateLimiter *RateLimiter
	tracer      trace.Tracer
	meter       metric.Meter
	sent        metric.Int64Counter
}

// TransportOption configures the HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) TransportOption {
	return func(t *HTTPTransport) {
		t.userAgent = ua
	}
}

// WithHeaders merges h into the header set sent with every request.
// Later calls override earlier values for the same header.
func WithHeaders(h map[string]string) TransportOption {
	return func(t *HTTPTransport) {
		maps.Copy(t.headers, h)
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		t.client = hc
	}
}

// WithTimeout sets the timeout of the HTTP client in effect when the option
// is applied.
func WithTimeout(d time.Duration) TransportOption {
	return func(t *HTTPTransport) {
		t.client.Timeout = d
	}
}

// WithRateLimiter makes every Send wait on r before going out.
func WithRateLimiter(r *RateLimiter) TransportOption {
	return func(t *HTTPTransport) {
		t.rateLimiter = r
	}
}

// WithTracer overrides the tracer obtained from the global provider.
func WithTracer(tr trace.Tracer) TransportOption {
	return func(t *HTTPTransport) {
		t.tracer = tr
	}
}

// WithMeter overrides the meter obtained from the global provider.
func WithMeter(m metric.Meter) TransportOption {
	return func(t *HTTPTransport) {
		t.meter = m
	}
}

// NewHTTPTransport creates a transport with a 30 second timeout.
func NewHTTPTransport(opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		client:  &http.Client{Timeout: defaultTimeout},
		headers: map[string]string{},
		tracer:  otel.Tracer(tracerName),
		meter:   otel.Meter(tracerName),
	}
	for _, opt := range opts {
		opt(t)
	}

	sent, err := t.meter.Int64Counter("finn.transport.requests",
		metric.WithDescription("Requests sent to FINN by response status."),
	)
	if err != nil {
		otel.Handle(err)
	}
	t.sent = sent
	return t
}

// Send implements Transport.Send. Any status other than 200 OK is returned
// as an error wrapping ErrUnexpectedStatus.
func (t *HTTPTransport) Send(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, span := t.tracer.Start(ctx, "finn.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", rawURL)),
	)
	defer span.End()

	body, err := t.send(ctx, span, rawURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (t *HTTPTransport) send(ctx context.Context, span trace.Span, rawURL string) ([]byte, error) {
	if t.rateLimiter != nil {
		if err := t.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.APIDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.APIDailyUsage.Set(float64(t.rateLimiter.DailyCount()))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	status := attribute.Int("http.response.status_code", resp.StatusCode)
	span.SetAttributes(status)
	t.sent.Add(ctx, 1, metric.WithAttributes(status))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return body, nil
}
