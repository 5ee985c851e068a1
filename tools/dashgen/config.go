package main

import "errors"

// KnownMetrics is the set of metric names exported by finn-client plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"finn_http_request_duration_seconds": true,
	"finn_http_requests_total":           true,
	"finn_healthz_up":                    true,

	// FINN API metrics.
	"finn_api_requests_total":           true,
	"finn_api_request_duration_seconds": true,
	"finn_api_daily_usage":              true,
	"finn_api_daily_limit_hits_total":   true,

	// Parsing metrics.
	"finn_parse_errors_total":    true,
	"finn_listings_parsed_total": true,

	// Recording rules.
	"finn:http_requests:rate5m":   true,
	"finn:http_errors:rate5m":     true,
	"finn:api_requests:rate5m":    true,
	"finn:api_failures:rate5m":    true,
	"finn:listings_parsed:rate5m": true,
	"finn:parse_errors:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
