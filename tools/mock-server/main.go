// Package main implements a mock FINN API server for local development.
// It serves the Atom fixtures from internal/finn/testdata so the CLI and the
// proxy can run without network access to FINN.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const (
	apiKeyHeader = "x-FINN-apikey"
	atomType     = "application/atom+xml; charset=utf-8"
)

type fixtures struct {
	search   []byte
	ad       []byte
	finncode string
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	searchFile := flag.String("search", "internal/finn/testdata/search_feed.xml", "path to search feed fixture")
	adFile := flag.String("ad", "internal/finn/testdata/ad_entry.xml", "path to ad entry fixture")
	finncode := flag.String("finncode", "123456789", "finncode served by the ad endpoint")
	apiKey := flag.String("api-key", "", "require this value in the x-FINN-apikey header")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixtures(*searchFile, *adFile)
	if err != nil {
		logger.Error("failed to load fixtures", "error", err)
		os.Exit(1)
	}
	fx.finncode = *finncode

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock FINN server", "addr", addr, "base_url", "http://localhost"+addr+"/iad/")

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx, *apiKey)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixtures(searchPath, adPath string) (*fixtures, error) {
	search, err := os.ReadFile(searchPath) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading search fixture: %w", err)
	}
	ad, err := os.ReadFile(adPath) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading ad fixture: %w", err)
	}
	return &fixtures{search: search, ad: ad}, nil
}

func newMux(logger *slog.Logger, fx *fixtures, apiKey string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /iad/search/{type}", searchHandler(logger, fx))
	mux.HandleFunc("GET /iad/ad/{type}/{finncode}", adHandler(logger, fx))
	return requireAPIKey(apiKey, mux)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"user_agent", r.UserAgent(),
		)
		next.ServeHTTP(w, r)
	})
}

// requireAPIKey rejects requests without the configured key. An empty key
// disables the check.
func requireAPIKey(key string, next http.Handler) http.Handler {
	if key == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(apiKeyHeader) != key {
			http.Error(w, "missing or invalid API key", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func searchHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", atomType)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(fx.search)
		logger.Info("search", "type", r.PathValue("type"), "params", r.URL.Query())
	}
}

func adHandler(logger *slog.Logger, fx *fixtures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.PathValue("finncode")
		if code != fx.finncode {
			logger.Info("ad not found", "finncode", code)
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", atomType)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(fx.ad)
		logger.Info("ad", "type", r.PathValue("type"), "finncode", code)
	}
}
