// Package geo is the HTTP client for the external static-map and
// places-autocomplete APIs. The API keys stay server-side; callers only ever
// see the relayed payloads.
package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prestige-worldwide/claims-intake/internal/api/metrics"
)

const (
	defaultStaticMapsURL   = "https://maps.googleapis.com/maps/api/staticmap"
	defaultAutocompleteURL = "https://maps.googleapis.com/maps/api/place/autocomplete/json"

	// Fixed rendering parameters for claim map thumbnails.
	mapZoom = "15"
	mapSize = "400x250"

	requestTimeout = 10 * time.Second
)

// Config captures the settings for the external map APIs. Empty base URLs
// fall back to the Google endpoints; tests point them at a local server.
type Config struct {
	StaticMapsURL   string
	AutocompleteURL string
	MapsKey         string
	PlacesKey       string
}

type Client struct {
	http            *http.Client
	staticMapsURL   string
	autocompleteURL string
	mapsKey         string
	placesKey       string
}

func NewClient(cfg Config) *Client {
	staticMapsURL := cfg.StaticMapsURL
	if staticMapsURL == "" {
		staticMapsURL = defaultStaticMapsURL
	}
	autocompleteURL := cfg.AutocompleteURL
	if autocompleteURL == "" {
		autocompleteURL = defaultAutocompleteURL
	}
	return &Client{
		http:            &http.Client{Timeout: requestTimeout},
		staticMapsURL:   staticMapsURL,
		autocompleteURL: autocompleteURL,
		mapsKey:         cfg.MapsKey,
		placesKey:       cfg.PlacesKey,
	}
}

// StaticMap fetches a rendered map image centered on address and returns the
// raw bytes plus the upstream content type.
func (c *Client) StaticMap(ctx context.Context, address string) ([]byte, string, error) {
	q := url.Values{}
	q.Set("center", address)
	q.Set("zoom", mapZoom)
	q.Set("size", mapSize)
	q.Set("key", c.mapsKey)

	body, contentType, err := c.get(ctx, "static_map", c.staticMapsURL, q)
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = "image/png"
	}
	return body, contentType, nil
}

// Autocomplete forwards input and relays the upstream JSON verbatim.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]byte, error) {
	q := url.Values{}
	q.Set("input", input)
	q.Set("key", c.placesKey)

	body, _, err := c.get(ctx, "autocomplete", c.autocompleteURL, q)
	return body, err
}

func (c *Client) get(ctx context.Context, api, baseURL string, q url.Values) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ExternalRequestDuration.WithLabelValues(api).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalRequestsTotal.WithLabelValues(api, "error").Inc()
		return nil, "", fmt.Errorf("%s request: %w", api, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ExternalRequestsTotal.WithLabelValues(api, "error").Inc()
		return nil, "", fmt.Errorf("%s request: unexpected status %d", api, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ExternalRequestsTotal.WithLabelValues(api, "error").Inc()
		return nil, "", fmt.Errorf("%s response: %w", api, err)
	}

	metrics.ExternalRequestsTotal.WithLabelValues(api, "ok").Inc()
	return body, resp.Header.Get("Content-Type"), nil
}
