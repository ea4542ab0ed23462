package ports

import "context"

// MapClient talks to the external mapping/places APIs. The API keys are held
// server-side by the implementation and never surface to callers.
type MapClient interface {
	// StaticMap fetches a rendered map image centered on address and returns
	// the raw bytes plus the upstream content type.
	StaticMap(ctx context.Context, address string) ([]byte, string, error)
	// Autocomplete forwards free-text input and returns the upstream JSON
	// payload verbatim.
	Autocomplete(ctx context.Context, input string) ([]byte, error)
}

// GeoService resolves claim addresses into map imagery and relays address
// suggestions.
type GeoService interface {
	MapImage(ctx context.Context, claimID string) ([]byte, string, error)
	Autocomplete(ctx context.Context, input string) ([]byte, error)
}
