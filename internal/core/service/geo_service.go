package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

// GeoService resolves a claim's address into a static map image and relays
// address autocomplete suggestions. Both operations are passthroughs: no
// caching and no retry, a failed upstream call surfaces as an error.
type GeoService struct {
	claims ports.ClaimRepository
	maps   ports.MapClient
	logger zerolog.Logger
}

func NewGeoService(claims ports.ClaimRepository, maps ports.MapClient, logger zerolog.Logger) *GeoService {
	return &GeoService{claims: claims, maps: maps, logger: logger}
}

// MapImage looks up the claim, then fetches a map image centered on its
// stored address. Returns domain.ErrClaimNotFound when the claim is absent.
func (s *GeoService) MapImage(ctx context.Context, claimID string) ([]byte, string, error) {
	claim, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		return nil, "", err
	}

	img, contentType, err := s.maps.StaticMap(ctx, claim.Address)
	if err != nil {
		s.logger.Error().Err(err).Str("claim_id", claimID).Msg("static map fetch failed")
		return nil, "", err
	}
	return img, contentType, nil
}

func (s *GeoService) Autocomplete(ctx context.Context, input string) ([]byte, error) {
	body, err := s.maps.Autocomplete(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Msg("autocomplete fetch failed")
		return nil, err
	}
	return body, nil
}
