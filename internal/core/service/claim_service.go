package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

type ClaimService struct {
	repo   ports.ClaimRepository
	logger zerolog.Logger
}

func NewClaimService(repo ports.ClaimRepository, logger zerolog.Logger) *ClaimService {
	return &ClaimService{repo: repo, logger: logger}
}

// Create persists a new claim. The id is always generated server-side; ids
// supplied by the client are never trusted. No field validation is applied —
// absent fields are stored empty, and identical submissions produce distinct
// records.
func (s *ClaimService) Create(ctx context.Context, input ports.CreateClaimInput) (*domain.Claim, error) {
	claim := &domain.Claim{
		ID:            uuid.NewString(),
		PolicyNumber:  input.PolicyNumber,
		Category:      input.Category,
		Description:   input.Description,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Address:       input.Address,
		DateSubmitted: time.Now().UTC(),
		DateOccurred:  input.DateOccurred,
		Status:        domain.StatusUnprocessed,
	}

	if err := s.repo.Insert(ctx, claim); err != nil {
		s.logger.Error().Err(err).Msg("failed to create claim")
		return nil, err
	}

	s.logger.Info().Str("claim_id", claim.ID).Str("policy_number", claim.PolicyNumber).Msg("claim created")

	return claim, nil
}

func (s *ClaimService) Get(ctx context.Context, id string) (*domain.Claim, error) {
	return s.repo.FindByID(ctx, id)
}

// Search is the strict public search: all three fields must be non-empty and
// are matched exactly.
func (s *ClaimService) Search(ctx context.Context, firstName, lastName, policyNumber string) ([]domain.Claim, error) {
	if firstName == "" || lastName == "" || policyNumber == "" {
		return nil, domain.ErrSearchFieldsMissing
	}

	return s.repo.Find(ctx, ports.ClaimFilter{
		FirstName:    firstName,
		LastName:     lastName,
		PolicyNumber: policyNumber,
	})
}

// SearchWildcard is the insurer search: any empty field matches all values.
func (s *ClaimService) SearchWildcard(ctx context.Context, firstName, lastName, policyNumber string) ([]domain.Claim, error) {
	return s.repo.Find(ctx, ports.ClaimFilter{
		FirstName:    firstName,
		LastName:     lastName,
		PolicyNumber: policyNumber,
		Wildcard:     true,
	})
}

func (s *ClaimService) ListByPolicy(ctx context.Context, policyNumber string) ([]domain.Claim, error) {
	return s.repo.Find(ctx, ports.ClaimFilter{
		PolicyNumber: policyNumber,
		Wildcard:     true,
	})
}
