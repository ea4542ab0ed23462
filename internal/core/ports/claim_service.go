package ports

import (
	"context"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
)

// CreateClaimInput carries the client-supplied claim fields. None of them are
// required; absent fields are stored empty, matching the intake contract.
type CreateClaimInput struct {
	PolicyNumber string
	Category     string
	Description  string
	FirstName    string
	LastName     string
	Address      string
	DateOccurred string
}

// ClaimService defines use-case operations for claim records.
type ClaimService interface {
	// Create persists a new claim with a server-assigned UUID, submission
	// timestamp, and initial status.
	Create(ctx context.Context, input CreateClaimInput) (*domain.Claim, error)
	Get(ctx context.Context, id string) (*domain.Claim, error)
	// Search requires all three fields to be non-empty and matches them
	// exactly; returns domain.ErrSearchFieldsMissing otherwise.
	Search(ctx context.Context, firstName, lastName, policyNumber string) ([]domain.Claim, error)
	// SearchWildcard treats empty fields as match-anything.
	SearchWildcard(ctx context.Context, firstName, lastName, policyNumber string) ([]domain.Claim, error)
	ListByPolicy(ctx context.Context, policyNumber string) ([]domain.Claim, error)
}
