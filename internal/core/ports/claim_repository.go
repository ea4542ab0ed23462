package ports

import (
	"context"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
)

// ClaimFilter carries the claimant/policy query for claim searches.
// In exact mode every populated field must match the stored value verbatim.
// In wildcard mode an empty field matches any value.
type ClaimFilter struct {
	FirstName    string
	LastName     string
	PolicyNumber string
	Wildcard     bool
}

// ClaimRepository defines persistence operations for claim records.
type ClaimRepository interface {
	Insert(ctx context.Context, claim *domain.Claim) error
	// FindByID retrieves a claim by its UUID primary key.
	FindByID(ctx context.Context, id string) (*domain.Claim, error)
	// Find returns every claim matching filter. A zero-match query yields an
	// empty slice, never an error.
	Find(ctx context.Context, filter ClaimFilter) ([]domain.Claim, error)
}
