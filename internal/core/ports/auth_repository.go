package ports

import (
	"context"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
)

// CredentialRepository defines the interface for login credential persistence.
type CredentialRepository interface {
	Insert(ctx context.Context, cred *domain.Credential) error
	FindByUserName(ctx context.Context, userName string) (*domain.Credential, error)
}
