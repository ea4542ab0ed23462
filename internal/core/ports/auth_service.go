package ports

import (
	"context"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, userName, password, email string) (*domain.Credential, error)
	// Login returns a signed session token on success,
	// domain.ErrUserNotFound when no credential matches userName, and
	// domain.ErrPasswordMismatch when the password does not verify.
	Login(ctx context.Context, userName, password string) (string, error)
	// VerifyToken checks signature and expiry only and returns the embedded
	// credential id. No account lookup is performed: possession of a validly
	// signed token is the whole check.
	VerifyToken(token string) (string, error)
}
