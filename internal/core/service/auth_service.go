package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

// bcryptCost matches the cost the credential collection was populated with.
const bcryptCost = 10

// AuthService implements registration, login, and session token verification.
type AuthService struct {
	repo      ports.CredentialRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.CredentialRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, userName, password, email string) (*domain.Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{
		ID:           uuid.NewString(),
		UserName:     userName,
		PasswordHash: string(hash),
		Email:        email,
	}

	if err := s.repo.Insert(ctx, cred); err != nil {
		return nil, err
	}
	return cred, nil
}

func (s *AuthService) Login(ctx context.Context, userName, password string) (string, error) {
	cred, err := s.repo.FindByUserName(ctx, userName)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrPasswordMismatch
	}

	token, err := s.generateToken(cred)
	if err != nil {
		return "", err
	}

	return token, nil
}

// VerifyToken validates signature and expiry and returns the credential id
// the token was issued for. The id is not resolved against the credential
// collection: any validly signed token passes.
func (s *AuthService) VerifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}

func (s *AuthService) generateToken(cred *domain.Credential) (string, error) {
	claims := jwt.MapClaims{
		"sub": cred.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
