package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
)

type stubCredentialRepo struct {
	byUserName map[string]*domain.Credential
	insertErr  error
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{byUserName: make(map[string]*domain.Credential)}
}

func (r *stubCredentialRepo) Insert(_ context.Context, cred *domain.Credential) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *cred
	r.byUserName[cred.UserName] = &clone
	return nil
}

func (r *stubCredentialRepo) FindByUserName(_ context.Context, userName string) (*domain.Credential, error) {
	cred, ok := r.byUserName[userName]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *cred
	return &clone, nil
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	cred, err := svc.Register(context.Background(), "alice", "pass123", "alice@example.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if cred.PasswordHash == "pass123" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if _, err := uuid.Parse(cred.ID); err != nil {
		t.Fatalf("credential id is not a valid UUID: %q", cred.ID)
	}
}

func TestAuthService_Register_RepoError(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.insertErr = errors.New("db unavailable")
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob", "pass", "bob@example.com"); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	cred, err := svc.Register(context.Background(), "carol", "s3cret", "carol@example.com")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != cred.ID {
		t.Fatalf("expected sub %q, got %v", cred.ID, claims["sub"])
	}
}

func TestAuthService_Login_PasswordMismatch(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "dave@example.com")
	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_VerifyToken_RoundTrip(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	cred, _ := svc.Register(context.Background(), "erin", "pw", "erin@example.com")
	token, err := svc.Login(context.Background(), "erin", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	id, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if id != cred.ID {
		t.Fatalf("expected credential id %q, got %q", cred.ID, id)
	}
}

// Possession of a validly signed token is the whole gate: a token naming an
// account that does not exist still verifies.
func TestAuthService_VerifyToken_NoAccountCheck(t *testing.T) {
	svc := NewAuthService(newStubCredentialRepo(), "secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "no-such-account",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	id, err := svc.VerifyToken(signed)
	if err != nil {
		t.Fatalf("expected valid signature to pass, got %v", err)
	}
	if id != "no-such-account" {
		t.Fatalf("expected embedded id back, got %q", id)
	}
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	svc := NewAuthService(newStubCredentialRepo(), "secret", time.Hour)

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("garbage token: expected ErrUnauthenticated, got %v", err)
	}

	// Signed with a different secret.
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "x",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := tkn.SignedString([]byte("other-secret"))
	if _, err := svc.VerifyToken(signed); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("wrong secret: expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	svc := NewAuthService(newStubCredentialRepo(), "secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "x",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, _ := tkn.SignedString([]byte("secret"))
	if _, err := svc.VerifyToken(signed); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expired token: expected ErrUnauthenticated, got %v", err)
	}
}
