package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
)

type stubVerifier struct {
	acceptToken  string
	credentialID string
}

func (v *stubVerifier) VerifyToken(token string) (string, error) {
	if token == v.acceptToken {
		return v.credentialID, nil
	}
	return "", domain.ErrUnauthenticated
}

func newAuthMiddlewareContext(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/insurer/claims", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCookieAuth_ValidToken(t *testing.T) {
	verifier := &stubVerifier{acceptToken: "good-token", credentialID: "cred-1"}
	c, _ := newAuthMiddlewareContext(&http.Cookie{Name: CookieName, Value: "good-token"})

	called := false
	mw := CookieAuth(verifier)
	err := mw(func(c echo.Context) error {
		called = true
		if c.Get("credential_id") != "cred-1" {
			t.Fatal("credential_id not set")
		}
		return nil
	})(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("next handler was not called")
	}
}

func TestCookieAuth_MissingCookie(t *testing.T) {
	mw := CookieAuth(&stubVerifier{acceptToken: "good-token"})
	c, _ := newAuthMiddlewareContext(nil)

	err := mw(func(c echo.Context) error {
		t.Fatal("next handler must not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestCookieAuth_InvalidToken(t *testing.T) {
	mw := CookieAuth(&stubVerifier{acceptToken: "good-token"})
	c, _ := newAuthMiddlewareContext(&http.Cookie{Name: CookieName, Value: "forged"})

	err := mw(func(c echo.Context) error {
		t.Fatal("next handler must not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
