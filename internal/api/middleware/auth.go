package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TokenVerifier checks a session token and returns the credential id it was
// issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// CookieName is the session cookie the login handler sets and this
// middleware reads.
const CookieName = "jwt"

// CookieAuth validates the session token carried in the jwt cookie and
// injects the credential id into context. No account or role lookup happens
// here: a valid signature is the entire gate.
func CookieAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}

			credentialID, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}

			c.Set("credential_id", credentialID)
			return next(c)
		}
	}
}
