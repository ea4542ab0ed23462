package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prestige-worldwide/claims-intake/internal/api/metrics"
	"github.com/prestige-worldwide/claims-intake/internal/api/middleware"
	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

// sessionTTL is both the token expiry and the cookie lifetime.
const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password"  validate:"required"`
	Email    string `json:"email"`
}

type loginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// Register creates a new credential record.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.authService.Register(c.Request().Context(), req.UserName, req.Password, req.Email); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		}
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// Login verifies credentials and issues a session token. The token travels
// twice: as an HttpOnly cookie and as the raw response body. A wrong
// password answers 200 with the body "don't match" — a long-standing
// contract the intake frontend keys off, so it stays.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Failure      429  {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.authService.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginAttemptsTotal.WithLabelValues("no_user").Inc()
			return c.String(http.StatusBadRequest, "no user found")
		case errors.Is(err, domain.ErrPasswordMismatch):
			metrics.LoginAttemptsTotal.WithLabelValues("mismatch").Inc()
			return c.String(http.StatusOK, "don't match")
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
	})
	// Let cross-origin frontends observe the cookie being set.
	c.Response().Header().Set("Access-Control-Expose-Headers", "Set-Cookie")

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.String(http.StatusOK, token)
}

// Logout clears the session cookie. It answers with a confirmation whether
// or not a session was present.
//
// @Summary      Logout
// @Tags         auth
// @Produce      plain
// @Success      200  {string}  string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.String(http.StatusOK, "logged out")
}
