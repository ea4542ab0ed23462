package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prestige-worldwide/claims-intake/internal/api/metrics"
	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

// ClaimHandler handles HTTP requests for claim operations.
type ClaimHandler struct {
	service ports.ClaimService
}

func NewClaimHandler(service ports.ClaimService) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// Create handles POST /claims.
//
// @Summary      Submit a new claim
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        body  body      createClaimRequest  true  "Claim fields"
// @Success      200   {object}  createClaimResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /claims [post]
func (h *ClaimHandler) Create(c echo.Context) error {
	var req createClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	claim, err := h.service.Create(c.Request().Context(), ports.CreateClaimInput{
		PolicyNumber: req.PolicyNumber,
		Category:     req.Category,
		Description:  req.Description,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		DateOccurred: req.DateOccurred,
	})
	if err != nil {
		return err
	}

	metrics.ClaimsCreatedTotal.WithLabelValues(claim.Category).Inc()

	return c.JSON(http.StatusOK, createClaimResponse{
		Status: http.StatusOK,
		ID:     claim.ID,
	})
}

// Get handles GET /claims/:id.
//
// @Summary      Fetch a claim by id
// @Tags         claims
// @Produce      json
// @Param        id   path      string  true  "Claim UUID"
// @Success      200  {object}  domain.Claim
// @Failure      404  {object}  errorResponse
// @Router       /claims/{id} [get]
func (h *ClaimHandler) Get(c echo.Context) error {
	claim, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claim)
}

// Search handles GET /claims — the strict public search. All three query
// params are required; the error body is plain text, which is what the
// intake frontend expects on this route.
//
// @Summary      Search claims by exact claimant and policy match
// @Tags         claims
// @Produce      json
// @Param        firstName     query  string  true  "Claimant first name"
// @Param        lastName      query  string  true  "Claimant last name"
// @Param        policyNumber  query  string  true  "Policy number"
// @Success      200  {array}   domain.Claim
// @Failure      400  {string}  string
// @Router       /claims [get]
func (h *ClaimHandler) Search(c echo.Context) error {
	var q searchClaimsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return c.String(http.StatusBadRequest, "required params missing")
	}

	claims, err := h.service.Search(c.Request().Context(), q.FirstName, q.LastName, q.PolicyNumber)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.WithLabelValues("exact").Inc()
	return c.JSON(http.StatusOK, claims)
}

// InsurerSearch handles GET /insurer/claims — the authenticated wildcard
// search. Reaching this handler proves the session cookie verified; which
// account the token names is deliberately not checked. A param supplied
// empty ("?firstName=") binds to the same zero value as an omitted one, so
// both wildcard.
//
// @Summary      Search claims with optional filters
// @Tags         claims
// @Produce      json
// @Param        firstName     query  string  false  "Claimant first name"
// @Param        lastName      query  string  false  "Claimant last name"
// @Param        policyNumber  query  string  false  "Policy number"
// @Success      200  {array}   domain.Claim
// @Failure      401  {object}  errorResponse
// @Router       /insurer/claims [get]
func (h *ClaimHandler) InsurerSearch(c echo.Context) error {
	var q insurerSearchQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	claims, err := h.service.SearchWildcard(c.Request().Context(), q.FirstName, q.LastName, q.PolicyNumber)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.WithLabelValues("wildcard").Inc()
	return c.JSON(http.StatusOK, claims)
}

// ListByPolicy handles GET /claims/search/:policyNumber.
//
// @Summary      List claims for one policy number
// @Tags         claims
// @Produce      json
// @Param        policyNumber  path  string  true  "Policy number"
// @Success      200  {array}  domain.Claim
// @Router       /claims/search/{policyNumber} [get]
func (h *ClaimHandler) ListByPolicy(c echo.Context) error {
	claims, err := h.service.ListByPolicy(c.Request().Context(), c.Param("policyNumber"))
	if err != nil {
		return err
	}

	metrics.SearchesTotal.WithLabelValues("policy").Inc()
	return c.JSON(http.StatusOK, claims)
}
