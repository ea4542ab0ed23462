package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

// GeoHandler serves the external map API passthrough routes.
type GeoHandler struct {
	service ports.GeoService
}

func NewGeoHandler(service ports.GeoService) *GeoHandler {
	return &GeoHandler{service: service}
}

// MapImage handles GET /claims/map/:id — streams the static map image for a
// claim's address.
//
// @Summary      Map image for a claim address
// @Tags         geo
// @Produce      png
// @Param        id   path  string  true  "Claim UUID"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /claims/map/{id} [get]
func (h *GeoHandler) MapImage(c echo.Context) error {
	img, contentType, err := h.service.MapImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, img)
}

// Autocomplete handles GET /address/:input — relays the upstream suggestion
// payload verbatim.
//
// @Summary      Address autocomplete suggestions
// @Tags         geo
// @Produce      json
// @Param        input  path  string  true  "Free-text address input"
// @Success      200    {object}  map[string]any
// @Router       /address/{input} [get]
func (h *GeoHandler) Autocomplete(c echo.Context) error {
	body, err := h.service.Autocomplete(c.Request().Context(), c.Param("input"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, body)
}
