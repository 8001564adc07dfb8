package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

// CatalogHandler handles the reference-data endpoints. The :kind path
// segment selects species, breeds or brands.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type createCatalogItemRequest struct {
	Name      string `json:"name" validate:"required"`
	SpeciesID string `json:"species_id"`
}

func catalogKind(c echo.Context) (domain.CatalogKind, error) {
	switch c.Param("kind") {
	case "species":
		return domain.CatalogSpecies, nil
	case "breeds":
		return domain.CatalogBreed, nil
	case "brands":
		return domain.CatalogBrand, nil
	}
	return "", echo.NewHTTPError(http.StatusNotFound, "unknown catalog")
}

// Create adds a reference-data entry.
//
// @Summary      Create a catalog entry
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string                    true  "Catalog (species|breeds|brands)"
// @Param        body  body      createCatalogItemRequest  true  "Entry details"
// @Success      201   {object}  domain.CatalogItem
// @Failure      422   {object}  map[string]string
// @Router       /v1/catalog/{kind} [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	kind, err := catalogKind(c)
	if err != nil {
		return err
	}

	var req createCatalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), kind, req.Name, req.SpeciesID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List returns the entries of one catalog.
//
// @Summary      List catalog entries
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        kind    path     string  true   "Catalog (species|breeds|brands)"
// @Param        active  query    bool    false  "Only active entries"
// @Success      200     {array}  domain.CatalogItem
// @Router       /v1/catalog/{kind} [get]
func (h *CatalogHandler) List(c echo.Context) error {
	kind, err := catalogKind(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), kind, c.QueryParam("active") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Toggle flips a catalog entry's active flag.
//
// @Summary      Toggle a catalog entry's active flag
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Catalog (species|breeds|brands)"
// @Param        id    path      string  true  "Entry ID"
// @Success      200   {object}  domain.CatalogItem
// @Failure      404   {object}  map[string]string
// @Router       /v1/catalog/{kind}/{id}/active [patch]
func (h *CatalogHandler) Toggle(c echo.Context) error {
	kind, err := catalogKind(c)
	if err != nil {
		return err
	}

	item, err := h.service.ToggleActive(c.Request().Context(), kind, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
