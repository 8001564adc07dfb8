package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petessence/clinic-api/internal/core/ports"
)

// VaccineHandler handles the vaccine catalog and per-pet dose records.
type VaccineHandler struct {
	service ports.VaccineService
}

func NewVaccineHandler(service ports.VaccineService) *VaccineHandler {
	return &VaccineHandler{service: service}
}

type saveVaccineRequest struct {
	Name    string `json:"name" validate:"required"`
	BrandID string `json:"brand_id"`
}

type recordDoseRequest struct {
	VaccineID  string `json:"vaccine_id"`
	Product    string `json:"product"`
	BrandID    string `json:"brand_id"`
	AppliedAt  string `json:"applied_at" validate:"required"`
	NextDoseAt string `json:"next_dose_at"`
	Notes      string `json:"notes"`
}

func (req recordDoseRequest) toInput(petID string) ports.RecordDoseInput {
	return ports.RecordDoseInput{
		PetID:      petID,
		VaccineID:  req.VaccineID,
		Product:    req.Product,
		BrandID:    req.BrandID,
		AppliedAt:  req.AppliedAt,
		NextDoseAt: req.NextDoseAt,
		Notes:      req.Notes,
	}
}

// CreateVaccine adds a catalog entry.
//
// @Summary      Create a vaccine
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveVaccineRequest  true  "Vaccine details"
// @Success      201   {object}  domain.Vaccine
// @Failure      422   {object}  map[string]string
// @Router       /v1/vaccines [post]
func (h *VaccineHandler) CreateVaccine(c echo.Context) error {
	var req saveVaccineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.service.SaveVaccine(c.Request().Context(), req.Name, req.BrandID, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, v)
}

// UpdateVaccine edits a catalog entry.
//
// @Summary      Update a vaccine
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Vaccine ID"
// @Param        body  body      saveVaccineRequest  true  "Vaccine details"
// @Success      200   {object}  domain.Vaccine
// @Failure      404   {object}  map[string]string
// @Router       /v1/vaccines/{id} [put]
func (h *VaccineHandler) UpdateVaccine(c echo.Context) error {
	var req saveVaccineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.service.SaveVaccine(c.Request().Context(), req.Name, req.BrandID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// ListVaccines returns the vaccine catalog.
//
// @Summary      List vaccines
// @Tags         vaccines
// @Produce      json
// @Security     BearerAuth
// @Param        active  query    bool  false  "Only active entries"
// @Success      200     {array}  domain.Vaccine
// @Router       /v1/vaccines [get]
func (h *VaccineHandler) ListVaccines(c echo.Context) error {
	items, err := h.service.ListVaccines(c.Request().Context(), c.QueryParam("active") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ToggleVaccine flips a vaccine's active flag.
//
// @Summary      Toggle a vaccine's active flag
// @Tags         vaccines
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Vaccine ID"
// @Success      200  {object}  domain.Vaccine
// @Failure      404  {object}  map[string]string
// @Router       /v1/vaccines/{id}/active [patch]
func (h *VaccineHandler) ToggleVaccine(c echo.Context) error {
	v, err := h.service.ToggleVaccineActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// RecordVaccination appends a vaccination dose to a pet's history.
//
// @Summary      Record a vaccination
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Pet ID"
// @Param        body  body      recordDoseRequest  true  "Dose details"
// @Success      201   {object}  domain.VaccinationRecord
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/pets/{id}/vaccinations [post]
func (h *VaccineHandler) RecordVaccination(c echo.Context) error {
	var req recordDoseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.service.RecordVaccination(c.Request().Context(), req.toInput(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

// PetVaccinations returns a pet's vaccination history.
//
// @Summary      List a pet's vaccinations
// @Tags         vaccines
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Pet ID"
// @Success      200  {array}  domain.VaccinationRecord
// @Failure      404  {object} map[string]string
// @Router       /v1/pets/{id}/vaccinations [get]
func (h *VaccineHandler) PetVaccinations(c echo.Context) error {
	items, err := h.service.PetVaccinations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// RecordDeworming appends a deworming dose to a pet's history.
//
// @Summary      Record a deworming
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Pet ID"
// @Param        body  body      recordDoseRequest  true  "Dose details"
// @Success      201   {object}  domain.DewormingRecord
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/pets/{id}/dewormings [post]
func (h *VaccineHandler) RecordDeworming(c echo.Context) error {
	var req recordDoseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.service.RecordDeworming(c.Request().Context(), req.toInput(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

// PetDewormings returns a pet's deworming history.
//
// @Summary      List a pet's dewormings
// @Tags         vaccines
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Pet ID"
// @Success      200  {array}  domain.DewormingRecord
// @Failure      404  {object} map[string]string
// @Router       /v1/pets/{id}/dewormings [get]
func (h *VaccineHandler) PetDewormings(c echo.Context) error {
	items, err := h.service.PetDewormings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
