package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petessence/clinic-api/internal/core/ports"
)

// PetHandler handles the pet registry endpoints.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

type savePetRequest struct {
	Name      string   `json:"name"       validate:"required"`
	OwnerIDs  []string `json:"owner_ids"  validate:"required,min=1"`
	SpeciesID string   `json:"species_id" validate:"required"`
	BreedID   string   `json:"breed_id"`
	BirthDate string   `json:"birth_date"`
	WeightKg  float64  `json:"weight_kg"`
}

func toSavePetInput(req savePetRequest) ports.SavePetInput {
	return ports.SavePetInput{
		Name:      req.Name,
		OwnerIDs:  req.OwnerIDs,
		SpeciesID: req.SpeciesID,
		BreedID:   req.BreedID,
		BirthDate: req.BirthDate,
		WeightKg:  req.WeightKg,
	}
}

// Create registers a new pet.
//
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      savePetRequest  true  "Pet details"
// @Success      201   {object}  domain.Pet
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req savePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.service.Save(c.Request().Context(), toSavePetInput(req), "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

// Update edits an existing pet. The active flag is left untouched.
//
// @Summary      Update a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Pet ID"
// @Param        body  body      savePetRequest  true  "Pet details"
// @Success      200   {object}  domain.Pet
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	var req savePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.service.Save(c.Request().Context(), toSavePetInput(req), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Get returns a single pet.
//
// @Summary      Get a pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Pet ID"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  map[string]string
// @Router       /v1/pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	pet, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// List returns pets matching the optional query filters.
//
// @Summary      List pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        name        query     string  false  "Case-insensitive name substring"
// @Param        species_id  query     string  false  "Species filter"
// @Param        breed_id    query     string  false  "Breed filter"
// @Param        owner_id    query     string  false  "Owner filter"
// @Param        active      query     bool    false  "Active flag filter"
// @Success      200         {array}   domain.Pet
// @Router       /v1/pets [get]
func (h *PetHandler) List(c echo.Context) error {
	filter := ports.PetFilter{
		Name:      c.QueryParam("name"),
		SpeciesID: c.QueryParam("species_id"),
		BreedID:   c.QueryParam("breed_id"),
		OwnerID:   c.QueryParam("owner_id"),
	}
	if raw := c.QueryParam("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	pets, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// Toggle flips a pet's active flag.
//
// @Summary      Toggle a pet's active flag
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Pet ID"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  map[string]string
// @Router       /v1/pets/{id}/active [patch]
func (h *PetHandler) Toggle(c echo.Context) error {
	pet, err := h.service.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}
