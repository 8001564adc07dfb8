package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

// UserHandler handles user administration and the veterinarian picker.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone"`
	Role  string `json:"role"  validate:"required,oneof=veterinarian staff client"`
}

// List returns users, optionally filtered by role and active flag.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Role filter (veterinarian|staff|client)"
// @Param        active  query     bool    false  "Only active accounts"
// @Success      200     {array}   domain.User
// @Failure      422     {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	role := domain.Role(c.QueryParam("role"))
	activeOnly := c.QueryParam("active") == "true"

	users, err := h.service.List(c.Request().Context(), role, activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update edits a user's profile fields.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.Phone, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Toggle flips a user's active flag.
//
// @Summary      Toggle a user's active flag
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id}/active [patch]
func (h *UserHandler) Toggle(c echo.Context) error {
	user, err := h.service.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Veterinarians returns the active veterinarians for the booking form picker.
//
// @Summary      List active veterinarians
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /v1/veterinarians [get]
func (h *UserHandler) Veterinarians(c echo.Context) error {
	vets, err := h.service.Veterinarians(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vets)
}
