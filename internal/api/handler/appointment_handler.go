package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petessence/clinic-api/internal/api/metrics"
	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the booking calendar.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create books a new appointment.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveAppointmentRequest  true  "Booking details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req saveAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Save(c.Request().Context(), toSaveAppointmentInput(req, actorID), "")
	if err != nil {
		return observeBookingError(err)
	}

	metrics.AppointmentsSavedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// Update edits an existing appointment. The edited appointment is
// excluded from its own conflict check.
//
// @Summary      Edit an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Appointment ID"
// @Param        body  body      saveAppointmentRequest  true  "Booking details"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req saveAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Save(c.Request().Context(), toSaveAppointmentInput(req, actorID), c.Param("id"))
	if err != nil {
		return observeBookingError(err)
	}

	metrics.AppointmentsSavedTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Toggle flips the appointment's active flag (soft delete / restore).
//
// @Summary      Toggle an appointment's active flag
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appointment ID"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/appointments/{id}/active [patch]
func (h *AppointmentHandler) Toggle(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	appt, err := h.service.ToggleActive(c.Request().Context(), c.Param("id"), actorID)
	if err != nil {
		return observeBookingError(err)
	}

	state := "deactivated"
	if appt.Active {
		state = "activated"
	}
	metrics.AppointmentsToggledTotal.WithLabelValues(state).Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Get returns a single appointment.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appointment ID"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// List returns all appointments, active and inactive.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  appointmentResponse
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentList(items))
}

// Calendar returns the appointments for one day, in insertion order.
//
// @Summary      Get the calendar for a day
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        date  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  calendarDayResponse
// @Failure      422   {object}  map[string]string
// @Router       /v1/calendar/{date} [get]
func (h *AppointmentHandler) Calendar(c echo.Context) error {
	view, err := h.service.CalendarDay(c.Request().Context(), c.Param("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCalendarDayResponse(view))
}

// observeBookingError counts rejected bookings before handing the error
// to the central error handler.
func observeBookingError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSlotConflict):
		metrics.BookingRejectionsTotal.WithLabelValues("conflict").Inc()
	case errors.Is(err, domain.ErrSlotLocked):
		metrics.BookingRejectionsTotal.WithLabelValues("slot_locked").Inc()
	}
	return err
}
