package handler

import (
	"time"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

// --- Request / Response types ---

type saveAppointmentRequest struct {
	PetID          string  `json:"pet_id"          validate:"required"`
	VeterinarianID string  `json:"veterinarian_id" validate:"required"`
	Date           string  `json:"date"            validate:"required"`
	StartTime      string  `json:"start_time"      validate:"required"`
	EndTime        string  `json:"end_time"        validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
}

// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type appointmentResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"pet_id"`
	VeterinarianID string    `json:"veterinarian_id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type calendarDayResponse struct {
	Date  string                `json:"date"`
	Items []appointmentResponse `json:"items"`
}

// --- Request → Service input ---

func toSaveAppointmentInput(req saveAppointmentRequest, actorID string) ports.SaveAppointmentInput {
	return ports.SaveAppointmentInput{
		PetID:          req.PetID,
		VeterinarianID: req.VeterinarianID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Description:    req.Description,
		Price:          req.Price,
		ActorID:        actorID,
	}
}

// --- Service result → HTTP response ---

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:             a.ID,
		PetID:          a.PetID,
		VeterinarianID: a.VeterinarianID,
		Date:           a.Date,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		Description:    a.Description,
		Price:          a.Price,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt.UTC(),
		UpdatedAt:      a.UpdatedAt.UTC(),
	}
}

func toAppointmentList(items []domain.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, len(items))
	for i := range items {
		out[i] = toAppointmentResponse(&items[i])
	}
	return out
}

func toCalendarDayResponse(v *ports.CalendarDayView) calendarDayResponse {
	return calendarDayResponse{
		Date:  v.Date,
		Items: toAppointmentList(v.Items),
	}
}
