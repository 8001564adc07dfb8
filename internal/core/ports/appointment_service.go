package ports

import (
	"context"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// SaveAppointmentInput carries the booking form values. Times are "HH:mm",
// the date is "YYYY-MM-DD". Price uses two-digit precision.
type SaveAppointmentInput struct {
	PetID          string
	VeterinarianID string
	Date           string
	StartTime      string
	EndTime        string
	Description    string
	Price          float64
	// ActorID identifies the authenticated user making the change. It is
	// carried into the audit trail, never persisted on the appointment.
	ActorID string
}

// CalendarDayView is the per-date bucket rendered by the calendar screen.
// Items keep the order they were loaded in; each carries its active flag
// for the visual indicator.
type CalendarDayView struct {
	Date  string
	Items []domain.Appointment
}

// AppointmentService owns the no-double-booking invariant.
type AppointmentService interface {
	// Save validates, conflict-checks and persists a booking. A non-empty
	// editingID switches to the edit path: the stored version of that
	// appointment is excluded from the conflict check and CreatedAt is
	// preserved.
	Save(ctx context.Context, input SaveAppointmentInput, editingID string) (*domain.Appointment, error)
	// ToggleActive flips the soft-delete flag. Reactivation re-runs the
	// conflict check; deactivation always succeeds.
	ToggleActive(ctx context.Context, id, actorID string) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	CalendarDay(ctx context.Context, date string) (*CalendarDayView, error)
}

// AppointmentEvent is an audit-trail entry describing a mutation.
type AppointmentEvent struct {
	AppointmentID  string
	VeterinarianID string
	Date           string
	Kind           string // created | updated | activated | deactivated
	ActorID        string
}

// AuditRecorder persists appointment audit events. Implementations are
// invoked asynchronously by the queue dispatcher.
type AuditRecorder interface {
	Record(ctx context.Context, event AppointmentEvent) error
}
