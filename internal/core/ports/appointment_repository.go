package ports

import (
	"context"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
// The document store has no uniqueness or exclusion constraints; the
// no-overlap invariant is enforced entirely by the service layer.
type AppointmentRepository interface {
	Insert(ctx context.Context, a *domain.Appointment) error
	Update(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// FindForVetOnDate returns every appointment (active or not) of one
	// veterinarian on one calendar date, the snapshot the conflict check
	// runs against.
	FindForVetOnDate(ctx context.Context, vetID, date string) ([]domain.Appointment, error)
	// FindByDate returns all appointments on a date, in insertion order.
	FindByDate(ctx context.Context, date string) ([]domain.Appointment, error)
	FindAll(ctx context.Context) ([]domain.Appointment, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// SlotLocker guards the conflict-check-then-write window for one
// veterinarian/date pair. It narrows, but does not eliminate, the
// concurrent double-booking race described in the service docs.
type SlotLocker interface {
	// Acquire returns false when another writer currently holds the lock.
	Acquire(ctx context.Context, vetID, date string) (bool, error)
	Release(ctx context.Context, vetID, date string) error
}
