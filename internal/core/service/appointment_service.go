package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

// AuditQueue is the asynchronous sink for appointment audit events.
type AuditQueue interface {
	Enqueue(event ports.AppointmentEvent)
}

// AppointmentService enforces the no-double-booking invariant: for a fixed
// veterinarian and date, active appointments never overlap.
//
// The conflict check runs against a fresh read of the veterinarian's
// appointments for the target date, taken while holding an advisory slot
// lock. Without a storage-level exclusion constraint this still leaves a
// window when the lock store is unavailable or a lock expires mid-write;
// the residual race is accepted and logged rather than hidden.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	locks  ports.SlotLocker
	audit  AuditQueue
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, locks ports.SlotLocker, audit AuditQueue, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, locks: locks, audit: audit, logger: logger}
}

// Save validates, normalises, conflict-checks and persists a booking.
// A non-empty editingID switches to the edit path: the stored version of
// the appointment is excluded from the conflict check, CreatedAt is
// preserved, and the record is re-activated (matching the booking form,
// which always submits an active appointment).
func (s *AppointmentService) Save(ctx context.Context, input ports.SaveAppointmentInput, editingID string) (*domain.Appointment, error) {
	normalized, startMin, endMin, err := normalizeBooking(input)
	if err != nil {
		return nil, err
	}

	release, err := s.lockSlot(ctx, normalized.VeterinarianID, normalized.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.repo.FindForVetOnDate(ctx, normalized.VeterinarianID, normalized.Date)
	if err != nil {
		s.logger.Error().Err(err).Str("veterinarian_id", normalized.VeterinarianID).Msg("failed to load appointments for conflict check")
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	if conflict := domain.FindConflict(snapshot, normalized.VeterinarianID, normalized.Date, startMin, endMin, editingID); conflict != nil {
		s.logger.Info().
			Str("veterinarian_id", normalized.VeterinarianID).
			Str("date", normalized.Date).
			Str("conflicting_id", conflict.ID).
			Msg("booking rejected: slot conflict")
		return nil, fmt.Errorf("%w: %s-%s overlaps %s-%s",
			domain.ErrSlotConflict, normalized.StartTime, normalized.EndTime, conflict.StartTime, conflict.EndTime)
	}

	if editingID != "" {
		return s.update(ctx, normalized, editingID, input.ActorID)
	}
	return s.insert(ctx, normalized, input.ActorID)
}

func (s *AppointmentService) insert(ctx context.Context, a *domain.Appointment, actorID string) (*domain.Appointment, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.repo.Insert(ctx, a); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert appointment")
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	s.logger.Info().
		Str("appointment_id", a.ID).
		Str("veterinarian_id", a.VeterinarianID).
		Str("date", a.Date).
		Str("slot", a.StartTime+"-"+a.EndTime).
		Msg("appointment created")
	s.enqueueAudit(a, "created", actorID)
	return a, nil
}

func (s *AppointmentService) update(ctx context.Context, a *domain.Appointment, id, actorID string) (*domain.Appointment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load appointment %s: %w", id, err)
	}

	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id).Msg("failed to update appointment")
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.logger.Info().
		Str("appointment_id", a.ID).
		Str("veterinarian_id", a.VeterinarianID).
		Str("date", a.Date).
		Msg("appointment updated")
	s.enqueueAudit(a, "updated", actorID)
	return a, nil
}

// ToggleActive flips the soft-delete flag. Deactivation always succeeds.
// Reactivation re-runs the conflict check against the current snapshot:
// silently restoring a cancelled appointment into a slot booked in the
// meantime would reintroduce exactly the double-booking this service
// exists to prevent.
func (s *AppointmentService) ToggleActive(ctx context.Context, id, actorID string) (*domain.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load appointment %s: %w", id, err)
	}

	if !a.Active {
		release, err := s.lockSlot(ctx, a.VeterinarianID, a.Date)
		if err != nil {
			return nil, err
		}
		defer release()

		startMin, err := domain.MinutesOfDay(a.StartTime)
		if err != nil {
			return nil, domain.NewValidationError("start_time", "stored time is malformed")
		}
		endMin, err := domain.MinutesOfDay(a.EndTime)
		if err != nil {
			return nil, domain.NewValidationError("end_time", "stored time is malformed")
		}

		snapshot, err := s.repo.FindForVetOnDate(ctx, a.VeterinarianID, a.Date)
		if err != nil {
			return nil, fmt.Errorf("load appointments: %w", err)
		}
		if conflict := domain.FindConflict(snapshot, a.VeterinarianID, a.Date, startMin, endMin, a.ID); conflict != nil {
			return nil, fmt.Errorf("%w: slot now taken by %s-%s", domain.ErrSlotConflict, conflict.StartTime, conflict.EndTime)
		}
	}

	if err := s.repo.SetActive(ctx, id, !a.Active); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id).Msg("failed to toggle appointment")
		return nil, fmt.Errorf("toggle appointment: %w", err)
	}
	a.Active = !a.Active
	a.UpdatedAt = time.Now().UTC()

	kind := "deactivated"
	if a.Active {
		kind = "activated"
	}
	s.logger.Info().Str("appointment_id", id).Bool("active", a.Active).Msg("appointment toggled")
	s.enqueueAudit(a, kind, actorID)
	return a, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.FindAll(ctx)
}

// CalendarDay returns the appointments whose date exactly matches the
// displayed day, in insertion order.
func (s *AppointmentService) CalendarDay(ctx context.Context, date string) (*ports.CalendarDayView, error) {
	normalized, err := normalizeDate(date)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be a valid YYYY-MM-DD date")
	}

	items, err := s.repo.FindByDate(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("load calendar day: %w", err)
	}
	return &ports.CalendarDayView{Date: normalized, Items: items}, nil
}

// lockSlot acquires the advisory lock for a veterinarian/date pair and
// returns the release func. A lock-store failure is logged and the save
// proceeds unguarded: the clinic keeps booking when Redis is down, at the
// cost of the wider race window.
func (s *AppointmentService) lockSlot(ctx context.Context, vetID, date string) (func(), error) {
	ok, err := s.locks.Acquire(ctx, vetID, date)
	if err != nil {
		s.logger.Warn().Err(err).Str("veterinarian_id", vetID).Str("date", date).Msg("slot lock unavailable, proceeding without it")
		return func() {}, nil
	}
	if !ok {
		return nil, domain.ErrSlotLocked
	}
	return func() {
		if err := s.locks.Release(ctx, vetID, date); err != nil {
			s.logger.Warn().Err(err).Str("veterinarian_id", vetID).Msg("failed to release slot lock")
		}
	}, nil
}

func (s *AppointmentService) enqueueAudit(a *domain.Appointment, kind, actorID string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AppointmentEvent{
		AppointmentID:  a.ID,
		VeterinarianID: a.VeterinarianID,
		Date:           a.Date,
		Kind:           kind,
		ActorID:        actorID,
	})
}

// normalizeBooking applies required-field validation and converts the form
// values into a persistable appointment plus its interval in minutes.
// Validation failures never reach the conflict check or the store.
func normalizeBooking(input ports.SaveAppointmentInput) (*domain.Appointment, int, int, error) {
	if strings.TrimSpace(input.PetID) == "" {
		return nil, 0, 0, domain.NewValidationError("pet_id", "pet is required")
	}
	if strings.TrimSpace(input.VeterinarianID) == "" {
		return nil, 0, 0, domain.NewValidationError("veterinarian_id", "veterinarian is required")
	}

	date, err := normalizeDate(input.Date)
	if err != nil {
		return nil, 0, 0, domain.NewValidationError("date", "must be a valid YYYY-MM-DD date")
	}

	start, err := time.Parse(domain.TimeLayout, strings.TrimSpace(input.StartTime))
	if err != nil {
		return nil, 0, 0, domain.NewValidationError("start_time", "must be a valid HH:mm time")
	}
	end, err := time.Parse(domain.TimeLayout, strings.TrimSpace(input.EndTime))
	if err != nil {
		return nil, 0, 0, domain.NewValidationError("end_time", "must be a valid HH:mm time")
	}
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if endMin <= startMin {
		return nil, 0, 0, domain.NewValidationError("end_time", "must be after start_time")
	}

	if input.Price < 0 {
		return nil, 0, 0, domain.NewValidationError("price", "must be non-negative")
	}

	a := &domain.Appointment{
		PetID:          input.PetID,
		VeterinarianID: input.VeterinarianID,
		Date:           date,
		StartTime:      start.Format(domain.TimeLayout),
		EndTime:        end.Format(domain.TimeLayout),
		Description:    strings.TrimSpace(input.Description),
		Price:          input.Price,
		Active:         true,
	}
	return a, startMin, endMin, nil
}

func normalizeDate(s string) (string, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.Format(domain.DateLayout), nil
}
