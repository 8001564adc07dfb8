package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petessence/clinic-api/internal/core/ports"
)

// auditService persists appointment audit events. It runs on the queue
// dispatcher's workers, off the request path.
type auditService struct {
	repo ports.AuditRecorder
	log  zerolog.Logger
}

// NewAuditService returns an AuditRecorder that writes through repo and
// logs each recorded event.
func NewAuditService(repo ports.AuditRecorder, log zerolog.Logger) ports.AuditRecorder {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event ports.AppointmentEvent) error {
	if err := s.repo.Record(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	s.log.Debug().
		Str("appointment_id", event.AppointmentID).
		Str("kind", event.Kind).
		Msg("audit event recorded")
	return nil
}
