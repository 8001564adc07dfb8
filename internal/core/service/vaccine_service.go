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

// VaccineService covers the vaccine catalog plus per-pet vaccination and
// deworming records.
type VaccineService struct {
	repo   ports.VaccineRepository
	pets   ports.PetRepository
	logger zerolog.Logger
}

func NewVaccineService(repo ports.VaccineRepository, pets ports.PetRepository, logger zerolog.Logger) *VaccineService {
	return &VaccineService{repo: repo, pets: pets, logger: logger}
}

func (s *VaccineService) SaveVaccine(ctx context.Context, name, brandID, editingID string) (*domain.Vaccine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	if editingID != "" {
		existing, err := s.repo.FindVaccineByID(ctx, editingID)
		if err != nil {
			return nil, fmt.Errorf("load vaccine %s: %w", editingID, err)
		}
		existing.Name = name
		existing.BrandID = brandID
		if err := s.repo.UpdateVaccine(ctx, existing); err != nil {
			return nil, fmt.Errorf("update vaccine: %w", err)
		}
		s.logger.Info().Str("vaccine_id", existing.ID).Msg("vaccine updated")
		return existing, nil
	}

	v := &domain.Vaccine{
		Name:      name,
		BrandID:   brandID,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertVaccine(ctx, v); err != nil {
		return nil, fmt.Errorf("insert vaccine: %w", err)
	}
	s.logger.Info().Str("vaccine_id", v.ID).Str("name", name).Msg("vaccine created")
	return v, nil
}

func (s *VaccineService) ListVaccines(ctx context.Context, activeOnly bool) ([]domain.Vaccine, error) {
	return s.repo.FindVaccines(ctx, activeOnly)
}

func (s *VaccineService) ToggleVaccineActive(ctx context.Context, id string) (*domain.Vaccine, error) {
	v, err := s.repo.FindVaccineByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vaccine %s: %w", id, err)
	}
	if err := s.repo.SetVaccineActive(ctx, id, !v.Active); err != nil {
		return nil, fmt.Errorf("toggle vaccine: %w", err)
	}
	v.Active = !v.Active
	return v, nil
}

func (s *VaccineService) RecordVaccination(ctx context.Context, input ports.RecordDoseInput) (*domain.VaccinationRecord, error) {
	if strings.TrimSpace(input.VaccineID) == "" {
		return nil, domain.NewValidationError("vaccine_id", "vaccine is required")
	}
	if err := s.validateDose(ctx, &input); err != nil {
		return nil, err
	}

	r := &domain.VaccinationRecord{
		PetID:      input.PetID,
		VaccineID:  input.VaccineID,
		AppliedAt:  input.AppliedAt,
		NextDoseAt: input.NextDoseAt,
		Notes:      strings.TrimSpace(input.Notes),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.InsertVaccination(ctx, r); err != nil {
		return nil, fmt.Errorf("insert vaccination record: %w", err)
	}
	s.logger.Info().Str("pet_id", r.PetID).Str("vaccine_id", r.VaccineID).Msg("vaccination recorded")
	return r, nil
}

func (s *VaccineService) PetVaccinations(ctx context.Context, petID string) ([]domain.VaccinationRecord, error) {
	if _, err := s.pets.FindByID(ctx, petID); err != nil {
		return nil, fmt.Errorf("load pet %s: %w", petID, err)
	}
	return s.repo.FindVaccinationsByPet(ctx, petID)
}

func (s *VaccineService) RecordDeworming(ctx context.Context, input ports.RecordDoseInput) (*domain.DewormingRecord, error) {
	if strings.TrimSpace(input.Product) == "" {
		return nil, domain.NewValidationError("product", "product is required")
	}
	if err := s.validateDose(ctx, &input); err != nil {
		return nil, err
	}

	r := &domain.DewormingRecord{
		PetID:      input.PetID,
		Product:    strings.TrimSpace(input.Product),
		BrandID:    input.BrandID,
		AppliedAt:  input.AppliedAt,
		NextDoseAt: input.NextDoseAt,
		Notes:      strings.TrimSpace(input.Notes),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.InsertDeworming(ctx, r); err != nil {
		return nil, fmt.Errorf("insert deworming record: %w", err)
	}
	s.logger.Info().Str("pet_id", r.PetID).Str("product", r.Product).Msg("deworming recorded")
	return r, nil
}

func (s *VaccineService) PetDewormings(ctx context.Context, petID string) ([]domain.DewormingRecord, error) {
	if _, err := s.pets.FindByID(ctx, petID); err != nil {
		return nil, fmt.Errorf("load pet %s: %w", petID, err)
	}
	return s.repo.FindDewormingsByPet(ctx, petID)
}

// validateDose checks the fields shared by vaccination and deworming
// entries. Unlike appointment dates, application dates must not be in the
// future: a dose is recorded after the fact.
func (s *VaccineService) validateDose(ctx context.Context, input *ports.RecordDoseInput) error {
	if strings.TrimSpace(input.PetID) == "" {
		return domain.NewValidationError("pet_id", "pet is required")
	}
	if _, err := s.pets.FindByID(ctx, input.PetID); err != nil {
		return fmt.Errorf("load pet %s: %w", input.PetID, err)
	}

	applied, err := time.Parse(domain.DateLayout, input.AppliedAt)
	if err != nil {
		return domain.NewValidationError("applied_at", "must be a valid YYYY-MM-DD date")
	}
	if applied.After(time.Now()) {
		return domain.NewValidationError("applied_at", "cannot be in the future")
	}

	if input.NextDoseAt != "" {
		next, err := time.Parse(domain.DateLayout, input.NextDoseAt)
		if err != nil {
			return domain.NewValidationError("next_dose_at", "must be a valid YYYY-MM-DD date")
		}
		if next.Before(applied) {
			return domain.NewValidationError("next_dose_at", "cannot be before applied_at")
		}
	}
	return nil
}
