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

// PetService covers the pet registry use cases.
type PetService struct {
	repo   ports.PetRepository
	logger zerolog.Logger
}

func NewPetService(repo ports.PetRepository, logger zerolog.Logger) *PetService {
	return &PetService{repo: repo, logger: logger}
}

func (s *PetService) Save(ctx context.Context, input ports.SavePetInput, editingID string) (*domain.Pet, error) {
	if err := validatePet(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pet := &domain.Pet{
		Name:      strings.TrimSpace(input.Name),
		OwnerIDs:  input.OwnerIDs,
		SpeciesID: input.SpeciesID,
		BreedID:   input.BreedID,
		BirthDate: input.BirthDate,
		WeightKg:  input.WeightKg,
		Active:    true,
		UpdatedAt: now,
	}

	if editingID != "" {
		existing, err := s.repo.FindByID(ctx, editingID)
		if err != nil {
			return nil, fmt.Errorf("load pet %s: %w", editingID, err)
		}
		pet.ID = existing.ID
		pet.Active = existing.Active
		pet.CreatedAt = existing.CreatedAt

		if err := s.repo.Update(ctx, pet); err != nil {
			s.logger.Error().Err(err).Str("pet_id", editingID).Msg("failed to update pet")
			return nil, fmt.Errorf("update pet: %w", err)
		}
		s.logger.Info().Str("pet_id", pet.ID).Msg("pet updated")
		return pet, nil
	}

	pet.CreatedAt = now
	if err := s.repo.Insert(ctx, pet); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert pet")
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	s.logger.Info().Str("pet_id", pet.ID).Str("name", pet.Name).Msg("pet registered")
	return pet, nil
}

func (s *PetService) Get(ctx context.Context, id string) (*domain.Pet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PetService) List(ctx context.Context, filter ports.PetFilter) ([]domain.Pet, error) {
	return s.repo.Find(ctx, filter)
}

func (s *PetService) ToggleActive(ctx context.Context, id string) (*domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load pet %s: %w", id, err)
	}

	if err := s.repo.SetActive(ctx, id, !pet.Active); err != nil {
		s.logger.Error().Err(err).Str("pet_id", id).Msg("failed to toggle pet")
		return nil, fmt.Errorf("toggle pet: %w", err)
	}
	pet.Active = !pet.Active
	s.logger.Info().Str("pet_id", id).Bool("active", pet.Active).Msg("pet toggled")
	return pet, nil
}

func validatePet(input *ports.SavePetInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if len(input.OwnerIDs) == 0 {
		return domain.NewValidationError("owner_ids", "at least one owner is required")
	}
	for _, id := range input.OwnerIDs {
		if strings.TrimSpace(id) == "" {
			return domain.NewValidationError("owner_ids", "owner id cannot be blank")
		}
	}
	if strings.TrimSpace(input.SpeciesID) == "" {
		return domain.NewValidationError("species_id", "species is required")
	}
	if input.WeightKg < 0 {
		return domain.NewValidationError("weight_kg", "must be non-negative")
	}
	if input.BirthDate != "" {
		t, err := time.Parse(domain.DateLayout, input.BirthDate)
		if err != nil {
			return domain.NewValidationError("birth_date", "must be a valid YYYY-MM-DD date")
		}
		if t.After(time.Now()) {
			return domain.NewValidationError("birth_date", "cannot be in the future")
		}
	}
	return nil
}
