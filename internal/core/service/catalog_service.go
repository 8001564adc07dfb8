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

// CatalogService maintains the reference data (species, breeds, brands)
// the pet and vaccine forms pick from.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, kind domain.CatalogKind, name, speciesID string) (*domain.CatalogItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	// Breeds hang off a species; the other kinds do not take one.
	if kind == domain.CatalogBreed && strings.TrimSpace(speciesID) == "" {
		return nil, domain.NewValidationError("species_id", "species is required for a breed")
	}
	if kind != domain.CatalogBreed {
		speciesID = ""
	}

	item := &domain.CatalogItem{
		Name:      name,
		SpeciesID: speciesID,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, kind, item); err != nil {
		return nil, fmt.Errorf("insert %s: %w", kind, err)
	}
	s.logger.Info().Str("kind", string(kind)).Str("name", name).Msg("catalog item created")
	return item, nil
}

func (s *CatalogService) List(ctx context.Context, kind domain.CatalogKind, activeOnly bool) ([]domain.CatalogItem, error) {
	return s.repo.Find(ctx, kind, activeOnly)
}

func (s *CatalogService) ToggleActive(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error) {
	item, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", kind, id, err)
	}
	if err := s.repo.SetActive(ctx, kind, id, !item.Active); err != nil {
		return nil, fmt.Errorf("toggle %s: %w", kind, err)
	}
	item.Active = !item.Active
	return item, nil
}
