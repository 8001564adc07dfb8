package ports

import (
	"context"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// CatalogRepository defines persistence for reference data (species,
// breeds, brands). The kind selects the backing collection.
type CatalogRepository interface {
	Insert(ctx context.Context, kind domain.CatalogKind, item *domain.CatalogItem) error
	FindByID(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error)
	Find(ctx context.Context, kind domain.CatalogKind, activeOnly bool) ([]domain.CatalogItem, error)
	SetActive(ctx context.Context, kind domain.CatalogKind, id string, active bool) error
}

// CatalogService covers reference-data maintenance.
type CatalogService interface {
	Create(ctx context.Context, kind domain.CatalogKind, name, speciesID string) (*domain.CatalogItem, error)
	List(ctx context.Context, kind domain.CatalogKind, activeOnly bool) ([]domain.CatalogItem, error)
	ToggleActive(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error)
}
