package ports

import (
	"context"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// PetFilter carries the list-screen search parameters. All fields are
// optional; empty means no filter.
type PetFilter struct {
	Name      string // case-insensitive substring match
	SpeciesID string
	BreedID   string
	OwnerID   string
	Active    *bool
}

// PetRepository defines persistence for the pet registry.
type PetRepository interface {
	Insert(ctx context.Context, p *domain.Pet) error
	Update(ctx context.Context, p *domain.Pet) error
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	Find(ctx context.Context, filter PetFilter) ([]domain.Pet, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// SavePetInput carries the pet form values.
type SavePetInput struct {
	Name      string
	OwnerIDs  []string
	SpeciesID string
	BreedID   string
	BirthDate string
	WeightKg  float64
}

// PetService covers the pet registry use cases.
type PetService interface {
	Save(ctx context.Context, input SavePetInput, editingID string) (*domain.Pet, error)
	Get(ctx context.Context, id string) (*domain.Pet, error)
	List(ctx context.Context, filter PetFilter) ([]domain.Pet, error)
	ToggleActive(ctx context.Context, id string) (*domain.Pet, error)
}
