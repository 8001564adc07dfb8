package domain

import "time"

// CatalogKind selects one of the reference-data collections.
type CatalogKind string

const (
	CatalogSpecies CatalogKind = "species"
	CatalogBreed   CatalogKind = "breed"
	CatalogBrand   CatalogKind = "brand"
)

// CatalogItem is a reference-data entry (species, breed, brand).
// SpeciesID is only set for breeds, linking the breed to its species.
type CatalogItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	SpeciesID string    `json:"species_id,omitempty" bson:"species_id,omitempty"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
