package domain

import "time"

// Pet is a registered animal. OwnerIDs reference client-role users; a pet
// can have more than one owner (shared custody is common in practice).
type Pet struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	OwnerIDs  []string  `json:"owner_ids" bson:"owner_ids"`
	SpeciesID string    `json:"species_id" bson:"species_id"`
	BreedID   string    `json:"breed_id,omitempty" bson:"breed_id,omitempty"`
	BirthDate string    `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	WeightKg  float64   `json:"weight_kg,omitempty" bson:"weight_kg,omitempty"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
