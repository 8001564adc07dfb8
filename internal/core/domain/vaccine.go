package domain

import "time"

// Vaccine is a catalog entry, not an application. Applications are
// recorded per pet as VaccinationRecord.
type Vaccine struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	BrandID   string    `json:"brand_id,omitempty" bson:"brand_id,omitempty"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// VaccinationRecord documents a vaccine dose applied to a pet.
// AppliedAt and NextDoseAt use DateLayout.
type VaccinationRecord struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	PetID      string    `json:"pet_id" bson:"pet_id"`
	VaccineID  string    `json:"vaccine_id" bson:"vaccine_id"`
	AppliedAt  string    `json:"applied_at" bson:"applied_at"`
	NextDoseAt string    `json:"next_dose_at,omitempty" bson:"next_dose_at,omitempty"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// DewormingRecord documents a dewormer dose applied to a pet. Dewormers
// are free-text products rather than catalog entries.
type DewormingRecord struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	PetID      string    `json:"pet_id" bson:"pet_id"`
	Product    string    `json:"product" bson:"product"`
	BrandID    string    `json:"brand_id,omitempty" bson:"brand_id,omitempty"`
	AppliedAt  string    `json:"applied_at" bson:"applied_at"`
	NextDoseAt string    `json:"next_dose_at,omitempty" bson:"next_dose_at,omitempty"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
