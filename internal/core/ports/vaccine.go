package ports

import (
	"context"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// VaccineRepository defines persistence for the vaccine catalog and the
// per-pet vaccination/deworming records.
type VaccineRepository interface {
	InsertVaccine(ctx context.Context, v *domain.Vaccine) error
	UpdateVaccine(ctx context.Context, v *domain.Vaccine) error
	FindVaccineByID(ctx context.Context, id string) (*domain.Vaccine, error)
	FindVaccines(ctx context.Context, activeOnly bool) ([]domain.Vaccine, error)
	SetVaccineActive(ctx context.Context, id string, active bool) error

	InsertVaccination(ctx context.Context, r *domain.VaccinationRecord) error
	FindVaccinationsByPet(ctx context.Context, petID string) ([]domain.VaccinationRecord, error)

	InsertDeworming(ctx context.Context, r *domain.DewormingRecord) error
	FindDewormingsByPet(ctx context.Context, petID string) ([]domain.DewormingRecord, error)
}

// RecordDoseInput is shared by vaccination and deworming entries.
// Product/VaccineID: exactly one applies depending on the record kind.
type RecordDoseInput struct {
	PetID      string
	VaccineID  string
	Product    string
	BrandID    string
	AppliedAt  string
	NextDoseAt string
	Notes      string
}

// VaccineService covers the vaccine catalog and dose records.
type VaccineService interface {
	SaveVaccine(ctx context.Context, name, brandID, editingID string) (*domain.Vaccine, error)
	ListVaccines(ctx context.Context, activeOnly bool) ([]domain.Vaccine, error)
	ToggleVaccineActive(ctx context.Context, id string) (*domain.Vaccine, error)

	RecordVaccination(ctx context.Context, input RecordDoseInput) (*domain.VaccinationRecord, error)
	PetVaccinations(ctx context.Context, petID string) ([]domain.VaccinationRecord, error)

	RecordDeworming(ctx context.Context, input RecordDoseInput) (*domain.DewormingRecord, error)
	PetDewormings(ctx context.Context, petID string) ([]domain.DewormingRecord, error)
}
