package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

type stubVaccineRepo struct {
	vaccines     map[string]*domain.Vaccine
	vaccinations map[string][]domain.VaccinationRecord
	dewormings   map[string][]domain.DewormingRecord
	nextID       int
}

func newStubVaccineRepo() *stubVaccineRepo {
	return &stubVaccineRepo{
		vaccines:     make(map[string]*domain.Vaccine),
		vaccinations: make(map[string][]domain.VaccinationRecord),
		dewormings:   make(map[string][]domain.DewormingRecord),
		nextID:       1,
	}
}

func (r *stubVaccineRepo) InsertVaccine(_ context.Context, v *domain.Vaccine) error {
	if v.ID == "" {
		v.ID = "vac-" + strconv.Itoa(r.nextID)
		r.nextID++
	}
	clone := *v
	r.vaccines[v.ID] = &clone
	return nil
}

func (r *stubVaccineRepo) UpdateVaccine(_ context.Context, v *domain.Vaccine) error {
	if _, ok := r.vaccines[v.ID]; !ok {
		return domain.ErrVaccineNotFound
	}
	clone := *v
	r.vaccines[v.ID] = &clone
	return nil
}

func (r *stubVaccineRepo) FindVaccineByID(_ context.Context, id string) (*domain.Vaccine, error) {
	v, ok := r.vaccines[id]
	if !ok {
		return nil, domain.ErrVaccineNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVaccineRepo) FindVaccines(_ context.Context, activeOnly bool) ([]domain.Vaccine, error) {
	var out []domain.Vaccine
	for _, v := range r.vaccines {
		if activeOnly && !v.Active {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVaccineRepo) SetVaccineActive(_ context.Context, id string, active bool) error {
	v, ok := r.vaccines[id]
	if !ok {
		return domain.ErrVaccineNotFound
	}
	v.Active = active
	return nil
}

func (r *stubVaccineRepo) InsertVaccination(_ context.Context, rec *domain.VaccinationRecord) error {
	if rec.ID == "" {
		rec.ID = "vrec-" + strconv.Itoa(r.nextID)
		r.nextID++
	}
	r.vaccinations[rec.PetID] = append(r.vaccinations[rec.PetID], *rec)
	return nil
}

func (r *stubVaccineRepo) FindVaccinationsByPet(_ context.Context, petID string) ([]domain.VaccinationRecord, error) {
	return r.vaccinations[petID], nil
}

func (r *stubVaccineRepo) InsertDeworming(_ context.Context, rec *domain.DewormingRecord) error {
	if rec.ID == "" {
		rec.ID = "drec-" + strconv.Itoa(r.nextID)
		r.nextID++
	}
	r.dewormings[rec.PetID] = append(r.dewormings[rec.PetID], *rec)
	return nil
}

func (r *stubVaccineRepo) FindDewormingsByPet(_ context.Context, petID string) ([]domain.DewormingRecord, error) {
	return r.dewormings[petID], nil
}

func registeredPet(t *testing.T, pets *stubPetRepo) *domain.Pet {
	t.Helper()
	p := &domain.Pet{Name: "Firulais", OwnerIDs: []string{"owner-1"}, SpeciesID: "sp-1", Active: true}
	if err := pets.Insert(context.Background(), p); err != nil {
		t.Fatalf("insert pet: %v", err)
	}
	return p
}

func TestVaccine_SaveAndToggle(t *testing.T) {
	repo := newStubVaccineRepo()
	svc := NewVaccineService(repo, newStubPetRepo(), zerolog.Nop())
	ctx := context.Background()

	v, err := svc.SaveVaccine(ctx, "  Rabies  ", "brand-1", "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if v.Name != "Rabies" {
		t.Errorf("name not trimmed: %q", v.Name)
	}
	if !v.Active {
		t.Error("new vaccines start active")
	}

	edited, err := svc.SaveVaccine(ctx, "Rabies (annual)", "", v.ID)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if edited.ID != v.ID {
		t.Errorf("edit must keep the id, got %s", edited.ID)
	}

	toggled, err := svc.ToggleVaccineActive(ctx, v.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Active {
		t.Error("expected vaccine deactivated")
	}
}

func TestVaccine_SaveRequiresName(t *testing.T) {
	svc := NewVaccineService(newStubVaccineRepo(), newStubPetRepo(), zerolog.Nop())

	_, err := svc.SaveVaccine(context.Background(), "   ", "", "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestVaccine_RecordVaccination(t *testing.T) {
	repo := newStubVaccineRepo()
	pets := newStubPetRepo()
	svc := NewVaccineService(repo, pets, zerolog.Nop())
	ctx := context.Background()
	pet := registeredPet(t, pets)

	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	nextYear := time.Now().AddDate(1, 0, 0).Format(domain.DateLayout)

	rec, err := svc.RecordVaccination(ctx, ports.RecordDoseInput{
		PetID:      pet.ID,
		VaccineID:  "vac-1",
		AppliedAt:  yesterday,
		NextDoseAt: nextYear,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("record must get an id")
	}

	history, err := svc.PetVaccinations(ctx, pet.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 record, got %d", len(history))
	}
}

func TestVaccine_RecordValidation(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewVaccineService(newStubVaccineRepo(), pets, zerolog.Nop())
	ctx := context.Background()
	pet := registeredPet(t, pets)

	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)

	cases := []struct {
		name  string
		input ports.RecordDoseInput
	}{
		{"missing vaccine", ports.RecordDoseInput{PetID: pet.ID, AppliedAt: yesterday}},
		{"missing pet", ports.RecordDoseInput{VaccineID: "v1", AppliedAt: yesterday}},
		{"bad date", ports.RecordDoseInput{PetID: pet.ID, VaccineID: "v1", AppliedAt: "01/02/2026"}},
		{"future application", ports.RecordDoseInput{PetID: pet.ID, VaccineID: "v1", AppliedAt: tomorrow}},
		{"next dose before applied", ports.RecordDoseInput{PetID: pet.ID, VaccineID: "v1", AppliedAt: yesterday, NextDoseAt: "2020-01-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.RecordVaccination(ctx, tc.input); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got: %v", err)
			}
		})
	}
}

func TestVaccine_RecordVaccinationUnknownPet(t *testing.T) {
	svc := NewVaccineService(newStubVaccineRepo(), newStubPetRepo(), zerolog.Nop())

	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	_, err := svc.RecordVaccination(context.Background(), ports.RecordDoseInput{
		PetID:     "ghost",
		VaccineID: "v1",
		AppliedAt: yesterday,
	})
	if !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got: %v", err)
	}
}

func TestVaccine_RecordDeworming(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewVaccineService(newStubVaccineRepo(), pets, zerolog.Nop())
	ctx := context.Background()
	pet := registeredPet(t, pets)

	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)

	if _, err := svc.RecordDeworming(ctx, ports.RecordDoseInput{PetID: pet.ID, AppliedAt: yesterday}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing product, got: %v", err)
	}

	rec, err := svc.RecordDeworming(ctx, ports.RecordDoseInput{
		PetID:     pet.ID,
		Product:   "  Drontal  ",
		AppliedAt: yesterday,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if rec.Product != "Drontal" {
		t.Errorf("product not trimmed: %q", rec.Product)
	}

	history, err := svc.PetDewormings(ctx, pet.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 record, got %d", len(history))
	}
}
