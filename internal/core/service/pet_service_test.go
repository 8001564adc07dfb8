package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

type stubPetRepo struct {
	byID   map[string]*domain.Pet
	order  []string
	nextID int
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{byID: make(map[string]*domain.Pet), nextID: 1}
}

func (r *stubPetRepo) Insert(_ context.Context, p *domain.Pet) error {
	if p.ID == "" {
		p.ID = "pet-" + strconv.Itoa(r.nextID)
		r.nextID++
	}
	clone := *p
	r.byID[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubPetRepo) Update(_ context.Context, p *domain.Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPetNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id string) (*domain.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	clone := *p
	return &clone, nil
}

// Find applies the same filters the Mongo repository builds as bson.
func (r *stubPetRepo) Find(_ context.Context, f ports.PetFilter) ([]domain.Pet, error) {
	var out []domain.Pet
	for _, id := range r.order {
		p := r.byID[id]
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.SpeciesID != "" && p.SpeciesID != f.SpeciesID {
			continue
		}
		if f.BreedID != "" && p.BreedID != f.BreedID {
			continue
		}
		if f.OwnerID != "" {
			owned := false
			for _, o := range p.OwnerIDs {
				if o == f.OwnerID {
					owned = true
					break
				}
			}
			if !owned {
				continue
			}
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPetRepo) SetActive(_ context.Context, id string, active bool) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPetNotFound
	}
	p.Active = active
	return nil
}

func petInput(name, owner string) ports.SavePetInput {
	return ports.SavePetInput{
		Name:      name,
		OwnerIDs:  []string{owner},
		SpeciesID: "species-dog",
		BreedID:   "breed-beagle",
		BirthDate: "2020-03-01",
		WeightKg:  11.5,
	}
}

func TestPetSave_Create(t *testing.T) {
	repo := newStubPetRepo()
	svc := NewPetService(repo, zerolog.Nop())

	pet, err := svc.Save(context.Background(), petInput("Rex", "owner-1"), "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if pet.ID == "" || !pet.Active || pet.CreatedAt.IsZero() {
		t.Errorf("unexpected pet: %+v", pet)
	}
}

func TestPetSave_EditPreservesCreatedAtAndActive(t *testing.T) {
	repo := newStubPetRepo()
	svc := NewPetService(repo, zerolog.Nop())
	ctx := context.Background()

	pet, err := svc.Save(ctx, petInput("Rex", "owner-1"), "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := svc.ToggleActive(ctx, pet.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	edited, err := svc.Save(ctx, petInput("Rex Jr", "owner-1"), pet.ID)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if edited.Name != "Rex Jr" {
		t.Errorf("expected renamed pet, got %s", edited.Name)
	}
	if edited.Active {
		t.Error("edit must not silently reactivate a deactivated pet")
	}
	if !edited.CreatedAt.Equal(pet.CreatedAt) {
		t.Error("edit must preserve CreatedAt")
	}
}

func TestPetSave_Validation(t *testing.T) {
	svc := NewPetService(newStubPetRepo(), zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name  string
		mut   func(*ports.SavePetInput)
		field string
	}{
		{"blank name", func(in *ports.SavePetInput) { in.Name = "  " }, "name"},
		{"no owners", func(in *ports.SavePetInput) { in.OwnerIDs = nil }, "owner_ids"},
		{"blank owner", func(in *ports.SavePetInput) { in.OwnerIDs = []string{""} }, "owner_ids"},
		{"no species", func(in *ports.SavePetInput) { in.SpeciesID = "" }, "species_id"},
		{"negative weight", func(in *ports.SavePetInput) { in.WeightKg = -2 }, "weight_kg"},
		{"bad birth date", func(in *ports.SavePetInput) { in.BirthDate = "01/03/2020" }, "birth_date"},
		{"future birth date", func(in *ports.SavePetInput) { in.BirthDate = "2099-01-01" }, "birth_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := petInput("Rex", "owner-1")
			tc.mut(&in)
			_, err := svc.Save(ctx, in, "")
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got: %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, ve.Field)
			}
		})
	}
}

func TestPetList_Filters(t *testing.T) {
	repo := newStubPetRepo()
	svc := NewPetService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Save(ctx, petInput("Rex", "owner-1"), ""); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	mia := petInput("Mia", "owner-2")
	mia.SpeciesID = "species-cat"
	mia.BreedID = "breed-siamese"
	if _, err := svc.Save(ctx, mia, ""); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	byName, err := svc.List(ctx, ports.PetFilter{Name: "re"})
	if err != nil || len(byName) != 1 || byName[0].Name != "Rex" {
		t.Errorf("name filter: got %v, err %v", byName, err)
	}
	bySpecies, err := svc.List(ctx, ports.PetFilter{SpeciesID: "species-cat"})
	if err != nil || len(bySpecies) != 1 || bySpecies[0].Name != "Mia" {
		t.Errorf("species filter: got %v, err %v", bySpecies, err)
	}
	byOwner, err := svc.List(ctx, ports.PetFilter{OwnerID: "owner-2"})
	if err != nil || len(byOwner) != 1 || byOwner[0].Name != "Mia" {
		t.Errorf("owner filter: got %v, err %v", byOwner, err)
	}
}
