package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petessence/clinic-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email string, role domain.Role, active bool) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: email, Role: role, Active: active}
	if err := repo.Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUser_ListByRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	seedUser(t, repo, "Dra. Ana", "ana@clinic.test", domain.RoleVeterinarian, true)
	seedUser(t, repo, "Dr. Luis", "luis@clinic.test", domain.RoleVeterinarian, false)
	seedUser(t, repo, "Marta", "marta@clinic.test", domain.RoleStaff, true)

	vets, err := svc.List(ctx, domain.RoleVeterinarian, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(vets) != 2 {
		t.Fatalf("expected 2 veterinarians, got %d", len(vets))
	}

	activeVets, err := svc.List(ctx, domain.RoleVeterinarian, true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activeVets) != 1 || activeVets[0].Name != "Dra. Ana" {
		t.Fatalf("expected only the active veterinarian, got %+v", activeVets)
	}
}

func TestUser_ListRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.List(context.Background(), domain.Role("admin"), false)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestUser_Update(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	u := seedUser(t, repo, "Marta", "marta@clinic.test", domain.RoleStaff, true)

	updated, err := svc.Update(ctx, u.ID, " Marta Lopez ", " 555-0101 ", domain.RoleVeterinarian)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Marta Lopez" || updated.Phone != "555-0101" {
		t.Errorf("fields not trimmed: %q %q", updated.Name, updated.Phone)
	}
	if updated.Role != domain.RoleVeterinarian {
		t.Errorf("role not updated: %s", updated.Role)
	}
}

func TestUser_UpdateUnknown(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "ghost", "Name", "", domain.RoleStaff)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestUser_ToggleActive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	u := seedUser(t, repo, "Marta", "marta@clinic.test", domain.RoleStaff, true)

	toggled, err := svc.ToggleActive(ctx, u.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Active {
		t.Error("expected user deactivated")
	}
}

func TestUser_VeterinariansPicker(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	seedUser(t, repo, "Dra. Ana", "ana@clinic.test", domain.RoleVeterinarian, true)
	seedUser(t, repo, "Dr. Luis", "luis@clinic.test", domain.RoleVeterinarian, false)
	seedUser(t, repo, "Marta", "marta@clinic.test", domain.RoleStaff, true)

	vets, err := svc.Veterinarians(context.Background())
	if err != nil {
		t.Fatalf("picker failed: %v", err)
	}
	if len(vets) != 1 || vets[0].Name != "Dra. Ana" {
		t.Fatalf("expected only active veterinarians, got %+v", vets)
	}
}
