package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory user repository stub
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrUserExists
	}
	if u.ID == "" {
		u.ID = "user-" + strconv.Itoa(r.nextID)
		r.nextID++
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByRole(_ context.Context, role domain.Role, activeOnly bool) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byID {
		if u.Role != role {
			continue
		}
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

const testSecret = "test-secret"

func TestAuth_RegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Dra. Ana", "ana@clinic.test", "hunter22", domain.RoleVeterinarian)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password must be stored hashed")
	}
	if !user.Active {
		t.Error("new users start active")
	}

	token, logged, err := svc.Login(ctx, "ANA@clinic.test", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, logged.ID)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["role"] != string(domain.RoleVeterinarian) {
		t.Errorf("expected role claim, got %v", claims["role"])
	}
	if claims["user_id"] != user.ID {
		t.Errorf("expected user_id claim, got %v", claims["user_id"])
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@clinic.test", "pw", domain.RoleStaff); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, "Other Ana", "ana@clinic.test", "pw2", domain.RoleStaff)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got: %v", err)
	}
}

func TestAuth_RegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, 0)

	_, err := svc.Register(context.Background(), "X", "x@clinic.test", "pw", domain.Role("admin"))
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@clinic.test", "right", domain.RoleClient); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, err := svc.Login(ctx, "ana@clinic.test", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuth_LoginInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ana", "ana@clinic.test", "pw", domain.RoleStaff)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := repo.SetActive(ctx, user.ID, false); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	repo.byEmail["ana@clinic.test"].Active = false

	_, _, err = svc.Login(ctx, "ana@clinic.test", "pw")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for inactive account, got: %v", err)
	}
}

func TestAuth_LoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, 0)

	// Unknown emails answer exactly like wrong passwords.
	_, _, err := svc.Login(context.Background(), "ghost@clinic.test", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}
