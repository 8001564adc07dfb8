package ports

import (
	"context"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// UserRepository defines persistence for clinic users. It doubles as the
// auth store; there is no separate credentials collection.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByRole lists users with the given role; activeOnly narrows to
	// active accounts (used by the veterinarian picker).
	FindByRole(ctx context.Context, role domain.Role, activeOnly bool) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// AuthService issues and validates clinic identities.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService covers staff/user administration.
type UserService interface {
	List(ctx context.Context, role domain.Role, activeOnly bool) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, name, phone string, role domain.Role) (*domain.User, error)
	ToggleActive(ctx context.Context, id string) (*domain.User, error)
	// Veterinarians returns the active veterinarian picker options.
	Veterinarians(ctx context.Context) ([]domain.User, error)
}
