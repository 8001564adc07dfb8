package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

// UserService covers staff/user administration and the veterinarian picker.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, role domain.Role, activeOnly bool) ([]domain.User, error) {
	if role != "" {
		if !domain.ValidRole(role) {
			return nil, domain.NewValidationError("role", "unknown role")
		}
		return s.repo.FindByRole(ctx, role, activeOnly)
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if !activeOnly {
		return users, nil
	}
	filtered := users[:0]
	for _, u := range users {
		if u.Active {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id, name, phone string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if !domain.ValidRole(role) {
		return nil, domain.NewValidationError("role", "unknown role")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", id, err)
	}

	user.Name = name
	user.Phone = strings.TrimSpace(phone)
	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.logger.Info().Str("user_id", id).Str("role", string(role)).Msg("user updated")
	return user, nil
}

func (s *UserService) ToggleActive(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", id, err)
	}

	if err := s.repo.SetActive(ctx, id, !user.Active); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to toggle user")
		return nil, fmt.Errorf("toggle user: %w", err)
	}
	user.Active = !user.Active
	s.logger.Info().Str("user_id", id).Bool("active", user.Active).Msg("user toggled")
	return user, nil
}

// Veterinarians returns the active veterinarian accounts, the options the
// booking form offers.
func (s *UserService) Veterinarians(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindByRole(ctx, domain.RoleVeterinarian, true)
}
