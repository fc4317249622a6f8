package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shoplite/shoplite-backend/internal/backup"
	"github.com/shoplite/shoplite-backend/internal/shared"
)

type service struct {
	repo Repository
	sink backup.Sink
}

// NewService creates a new user service. Every successful registration is
// mirrored to the append-only user backup log.
func NewService(repo Repository, sink backup.Sink) Service {
	return &service{repo: repo, sink: sink}
}

func (s *service) Register(ctx context.Context, username, password string, role Role) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", shared.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", shared.ErrInvalidInput)
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sink.Append([]string{user.Username, user.PasswordHash, string(user.Role)}); err != nil {
		return nil, fmt.Errorf("user registered but backup append failed: %w", err)
	}
	return user, nil
}

// EnsureAdmin seeds the first admin account when the users table has none.
// A no-op when username is empty or an admin already exists.
func (s *service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	count, err := s.repo.CountByRole(ctx, RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Register(ctx, username, password, RoleAdmin)
	return err
}
