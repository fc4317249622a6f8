package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	Register(ctx context.Context, username, password string, role Role) (*User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}
