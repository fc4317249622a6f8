package auth

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login returns the matching account, or ErrInvalidCredentials. The error
	// does not distinguish an unknown username from a wrong password.
	Login(ctx context.Context, username, password string) (*user.User, error)
	// VerifyAdmin reports whether the credentials belong to an admin account.
	VerifyAdmin(ctx context.Context, username, password string) (bool, error)
	// IssueToken signs a bearer token carrying the account's role.
	IssueToken(u *user.User) (string, error)
}
