package user

import (
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/internal/shared"
)

// Role determines the set of operations a session may invoke.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleShopkeeper Role = "shopkeeper"
	RoleClient     Role = "client"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleShopkeeper, RoleClient:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", shared.ErrInvalidInput, s)
	}
}

// CanManageUsers reports whether the role may create accounts.
func CanManageUsers(r Role) bool { return r == RoleAdmin }

// CanManageCatalog reports whether the role may add or delete products and
// adjust stock directly.
func CanManageCatalog(r Role) bool { return r == RoleAdmin }

// CanBill reports whether the role may generate bills.
func CanBill(r Role) bool { return r == RoleShopkeeper }

// CanViewProducts reports whether the role may list the catalog.
func CanViewProducts(r Role) bool {
	return r == RoleAdmin || r == RoleShopkeeper || r == RoleClient
}

// CanViewSalesReport reports whether the role may read the sales ledger.
func CanViewSalesReport(r Role) bool { return r == RoleAdmin }

// User represents an account in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
