package console

import "github.com/shoplite/shoplite-backend/internal/modules/user"

// Session carries the authenticated identity through the menu handlers. It is
// built once at login and passed explicitly; handlers never reconstruct it.
type Session struct {
	Username string
	Role     user.Role
}
