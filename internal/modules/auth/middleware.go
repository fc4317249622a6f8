package auth

import (
	"net/http"
	"strings"

	"github.com/shoplite/shoplite-backend/internal/modules/user"
	"github.com/shoplite/shoplite-backend/internal/shared"
)

// Middleware gates HTTP routes on bearer tokens and roles.
type Middleware struct {
	jwtKey []byte
}

func NewMiddleware(jwtKey []byte) *Middleware {
	return &Middleware{jwtKey: jwtKey}
}

// RequireRoles admits only requests whose bearer token carries one of roles.
// The caller identity is attached to the request context.
func (m *Middleware) RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if header == "" || tokenString == header {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := ParseToken(tokenString, m.jwtKey)
			if err != nil {
				http.Error(w, shared.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
				return
			}

			allowed := false
			for _, role := range roles {
				if string(role) == claims.Role {
					allowed = true
					break
				}
			}
			if !allowed {
				http.Error(w, shared.ErrPermissionDenied.Error(), http.StatusForbidden)
				return
			}

			ctx := shared.WithIdentity(r.Context(), shared.Identity{
				Username: claims.Subject,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
