package shared

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUser indicates a username that is already registered.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrDuplicateProduct indicates a product name that is already in the catalog.
	ErrDuplicateProduct = errors.New("product already exists")
	// ErrProductNotFound indicates a product id with no catalog row.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock indicates a sale quantity above the available stock.
	ErrInsufficientStock = errors.New("not enough stock available")
	// ErrInvalidCredentials indicates login failure. It covers both an unknown
	// username and a wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPermissionDenied indicates a role that may not invoke the operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidInput indicates a request that fails basic validation.
	ErrInvalidInput = errors.New("invalid input")
)

// HTTPStatus maps domain errors to HTTP status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrDuplicateProduct):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
