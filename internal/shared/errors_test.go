package shared

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrProductNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrDuplicateUser))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrDuplicateProduct))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInsufficientStock))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrInvalidCredentials))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(ErrPermissionDenied))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}
