package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/shoplite-backend/internal/shared"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts user routes. adminOnly must reject callers whose role
// cannot manage users.
func (h *Handler) RegisterRoutes(router chi.Router, adminOnly func(http.Handler) http.Handler) {
	router.With(adminOnly).Post("/users/register", h.registerUser)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	role, err := ParseRole(req.Role)
	if err != nil {
		http.Error(w, err.Error(), shared.HTTPStatus(err))
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, role)
	if err != nil {
		http.Error(w, err.Error(), shared.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}
