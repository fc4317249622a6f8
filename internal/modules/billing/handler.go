package billing

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

// RegisterRoutes mounts billing routes. bill admits billing roles; report
// admits roles that may read the sales ledger.
func (h *Handler) RegisterRoutes(router chi.Router, bill, report func(http.Handler) http.Handler) {
	router.With(bill).Post("/bills", h.generateBill)
	router.With(report).Get("/sales/report", h.salesReport)
	router.With(report).Post("/sales/backup", h.backupSales)
}

func (h *Handler) generateBill(w http.ResponseWriter, r *http.Request) {
	var req BillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sale, err := h.service.GenerateBill(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), shared.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sale)
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.SalesReport(r.Context())
	if err != nil {
		http.Error(w, err.Error(), shared.HTTPStatus(err))
		return
	}
	if sales == nil {
		sales = []*Sale{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}

func (h *Handler) backupSales(w http.ResponseWriter, r *http.Request) {
	if err := h.service.BackupSales(r.Context()); err != nil {
		http.Error(w, err.Error(), shared.HTTPStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
