package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/internal/shared"
)

type stubService struct {
	sale *Sale
	err  error
}

func (s *stubService) GenerateBill(ctx context.Context, req BillRequest) (*Sale, error) {
	return s.sale, s.err
}

func (s *stubService) SalesReport(ctx context.Context) ([]*Sale, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.sale == nil {
		return nil, nil
	}
	return []*Sale{s.sale}, nil
}

func (s *stubService) BackupSales(ctx context.Context) error { return s.err }

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(svc Service) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router, passthrough, passthrough)
	return router
}

func TestGenerateBillHandler(t *testing.T) {
	sale := &Sale{
		ID:          1,
		Reference:   uuid.New(),
		ProductID:   1,
		Quantity:    3,
		TotalAmount: 6.00,
		SaleDate:    time.Now(),
	}
	router := newTestRouter(&stubService{sale: sale})

	req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(`{"product_id":1,"quantity":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sale.ID, got.ID)
	assert.Equal(t, sale.TotalAmount, got.TotalAmount)
}

func TestGenerateBillHandlerErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"insufficient stock", shared.ErrInsufficientStock, http.StatusBadRequest},
		{"product not found", shared.ErrProductNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubService{err: tc.err})
			req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(`{"product_id":1,"quantity":20}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.err.Error())
		})
	}
}

func TestSalesReportHandlerEmpty(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/sales/report", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
