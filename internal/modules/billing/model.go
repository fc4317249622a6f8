package billing

import (
	"time"

	"github.com/google/uuid"
)

// Sale records one completed bill. Sales are insert-only; they are never
// updated or deleted.
type Sale struct {
	ID          int64     `json:"id"`
	Reference   uuid.UUID `json:"reference"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	SaleDate    time.Time `json:"sale_date"`
}

// BillRequest is the payload for generating a bill.
type BillRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
