package billing

import "context"

// Repository defines data access for the sales ledger.
type Repository interface {
	// RecordSale atomically checks stock, inserts the sale at the product's
	// current price, and decrements stock. No partial state survives a failure.
	RecordSale(ctx context.Context, productID int64, quantity int) (*Sale, error)
	ListSales(ctx context.Context) ([]*Sale, error)
}
