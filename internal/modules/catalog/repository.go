package catalog

import "context"

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Delete(ctx context.Context, id int64) error
	UpdateStock(ctx context.Context, id int64, quantity int) error
}
