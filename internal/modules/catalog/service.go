package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shoplite/shoplite-backend/internal/backup"
	"github.com/shoplite/shoplite-backend/internal/shared"
)

// Service defines catalog business logic.
type Service interface {
	AddProduct(ctx context.Context, req AddProductRequest) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	UpdateStock(ctx context.Context, id int64, quantity int) error
	// ResyncBackup rewrites the product backup log from store state.
	ResyncBackup(ctx context.Context) error
}

// AddProductRequest holds the data for creating a product.
type AddProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

var backupHeaders = []string{"Product ID", "Name", "Category", "Price", "Stock"}

type service struct {
	repo Repository
	sink backup.Sink
}

func NewService(repo Repository, sink backup.Sink) Service {
	return &service{repo: repo, sink: sink}
}

func (s *service) AddProduct(ctx context.Context, req AddProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", shared.ErrInvalidInput)
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("%w: stock quantity cannot be negative", shared.ErrInvalidInput)
	}

	p := &Product{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.sink.Append(backupRow(p)); err != nil {
		return nil, fmt.Errorf("product added but backup append failed: %w", err)
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.ResyncBackup(ctx)
}

// UpdateStock sets the stock level to quantity. The value is absolute, not a
// delta; callers compute post-sale levels themselves.
func (s *service) UpdateStock(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", shared.ErrInvalidInput)
	}
	if err := s.repo.UpdateStock(ctx, id, quantity); err != nil {
		return err
	}
	return s.ResyncBackup(ctx)
}

func (s *service) ResyncBackup(ctx context.Context) error {
	products, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, backupRow(p))
	}
	return s.sink.Rewrite(backupHeaders, rows)
}

func backupRow(p *Product) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Name,
		p.Category,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		strconv.Itoa(p.StockQuantity),
	}
}
