package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shoplite/shoplite-backend/internal/backup"
	"github.com/shoplite/shoplite-backend/internal/shared"
)

// ProductBackup resyncs the product backup log after a sale changes stock.
type ProductBackup interface {
	ResyncBackup(ctx context.Context) error
}

// Service defines billing business logic.
type Service interface {
	GenerateBill(ctx context.Context, req BillRequest) (*Sale, error)
	SalesReport(ctx context.Context) ([]*Sale, error)
	// BackupSales rewrites the sales backup log from store state. Idempotent;
	// usable as a repair or export operation.
	BackupSales(ctx context.Context) error
}

var backupHeaders = []string{"Sale ID", "Reference", "Product ID", "Quantity", "Total Amount", "Sale Date"}

type service struct {
	repo     Repository
	sink     backup.Sink
	products ProductBackup
}

func NewService(repo Repository, sink backup.Sink, products ProductBackup) Service {
	return &service{repo: repo, sink: sink, products: products}
}

func (s *service) GenerateBill(ctx context.Context, req BillRequest) (*Sale, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", shared.ErrInvalidInput)
	}

	sale, err := s.repo.RecordSale(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.sink.Append(backupRow(sale)); err != nil {
		return nil, fmt.Errorf("sale recorded but backup append failed: %w", err)
	}
	// The sale decremented stock, so the product log needs a resync too.
	if err := s.products.ResyncBackup(ctx); err != nil {
		return nil, fmt.Errorf("sale recorded but product backup resync failed: %w", err)
	}
	return sale, nil
}

func (s *service) SalesReport(ctx context.Context) ([]*Sale, error) {
	return s.repo.ListSales(ctx)
}

func (s *service) BackupSales(ctx context.Context) error {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, backupRow(sale))
	}
	return s.sink.Rewrite(backupHeaders, rows)
}

func backupRow(s *Sale) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.Reference.String(),
		strconv.FormatInt(s.ProductID, 10),
		strconv.Itoa(s.Quantity),
		strconv.FormatFloat(s.TotalAmount, 'f', 2, 64),
		s.SaleDate.Format(time.RFC3339),
	}
}
