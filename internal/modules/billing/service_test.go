package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/internal/shared"
)

type fakeProduct struct {
	price float64
	stock int
}

// fakeRepo mirrors the transactional store semantics in memory: a failed
// RecordSale leaves products and sales untouched.
type fakeRepo struct {
	products map[int64]*fakeProduct
	sales    []*Sale
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[int64]*fakeProduct{}, nextID: 1}
}

func (r *fakeRepo) RecordSale(ctx context.Context, productID int64, quantity int) (*Sale, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, shared.ErrProductNotFound
	}
	if quantity > p.stock {
		return nil, shared.ErrInsufficientStock
	}
	sale := &Sale{
		ID:          r.nextID,
		Reference:   uuid.New(),
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: float64(quantity) * p.price,
		SaleDate:    time.Now(),
	}
	r.nextID++
	p.stock -= quantity
	r.sales = append(r.sales, sale)
	return sale, nil
}

func (r *fakeRepo) ListSales(ctx context.Context) ([]*Sale, error) {
	out := make([]*Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

type recordingSink struct {
	appended    [][]string
	lastHeaders []string
	lastRows    [][]string
	rewrites    int
}

func (s *recordingSink) Append(record []string) error {
	s.appended = append(s.appended, record)
	return nil
}

func (s *recordingSink) Rewrite(headers []string, rows [][]string) error {
	s.lastHeaders = headers
	s.lastRows = rows
	s.rewrites++
	return nil
}

type recordingProductBackup struct{ resyncs int }

func (b *recordingProductBackup) ResyncBackup(ctx context.Context) error {
	b.resyncs++
	return nil
}

func TestGenerateBill(t *testing.T) {
	repo := newFakeRepo()
	repo.products[1] = &fakeProduct{price: 2.00, stock: 10}
	sink := &recordingSink{}
	products := &recordingProductBackup{}
	svc := NewService(repo, sink, products)

	sale, err := svc.GenerateBill(context.Background(), BillRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, 6.00, sale.TotalAmount)
	assert.Equal(t, 7, repo.products[1].stock)
	assert.False(t, sale.SaleDate.IsZero())

	require.Len(t, sink.appended, 1)
	assert.Equal(t, "1", sink.appended[0][0])
	assert.Equal(t, "6.00", sink.appended[0][4])
	assert.Equal(t, 1, products.resyncs)
}

func TestGenerateBillInsufficientStock(t *testing.T) {
	repo := newFakeRepo()
	repo.products[1] = &fakeProduct{price: 2.00, stock: 10}
	sink := &recordingSink{}
	products := &recordingProductBackup{}
	svc := NewService(repo, sink, products)
	ctx := context.Background()

	_, err := svc.GenerateBill(ctx, BillRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	// Overselling the remaining stock is rejected and mutates nothing.
	_, err = svc.GenerateBill(ctx, BillRequest{ProductID: 1, Quantity: 20})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Equal(t, 7, repo.products[1].stock)
	assert.Len(t, repo.sales, 1)
	assert.Len(t, sink.appended, 1)
	assert.Equal(t, 1, products.resyncs)
}

func TestGenerateBillProductNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingSink{}, &recordingProductBackup{})

	_, err := svc.GenerateBill(context.Background(), BillRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, shared.ErrProductNotFound)
}

func TestGenerateBillRejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeRepo()
	repo.products[1] = &fakeProduct{price: 2.00, stock: 10}
	svc := NewService(repo, &recordingSink{}, &recordingProductBackup{})
	ctx := context.Background()

	_, err := svc.GenerateBill(ctx, BillRequest{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.GenerateBill(ctx, BillRequest{ProductID: 1, Quantity: -2})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	assert.Equal(t, 10, repo.products[1].stock)
	assert.Empty(t, repo.sales)
}

func TestSalesReport(t *testing.T) {
	repo := newFakeRepo()
	repo.products[1] = &fakeProduct{price: 2.00, stock: 10}
	svc := NewService(repo, &recordingSink{}, &recordingProductBackup{})
	ctx := context.Background()

	report, err := svc.SalesReport(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)

	_, err = svc.GenerateBill(ctx, BillRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	report, err = svc.SalesReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, int64(1), report[0].ProductID)
	assert.Equal(t, 4.00, report[0].TotalAmount)
}

func TestBackupSalesIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.products[1] = &fakeProduct{price: 2.00, stock: 10}
	sink := &recordingSink{}
	svc := NewService(repo, sink, &recordingProductBackup{})
	ctx := context.Background()

	_, err := svc.GenerateBill(ctx, BillRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.BackupSales(ctx))
	firstRows := sink.lastRows
	require.NoError(t, svc.BackupSales(ctx))

	assert.Equal(t, []string{"Sale ID", "Reference", "Product ID", "Quantity", "Total Amount", "Sale Date"}, sink.lastHeaders)
	assert.Equal(t, firstRows, sink.lastRows)
	require.Len(t, sink.lastRows, 1)
	assert.Equal(t, "6.00", sink.lastRows[0][4])
}
