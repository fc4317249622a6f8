package billing

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite-backend/internal/shared"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) RecordSale(ctx context.Context, productID int64, quantity int) (*Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var price float64
	var stock int
	err = tx.QueryRowContext(ctx, `
		SELECT price, stock_quantity FROM products
		WHERE product_id=$1 FOR UPDATE`, productID).
		Scan(&price, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if quantity > stock {
		return nil, shared.ErrInsufficientStock
	}

	sale := &Sale{
		Reference:   uuid.New(),
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: float64(quantity) * price,
		SaleDate:    time.Now(),
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO sales (reference, product_id, quantity, total_amount, sale_date)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING sale_id`,
		sale.Reference, sale.ProductID, sale.Quantity, sale.TotalAmount, sale.SaleDate).
		Scan(&sale.ID)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE products SET stock_quantity = stock_quantity - $1
		WHERE product_id=$2`, quantity, productID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *postgresRepo) ListSales(ctx context.Context) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sale_id, reference, product_id, quantity, total_amount, sale_date
		FROM sales ORDER BY sale_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*Sale
	for rows.Next() {
		s := &Sale{}
		if err := rows.Scan(&s.ID, &s.Reference, &s.ProductID, &s.Quantity, &s.TotalAmount, &s.SaleDate); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
