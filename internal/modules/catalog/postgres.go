package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/shoplite/shoplite-backend/internal/shared"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const uniqueViolation = "23505"

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, category, price, stock_quantity)
		VALUES ($1,$2,$3,$4)
		RETURNING product_id, created_at`,
		p.Name, p.Category, p.Price, p.StockQuantity).
		Scan(&p.ID, &p.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return shared.ErrDuplicateProduct
	}
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT product_id, name, category, price, stock_quantity, created_at
		FROM products WHERE product_id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.StockQuantity, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, category, price, stock_quantity, created_at
		FROM products ORDER BY product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.StockQuantity, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	// Deleting an absent id is a no-op success.
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE product_id=$1`, id)
	return err
}

func (r *postgresRepo) UpdateStock(ctx context.Context, id int64, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock_quantity=$1 WHERE product_id=$2`, quantity, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.ErrProductNotFound
	}
	return nil
}
