package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// Open connects to PostgreSQL and verifies the connection.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Migrate creates the schema when it does not exist yet.
func Migrate(ctx context.Context, conn *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id       SERIAL PRIMARY KEY,
			username      VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(100) NOT NULL,
			role          VARCHAR(50) NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id     SERIAL PRIMARY KEY,
			name           VARCHAR(100) NOT NULL UNIQUE,
			category       VARCHAR(100),
			price          NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			stock_quantity INT NOT NULL CHECK (stock_quantity >= 0),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			sale_id      SERIAL PRIMARY KEY,
			reference    UUID NOT NULL UNIQUE,
			product_id   INT NOT NULL REFERENCES products(product_id),
			quantity     INT NOT NULL CHECK (quantity > 0),
			total_amount NUMERIC(10,2) NOT NULL,
			sale_date    TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
