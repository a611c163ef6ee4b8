package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"product-api/config"
)

// The schema is plain SQL rather than AutoMigrate tags because the FK
// cascade behavior and the composite index have to be exact.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS product_categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_categories_active ON product_categories (active)`,
	`CREATE INDEX IF NOT EXISTS idx_product_categories_name ON product_categories (name)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category_id BIGINT NOT NULL REFERENCES product_categories (id) ON UPDATE CASCADE ON DELETE CASCADE,
		price NUMERIC(10,2) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_active ON products (active)`,
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products (name)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category_id_active ON products (category_id, active)`,
}

// Migrate applies the schema over database/sql so it runs before the
// ORM session is opened. Every statement is idempotent.
func Migrate(cfg config.Config) error {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
