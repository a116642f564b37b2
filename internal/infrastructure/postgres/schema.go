package postgres

import (
	"context"
	"fmt"
)

// Sentencias de arranque: la herramienta crea sus tablas si no existen,
// igual que hace con el resto de recursos que posee en exclusiva.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         BIGINT PRIMARY KEY,
		name       TEXT NOT NULL,
		price      NUMERIC(10, 2) NOT NULL,
		quantity   BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id         UUID PRIMARY KEY,
		product_id BIGINT NOT NULL,
		type       TEXT NOT NULL,
		quantity   BIGINT NOT NULL,
		reference  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (product_id)`,
}

// EnsureSchema crea las tablas de la aplicación si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
