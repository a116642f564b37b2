package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un movimiento de stock.
func (r *StockMovementRepo) Create(ctx context.Context, mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.ProductID, mov.Type, mov.Quantity, mov.Reference, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto, del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, reference, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
