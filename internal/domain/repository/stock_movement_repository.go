package repository

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos de stock.
type StockMovementRepository interface {
	Create(ctx context.Context, mov *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error)
}
