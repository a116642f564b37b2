package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación en memoria del libro de movimientos.
type StockMovementRepo struct {
	mu        sync.RWMutex
	movements []entity.StockMovement
}

// NewStockMovementRepository construye el repositorio vacío.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{}
}

// Create registra un movimiento.
func (r *StockMovementRepo) Create(_ context.Context, mov *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *mov)
	return nil
}

// ListByProduct lista los movimientos de un producto, del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			cp := r.movements[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}
