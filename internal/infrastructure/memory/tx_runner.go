package memory

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/application/billing"
	"github.com/jhoicas/retail-pos/internal/application/usecase"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

// Ensure TxRunner implements billing.TxRunner and usecase.TxRunner.
var _ billing.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el callback directamente sobre los repos en memoria.
// No hay transacción real: si fn falla a mitad de camino no se revierte lo ya
// aplicado, a diferencia del runner PostgreSQL.
type TxRunner struct {
	products  *ProductRepo
	movements *StockMovementRepo
}

// NewTxRunner construye el runner sobre los repos dados.
func NewTxRunner(products *ProductRepo, movements *StockMovementRepo) *TxRunner {
	return &TxRunner{products: products, movements: movements}
}

// Run ejecuta fn con los repos en memoria.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.products, r.movements)
}
