package billing

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Cada invocación es una unidad durable independiente: el descuento de stock
// de una línea y su movimiento se confirman juntos, pero líneas distintas de
// una misma sesión no comparten transacción (política decrement-as-you-go).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
