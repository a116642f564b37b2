package repository

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Cada método es su propia unidad durable; no hay transacciones entre llamadas
// (el TxRunner agrupa cuando hace falta).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Search devuelve los productos cuyo ID coincide con el parseo numérico
	// del término o cuyo nombre contiene el término (sensible a mayúsculas).
	// El orden es por ID ascendente, estable para un estado fijo de la tabla.
	Search(ctx context.Context, term string) ([]*entity.Product, error)
	// AdjustQuantity aplica delta de forma atómica. Retorna domain.ErrInvalidResult
	// si el stock resultante quedaría negativo (sin modificar la fila).
	AdjustQuantity(ctx context.Context, id int64, delta int64) error
	SetPrice(ctx context.Context, id int64, price decimal.Decimal) error
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
