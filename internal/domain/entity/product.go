package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// El ID lo asigna el operador al crear el producto y es inmutable; Quantity
// nunca puede quedar negativa (lo garantiza el adaptador de persistencia).
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal // precio de venta
	Quantity  int64           // stock disponible
	CreatedAt time.Time
	UpdatedAt time.Time
}
