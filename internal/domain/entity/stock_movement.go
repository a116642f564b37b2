package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn     = "in"     // entrada (reposición)
	MovementTypeOut    = "out"    // salida (venta)
	MovementTypeAdjust = "adjust" // ajuste manual
)

// StockMovement representa un cambio de stock registrado en el libro de
// movimientos. Reference enlaza el movimiento con la sesión de facturación
// que lo originó (vacío para movimientos manuales).
type StockMovement struct {
	ID        string
	ProductID int64
	Type      string // in, out, adjust
	Quantity  int64  // positivo para in, negativo para out
	Reference string
	CreatedAt time.Time
}
