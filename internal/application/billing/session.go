package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Estados de la sesión de facturación.
type State string

const (
	StateAccumulating State = "accumulating"
	StateClosed       State = "closed"
	StateCancelled    State = "cancelled"
)

// ErrSessionClosed indica que la sesión ya terminó y no acepta más líneas.
var ErrSessionClosed = errors.New("la sesión de facturación ya está cerrada")

// LineItem es una línea acumulada de la factura en curso. Nombre y precio son
// el snapshot del primer alta del producto en la sesión: cambios de precio
// posteriores no afectan la factura en curso.
type LineItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64 // cantidad acumulada entre altas repetidas
}

// Subtotal de la línea: precio snapshot por cantidad acumulada.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Invoice es la factura derivada al cerrar la sesión: líneas en orden de
// primera inserción y total igual a la suma de subtotales al centavo.
type Invoice struct {
	Lines []LineItem
	Total decimal.Decimal
}

// Session orquesta la acumulación interactiva de líneas contra el catálogo.
// El stock se relee en cada línea y se descuenta de inmediato; los descuentos
// ya confirmados no se revierten si una línea posterior falla o la sesión se
// abandona.
type Session struct {
	id       string
	products repository.ProductRepository
	txRunner TxRunner

	state State
	order []int64
	lines map[int64]*LineItem
}

// NewSession crea una sesión en estado Accumulating. El ID de la sesión queda
// como referencia en los movimientos de stock que genera.
func NewSession(products repository.ProductRepository, txRunner TxRunner) *Session {
	return &Session{
		id:       uuid.New().String(),
		products: products,
		txRunner: txRunner,
		state:    StateAccumulating,
		lines:    make(map[int64]*LineItem),
	}
}

// ID de la sesión (referencia de los movimientos de stock).
func (s *Session) ID() string { return s.id }

// State devuelve el estado actual de la sesión.
func (s *Session) State() State { return s.state }

// Lookup relee el producto para la siguiente línea. La lectura es siempre
// fresca: el stock vigente ya refleja los descuentos de líneas anteriores de
// esta misma sesión.
func (s *Session) Lookup(ctx context.Context, productID int64) (*entity.Product, error) {
	if s.state != StateAccumulating {
		return nil, ErrSessionClosed
	}
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// AddLine valida la cantidad contra el stock recién leído, descuenta de
// inmediato (stock + movimiento en una transacción) y acumula la línea.
// Si el producto ya tiene línea en la sesión se suma la cantidad; el snapshot
// de nombre y precio del primer alta se conserva.
func (s *Session) AddLine(ctx context.Context, product *entity.Product, qty int64) error {
	if s.state != StateAccumulating {
		return ErrSessionClosed
	}
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	if qty > product.Quantity {
		return domain.ErrInsufficientStock
	}

	now := time.Now()
	err := s.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.AdjustQuantity(ctx, product.ID, -qty); err != nil {
			return err
		}
		return movementRepo.Create(ctx, &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeOut,
			Quantity:  -qty,
			Reference: s.id,
			CreatedAt: now,
		})
	})
	if err != nil {
		// El guard de la base rechazó dejar stock negativo: otra escritura se
		// adelantó a la lectura. Para el operador es el mismo caso que arriba.
		if errors.Is(err, domain.ErrInvalidResult) {
			return domain.ErrInsufficientStock
		}
		return err
	}

	if line, ok := s.lines[product.ID]; ok {
		line.Quantity += qty
		return nil
	}
	s.lines[product.ID] = &LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  qty,
	}
	s.order = append(s.order, product.ID)
	return nil
}

// Finalize cierra la sesión. Sin líneas acumuladas la sesión queda Cancelled
// y no hay factura (retorna nil). Con líneas, arma la factura en orden de
// primera inserción y pasa a Closed.
func (s *Session) Finalize() (*Invoice, error) {
	if s.state != StateAccumulating {
		return nil, ErrSessionClosed
	}
	if len(s.order) == 0 {
		s.state = StateCancelled
		return nil, nil
	}

	inv := &Invoice{Lines: make([]LineItem, 0, len(s.order))}
	total := decimal.Zero
	for _, id := range s.order {
		line := *s.lines[id]
		inv.Lines = append(inv.Lines, line)
		total = total.Add(line.Subtotal())
	}
	inv.Total = total
	s.state = StateClosed
	return inv, nil
}
