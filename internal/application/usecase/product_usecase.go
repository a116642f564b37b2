package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción
// (ajuste de stock + movimiento como unidad durable).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// ProductUseCase casos de uso CRUD para productos. Los cambios de stock pasan
// por el TxRunner para dejar rastro en el libro de movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un nuevo producto con ID elegido por el operador.
// ID, precio y cantidad deben ser mayores que cero; ID repetido -> ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, id int64, name string, price decimal.Decimal, qty int64) (*entity.Product, error) {
	if id <= 0 || !price.GreaterThan(decimal.Zero) || qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// IncreaseQuantity suma qty unidades al stock y registra el movimiento de
// entrada en la misma transacción.
func (uc *ProductUseCase) IncreaseQuantity(ctx context.Context, id int64, qty int64) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.AdjustQuantity(ctx, id, qty); err != nil {
			return err
		}
		return movementRepo.Create(ctx, &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: id,
			Type:      entity.MovementTypeIn,
			Quantity:  qty,
			CreatedAt: now,
		})
	})
}

// ChangePrice fija un nuevo precio. Se exige precio mayor que cero, igual que
// en el alta del producto.
func (uc *ProductUseCase) ChangePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return uc.repo.SetPrice(ctx, id, price)
}

// Search busca por ID exacto o subcadena del nombre.
func (uc *ProductUseCase) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	return uc.repo.Search(ctx, term)
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.ListAll(ctx)
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
