// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y permite correr la caja sin base de datos.
package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
// Replica el contrato del adaptador PostgreSQL, incluido el guard de stock
// no negativo en AdjustQuantity.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[int64]entity.Product)}
}

// Create persiste un nuevo producto. ID repetido -> domain.ErrDuplicate.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID retorna una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Search busca por ID exacto o subcadena del nombre (sensible a mayúsculas),
// en orden estable por ID.
func (r *ProductRepo) Search(_ context.Context, term string) ([]*entity.Product, error) {
	id, err := strconv.ParseInt(term, 10, 64)
	if err != nil {
		id = -1
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.ID == id || strings.Contains(p.Name, term) {
			cp := p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// AdjustQuantity aplica delta de forma atómica; nunca deja stock negativo.
func (r *ProductRepo) AdjustQuantity(_ context.Context, id int64, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Quantity+delta < 0 {
		return domain.ErrInvalidResult
	}
	p.Quantity += delta
	r.products[id] = p
	return nil
}

// SetPrice actualiza solo el precio.
func (r *ProductRepo) SetPrice(_ context.Context, id int64, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	r.products[id] = p
	return nil
}

// ListAll lista el catálogo completo ordenado por ID.
func (r *ProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}
