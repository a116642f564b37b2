package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. ID duplicado -> domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Quantity,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Retorna (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Search busca por ID exacto (si el término parsea como entero) o por
// subcadena del nombre, sensible a mayúsculas. Orden estable por ID.
func (r *ProductRepo) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	// IDs válidos son > 0; -1 nunca coincide cuando el término no es numérico.
	id, err := strconv.ParseInt(term, 10, 64)
	if err != nil {
		id = -1
	}
	query := `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE id = $1 OR POSITION($2 IN name) > 0
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, id, term)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// AdjustQuantity aplica delta de forma atómica. La condición quantity + delta >= 0
// garantiza que el stock nunca queda negativo sin necesidad de leer antes.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id int64, delta int64) error {
	query := `
		UPDATE products SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0`
	cmd, err := r.q.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Distinguir fila inexistente de resultado negativo rechazado.
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidResult
	}
	return nil
}

// SetPrice actualiza solo el precio del producto.
func (r *ProductRepo) SetPrice(ctx context.Context, id int64, price decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET price = $2, updated_at = now() WHERE id = $1`,
		id, price,
	)
	if err != nil {
		return fmt.Errorf("set price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll lista el catálogo completo ordenado por ID.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
