package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, user_id, name, price, stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. Ausente -> domain.ErrNotFound.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(p *entity.Product) (*entity.Product, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, user_id, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING ` + productColumns
	created, err := scanProduct(r.q.QueryRow(context.Background(), query,
		p.ID, p.UserID, p.Name, p.Price, p.Stock))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// Update aplica nombre y precio sobre el registro id y devuelve el estado
// resultante. Ausente -> domain.ErrNotFound (tolerado por el caller como
// resultado equivalente a fallar el chequeo de existencia).
func (r *ProductRepo) Update(id string, p *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products SET name = $2, price = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	updated, err := scanProduct(r.q.QueryRow(context.Background(), query, id, p.Name, p.Price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete elimina el producto y devuelve su estado previo.
func (r *ProductRepo) Delete(id string) (*entity.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns
	deleted, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return deleted, nil
}

// DecrementStock descuenta quantity solo si hay stock suficiente. La condición
// stock >= $2 sostiene el invariante de stock no negativo aun bajo decrementos
// concurrentes sobre la misma fila.
func (r *ProductRepo) DecrementStock(id string, quantity int64) error {
	query := `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`
	ct, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
