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
	"github.com/tu-usuario/ventas-pro/internal/domain/valueobject"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación de SellerRepository sobre PostgreSQL (usable con pool o tx).
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

const sellerColumns = `id, user_id, name, email, contact_number, created_at, updated_at`

func scanSeller(row pgx.Row) (*entity.Seller, error) {
	var s entity.Seller
	var email, contact string
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &email, &contact, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// Ya validados al persistir; la lectura no re-valida.
	s.Email = valueobject.Email(email)
	s.ContactNumber = valueobject.ContactNumber(contact)
	return &s, nil
}

// GetByID obtiene un vendedor por ID. Ausente -> domain.ErrNotFound.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`
	s, err := scanSeller(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return s, nil
}

// GetByEmail obtiene un vendedor por email. Ausente -> domain.ErrNotFound.
func (r *SellerRepo) GetByEmail(email string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE email = $1`
	s, err := scanSeller(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get seller by email: %w", err)
	}
	return s, nil
}

// Create persiste un vendedor nuevo.
func (r *SellerRepo) Create(s *entity.Seller) (*entity.Seller, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sellers (id, user_id, name, email, contact_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING ` + sellerColumns
	created, err := scanSeller(r.q.QueryRow(context.Background(), query,
		s.ID, s.UserID, s.Name, s.Email.String(), s.ContactNumber.String()))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("create seller: %w", err)
	}
	return created, nil
}

// Update aplica el payload sobre el registro id y devuelve el estado resultante.
func (r *SellerRepo) Update(id string, s *entity.Seller) (*entity.Seller, error) {
	query := `
		UPDATE sellers SET name = $2, email = $3, contact_number = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + sellerColumns
	updated, err := scanSeller(r.q.QueryRow(context.Background(), query,
		id, s.Name, s.Email.String(), s.ContactNumber.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update seller: %w", err)
	}
	return updated, nil
}

// Delete elimina el vendedor y devuelve su estado previo.
func (r *SellerRepo) Delete(id string) (*entity.Seller, error) {
	query := `DELETE FROM sellers WHERE id = $1 RETURNING ` + sellerColumns
	deleted, err := scanSeller(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete seller: %w", err)
	}
	return deleted, nil
}
