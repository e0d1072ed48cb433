package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables: solo creación y lectura.
type SaleRepository interface {
	Create(sale *entity.Sale) (*entity.Sale, error)
	GetByID(id string) (*entity.Sale, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Sale, error)
}
