package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller.
type SellerRepository interface {
	Store[*entity.Seller]
	GetByEmail(email string) (*entity.Seller, error)
}
