package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Incluye el Store genérico (CRUD) más las operaciones transaccionales que usa
// el flujo de venta.
type ProductRepository interface {
	Store[*entity.Product]
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// DecrementStock descuenta quantity de forma condicional: solo si
	// stock >= quantity. Retorna domain.ErrInsufficientStock si no aplica.
	DecrementStock(id string, quantity int64) error
}
