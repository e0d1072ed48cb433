package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta confirmada. Inmutable una vez creada: no existe
// camino de actualización en el flujo de ventas.
type Sale struct {
	ID           string
	UserID       string // dueño del registro (quien vendió)
	ProductID    string
	ProductPrice decimal.Decimal // precio unitario al momento de la venta
	Quantity     int64
	CreatedAt    time.Time
}

// EntityID implementa repository.Entity.
func (s *Sale) EntityID() string { return s.ID }

// SetOwner implementa repository.Entity: sella el dueño del registro.
func (s *Sale) SetOwner(userID string) { s.UserID = userID }

// TotalPrice devuelve precio unitario por cantidad.
func (s *Sale) TotalPrice() decimal.Decimal {
	return s.ProductPrice.Mul(decimal.NewFromInt(s.Quantity))
}
