package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto en venta con su stock disponible.
// Stock nunca es negativo en estados confirmados; solo se muta vía decremento
// atómico dentro de una transacción (caso de uso de venta).
type Product struct {
	ID        string
	UserID    string // dueño del registro (vendedor)
	Name      string
	Price     decimal.Decimal
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntityID implementa repository.Entity.
func (p *Product) EntityID() string { return p.ID }

// SetOwner implementa repository.Entity: sella el dueño del registro.
func (p *Product) SetOwner(userID string) { p.UserID = userID }
