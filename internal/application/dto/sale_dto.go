package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para crear una venta.
type CreateSaleRequest struct {
	ProductID    string          `json:"product"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int64           `json:"quantity"`
}

// SaleResponse venta creada.
type SaleResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	ProductID    string          `json:"product_id"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int64           `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}
