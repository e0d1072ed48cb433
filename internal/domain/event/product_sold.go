package event

import "github.com/shopspring/decimal"

// Nombres de eventos de negocio publicados por la aplicación.
const ProductSold = "ProductSold"

// ProductSoldEvent es el payload del evento ProductSold. Valor transitorio,
// no persistido: se produce exactamente una vez por venta confirmada.
type ProductSoldEvent struct {
	ProductID  string
	Quantity   int64
	TotalPrice decimal.Decimal
}
