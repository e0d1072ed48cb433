package sale

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/event"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el flujo de venta:
// ninguna escritura es visible fuera de la tx hasta el commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// EventPublisher publica el evento de venta confirmada. El caso de uso lo
// invoca solo después del commit.
type EventPublisher interface {
	CreateSale(ctx context.Context, ev event.ProductSoldEvent) error
}
