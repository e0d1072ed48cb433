package eventbus

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/event"
)

// Publisher expone una operación tipada por cada evento de negocio y la
// traduce a un despacho en el bus bajo su nombre fijo. Solo traducción:
// sin validación ni efectos más allá del dispatch.
type Publisher struct {
	bus *Bus
}

// NewPublisher construye el publicador sobre el bus.
func NewPublisher(bus *Bus) *Publisher {
	return &Publisher{bus: bus}
}

// CreateSale publica el evento ProductSold. El error del bus (es decir, del
// handler registrado) se propaga sin cambios.
func (p *Publisher) CreateSale(ctx context.Context, ev event.ProductSoldEvent) error {
	return p.bus.DispatchEvent(ctx, event.ProductSold, ev)
}
