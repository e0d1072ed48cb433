package eventbus

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/domain/event"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

// SoldProductLogHandler es el suscriptor de ProductSold: deja constancia de la
// venta en el log estructurado. Efecto lateral puro; no participa en el
// resultado de negocio de la venta.
type SoldProductLogHandler struct {
	log *logger.Logger
}

// NewSoldProductLogHandler construye el suscriptor.
func NewSoldProductLogHandler(log *logger.Logger) *SoldProductLogHandler {
	return &SoldProductLogHandler{log: log}
}

// Register registra el handler en el bus bajo ProductSold. Llamar en el
// arranque (cmd/api/main.go); no hay auto-registro en init.
func (h *SoldProductLogHandler) Register(bus *Bus) {
	bus.RegisterHandler(event.ProductSold, h.handleProductSold)
}

func (h *SoldProductLogHandler) handleProductSold(_ context.Context, e any) error {
	ev, ok := e.(event.ProductSoldEvent)
	if !ok {
		return fmt.Errorf("payload inesperado para %s: %T", event.ProductSold, e)
	}
	h.log.Info().
		Str("product_id", ev.ProductID).
		Int64("quantity", ev.Quantity).
		Str("total_price", ev.TotalPrice.String()).
		Msgf("[ProductSold] Product %s sold %d units for $%s", ev.ProductID, ev.Quantity, ev.TotalPrice)
	return nil
}
