package sale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/event"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

// CreateSaleUseCase crea una venta y descuenta el stock del producto en una
// sola transacción, publicando ProductSold tras el commit.
type CreateSaleUseCase struct {
	txRunner  TxRunner
	saleRepo  repository.SaleRepository // lecturas fuera de transacción
	publisher EventPublisher
	log       *logger.Logger
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, publisher EventPublisher, log *logger.Logger) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, saleRepo: saleRepo, publisher: publisher, log: log}
}

// Create ejecuta la secuencia leer → validar stock → {decrementar, crear venta}
// → commit → publicar. Cualquier fallo antes del commit aborta la transacción
// sin dejar estado parcial. El dueño de la venta se sella con actorID.
func (uc *CreateSaleUseCase) Create(ctx context.Context, actorID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || !in.ProductPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		ProductPrice: in.ProductPrice,
		Quantity:     in.Quantity,
		CreatedAt:    now,
	}
	sale.SetOwner(actorID)

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE). Producto ausente
		// es NotFound explícito, nunca stock cero implícito.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return &domain.NotFoundError{Entity: "Product"}
			}
			return err
		}
		if in.Quantity > product.Stock {
			return &domain.InsufficientStockError{Requested: in.Quantity}
		}
		// Decremento condicional (stock >= cantidad): el invariante de stock
		// no negativo se sostiene aun sin el bloqueo de fila.
		if err := productRepo.DecrementStock(in.ProductID, in.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return &domain.InsufficientStockError{Requested: in.Quantity}
			}
			return err
		}
		created, err := saleRepo.Create(sale)
		if err != nil {
			return err
		}
		sale = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Publicar solo después del commit: los suscriptores nunca observan una
	// venta revertida. Un fallo del handler no revierte la venta ya
	// confirmada; se deja constancia y se responde el éxito.
	ev := event.ProductSoldEvent{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		TotalPrice: in.ProductPrice.Mul(decimal.NewFromInt(in.Quantity)),
	}
	if pubErr := uc.publisher.CreateSale(ctx, ev); pubErr != nil {
		uc.log.Warn().Err(pubErr).
			Str("sale_id", sale.ID).
			Str("product_id", in.ProductID).
			Msg("fallo el handler de ProductSold tras el commit")
	}

	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *CreateSaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Sale"}
		}
		return nil, err
	}
	return toSaleResponse(s), nil
}

// ListByUser lista las ventas de un usuario con paginación.
func (uc *CreateSaleUseCase) ListByUser(userID string, limit, offset int) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return items, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		ProductID:    s.ProductID,
		ProductPrice: s.ProductPrice,
		Quantity:     s.Quantity,
		TotalPrice:   s.TotalPrice(),
		CreatedAt:    s.CreatedAt,
	}
}
