package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/record"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
// El CRUD pasa por el servicio genérico de registros; las lecturas van directo
// al repositorio.
type ProductHandler struct {
	svc  *record.Service[*entity.Product]
	repo repository.ProductRepository
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *record.Service[*entity.Product], repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{svc: svc, repo: repo}
}

// Create crea un producto; el dueño se sella con el usuario autenticado.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	product := &entity.Product{Name: in.Name, Price: in.Price, Stock: in.Stock}
	created, err := h.svc.Create(product, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(created))
}

// GetByID devuelve un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// Update actualiza nombre y precio. El stock solo se muta vía ventas.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	updated, err := h.svc.Update(c.Params("id"), &entity.Product{Name: in.Name, Price: in.Price})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(updated))
}

// Delete elimina un producto y devuelve su último estado.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.svc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(deleted))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
