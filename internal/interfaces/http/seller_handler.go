package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/record"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"github.com/tu-usuario/ventas-pro/internal/domain/valueobject"
)

// SellerHandler maneja las peticiones HTTP de vendedores (protegido).
type SellerHandler struct {
	svc  *record.Service[*entity.Seller]
	repo repository.SellerRepository
}

// NewSellerHandler construye el handler.
func NewSellerHandler(svc *record.Service[*entity.Seller], repo repository.SellerRepository) *SellerHandler {
	return &SellerHandler{svc: svc, repo: repo}
}

// sellerFromRequest valida email y contacto en construcción.
func sellerFromRequest(name, email, contact string) (*entity.Seller, error) {
	em, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	cn, err := valueobject.NewContactNumber(contact)
	if err != nil {
		return nil, err
	}
	return &entity.Seller{Name: name, Email: em, ContactNumber: cn}, nil
}

// Create registra un vendedor; el dueño se sella con el usuario autenticado.
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	seller, err := sellerFromRequest(in.Name, in.Email, in.ContactNumber)
	if err != nil {
		return respondError(c, err)
	}
	created, err := h.svc.Create(seller, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSellerResponse(created))
}

// GetByID devuelve un vendedor.
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	seller, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSellerResponse(seller))
}

// Update actualiza un vendedor existente.
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	seller, err := sellerFromRequest(in.Name, in.Email, in.ContactNumber)
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.svc.Update(c.Params("id"), seller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSellerResponse(updated))
}

// Delete elimina un vendedor y devuelve su último estado.
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.svc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSellerResponse(deleted))
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	return &dto.SellerResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Name:          s.Name,
		Email:         s.Email.String(),
		ContactNumber: s.ContactNumber.String(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
