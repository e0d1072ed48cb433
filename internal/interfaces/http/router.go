package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/record"
	"github.com/tu-usuario/ventas-pro/internal/application/sale"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC      *sale.CreateSaleUseCase
	ProductSvc  *record.Service[*entity.Product]
	ProductRepo repository.ProductRepository
	SellerSvc   *record.Service[*entity.Seller]
	SellerRepo  repository.SellerRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductSvc, deps.ProductRepo)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sellers (protegido)
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerSvc, deps.SellerRepo)
	sellers.Post("/", sellerHandler.Create)
	sellers.Get("/:id", sellerHandler.GetByID)
	sellers.Put("/:id", sellerHandler.Update)
	sellers.Delete("/:id", sellerHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
}
