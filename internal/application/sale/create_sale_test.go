package sale_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/sale"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/event"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: repos en memoria + runner transaccional con rollback real
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Create(p *entity.Product) (*entity.Product, error) {
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) Update(id string, p *entity.Product) (*entity.Product, error) {
	current, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	current.Name = p.Name
	current.Price = p.Price
	return current, nil
}

func (r *fakeProductRepo) Delete(id string) (*entity.Product, error) {
	current, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.products, id)
	return current, nil
}

func (r *fakeProductRepo) DecrementStock(id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok || p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) (*entity.Sale, error) {
	cp := *s
	r.sales = append(r.sales, &cp)
	return &cp, nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSaleRepo) ListByUser(userID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner toma un snapshot antes de fn y lo restaura si fn o el commit
// fallan: ninguna escritura parcial sobrevive a un aborto.
type fakeTxRunner struct {
	products  *fakeProductRepo
	sales     *fakeSaleRepo
	commitErr error
	commits   int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	snapProducts := make(map[string]*entity.Product, len(r.products.products))
	for id, p := range r.products.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapSales := len(r.sales.sales)

	rollback := func() {
		r.products.products = snapProducts
		r.sales.sales = r.sales.sales[:snapSales]
	}

	if err := fn(r.products, r.sales); err != nil {
		rollback()
		return err
	}
	if r.commitErr != nil {
		rollback()
		return fmt.Errorf("commit transaction (%v): %w", r.commitErr, domain.ErrConflict)
	}
	r.commits++
	return nil
}

type capturePublisher struct {
	events []event.ProductSoldEvent
	err    error
}

func (p *capturePublisher) CreateSale(_ context.Context, ev event.ProductSoldEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

type fixture struct {
	uc        *sale.CreateSaleUseCase
	products  *fakeProductRepo
	sales     *fakeSaleRepo
	runner    *fakeTxRunner
	publisher *capturePublisher
}

func newFixture(t *testing.T, seed ...*entity.Product) *fixture {
	t.Helper()
	products := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range seed {
		products.products[p.ID] = p
	}
	sales := &fakeSaleRepo{}
	runner := &fakeTxRunner{products: products, sales: sales}
	publisher := &capturePublisher{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return &fixture{
		uc:        sale.NewCreateSaleUseCase(runner, sales, publisher, log),
		products:  products,
		sales:     sales,
		runner:    runner,
		publisher: publisher,
	}
}

func producto(id string, stock int64) *entity.Product {
	return &entity.Product{ID: id, Name: "producto", Price: decimal.NewFromInt(10), Stock: stock}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de venta
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: stock 5, se venden 2 → venta creada, stock 3, un solo evento
// con total = precio unitario × cantidad.
func TestCreateSale_VentaExitosa(t *testing.T) {
	f := newFixture(t, producto("prod1", 5))

	out, err := f.uc.Create(context.Background(), "user123", dto.CreateSaleRequest{
		ProductID:    "prod1",
		ProductPrice: decimal.NewFromInt(10),
		Quantity:     2,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "user123", out.UserID, "el dueño de la venta es el actor")
	assert.Equal(t, int64(2), out.Quantity)
	assert.True(t, out.TotalPrice.Equal(decimal.NewFromInt(20)))

	assert.Equal(t, int64(3), f.products.products["prod1"].Stock, "el stock debe quedar en 3")
	assert.Len(t, f.sales.sales, 1, "debe persistirse exactamente una venta")
	assert.Equal(t, 1, f.runner.commits)

	require.Len(t, f.publisher.events, 1, "debe publicarse exactamente un evento")
	ev := f.publisher.events[0]
	assert.Equal(t, "prod1", ev.ProductID)
	assert.Equal(t, int64(2), ev.Quantity)
	assert.True(t, ev.TotalPrice.Equal(decimal.NewFromInt(20)))
}

// Escenario B: stock 2, se piden 3 → falla con el mensaje de stock, nada se
// escribe y no se publica evento.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	f := newFixture(t, producto("prod1", 2))

	out, err := f.uc.Create(context.Background(), "user123", dto.CreateSaleRequest{
		ProductID:    "prod1",
		ProductPrice: decimal.NewFromInt(10),
		Quantity:     3,
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualError(t, err, "3 product are not available in stock!",
		"el mensaje debe llevar la cantidad solicitada")

	assert.Equal(t, int64(2), f.products.products["prod1"].Stock, "el stock no debe cambiar")
	assert.Empty(t, f.sales.sales, "no debe persistirse ninguna venta")
	assert.Empty(t, f.publisher.events, "no debe publicarse ningún evento")
}

// Producto inexistente → NotFound explícito, nunca stock cero implícito.
func TestCreateSale_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), "user123", dto.CreateSaleRequest{
		ProductID:    "no-existe",
		ProductPrice: decimal.NewFromInt(10),
		Quantity:     1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product is not found!")
	assert.Empty(t, f.publisher.events)
}

// Entrada inválida se rechaza antes de abrir la transacción.
func TestCreateSale_EntradaInvalida(t *testing.T) {
	f := newFixture(t, producto("prod1", 5))

	casos := []dto.CreateSaleRequest{
		{ProductID: "", ProductPrice: decimal.NewFromInt(10), Quantity: 1},
		{ProductID: "prod1", ProductPrice: decimal.NewFromInt(10), Quantity: 0},
		{ProductID: "prod1", ProductPrice: decimal.NewFromInt(10), Quantity: -2},
		{ProductID: "prod1", ProductPrice: decimal.Zero, Quantity: 1},
	}
	for _, in := range casos {
		_, err := f.uc.Create(context.Background(), "user123", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 0, f.runner.commits, "ninguna transacción debe abrirse")
	assert.Empty(t, f.publisher.events)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad y orden commit → publish
// ──────────────────────────────────────────────────────────────────────────────

// Si el commit falla, el decremento y la venta se revierten juntos y no se
// publica nada: el evento solo existe si la venta quedó confirmada.
func TestCreateSale_FalloDeCommitReverteTodo(t *testing.T) {
	f := newFixture(t, producto("prod1", 5))
	f.runner.commitErr = errors.New("serialization failure")

	_, err := f.uc.Create(context.Background(), "user123", dto.CreateSaleRequest{
		ProductID:    "prod1",
		ProductPrice: decimal.NewFromInt(10),
		Quantity:     2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict, "el fallo de commit se clasifica como conflicto")

	assert.Equal(t, int64(5), f.products.products["prod1"].Stock, "el decremento no debe ser visible")
	assert.Empty(t, f.sales.sales, "la venta no debe ser visible")
	assert.Empty(t, f.publisher.events, "jamás publicar sobre una transacción abortada")
}

// Un handler que falla después del commit no revierte la venta: se registra en
// el log y la operación sigue siendo un éxito.
func TestCreateSale_FalloDelHandlerNoReverteLaVenta(t *testing.T) {
	f := newFixture(t, producto("prod1", 5))
	f.publisher.err = errors.New("suscriptor roto")

	out, err := f.uc.Create(context.Background(), "user123", dto.CreateSaleRequest{
		ProductID:    "prod1",
		ProductPrice: decimal.NewFromInt(10),
		Quantity:     2,
	})

	require.NoError(t, err, "la venta ya está confirmada; el publish no la deshace")
	require.NotNil(t, out)
	assert.Equal(t, int64(3), f.products.products["prod1"].Stock)
	assert.Len(t, f.sales.sales, 1)
	assert.Len(t, f.publisher.events, 1, "el publish sí debe haberse intentado")
}

// Invariante de stock: ninguna secuencia de ventas exitosas deja stock
// negativo ni vende más que el stock inicial.
func TestCreateSale_InvarianteDeStock(t *testing.T) {
	const stockInicial = int64(5)
	f := newFixture(t, producto("prod1", stockInicial))

	var vendido int64
	for i := 0; i < 10; i++ {
		out, err := f.uc.Create(context.Background(), "user123", dto.CreateSaleRequest{
			ProductID:    "prod1",
			ProductPrice: decimal.NewFromInt(10),
			Quantity:     2,
		})
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			continue
		}
		vendido += out.Quantity
		assert.GreaterOrEqual(t, f.products.products["prod1"].Stock, int64(0),
			"el stock nunca puede ser negativo")
	}
	assert.LessOrEqual(t, vendido, stockInicial,
		"la suma de ventas exitosas no puede superar el stock inicial")
	assert.Len(t, f.publisher.events, int(vendido/2), "un evento por venta exitosa")
}
