package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type cartRepoMock struct{ mock.Mock }

func (m *cartRepoMock) Create(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *cartRepoMock) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	args := m.Called(ctx, id)
	cart, _ := args.Get(0).(*model.Cart)
	return cart, args.Error(1)
}

func (m *cartRepoMock) FindByOwnerKey(ctx context.Context, ownerKey string) (*model.Cart, error) {
	args := m.Called(ctx, ownerKey)
	cart, _ := args.Get(0).(*model.Cart)
	return cart, args.Error(1)
}

func (m *cartRepoMock) Update(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *cartRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) List(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	args := m.Called(ctx, includeInactive)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) ListByCategory(ctx context.Context, category model.ProductCategory, includeInactive bool) ([]model.Product, error) {
	args := m.Called(ctx, category, includeInactive)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) ListFeatured(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	args := m.Called(ctx, includeInactive)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) Search(ctx context.Context, term string, includeInactive bool) ([]model.Product, error) {
	args := m.Called(ctx, term, includeInactive)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *productRepoMock) HardDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubIDGen struct{}

func (g *stubIDGen) NewID() string { return "generated-id" }

type stubClock struct{}

func (c *stubClock) Now() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func newCartEcho(cartRepo *cartRepoMock, productRepo *productRepoMock) *echo.Echo {
	uc := usecase.NewCartUsecase(cartRepo, productRepo, &stubIDGen{}, &stubClock{}, false)
	e := echo.New()
	handler.NewCartHandler(uc).RegisterRoutes(e)
	return e
}

func TestCartHandler_Create(t *testing.T) {
	cartRepo := new(cartRepoMock)
	e := newCartEcho(cartRepo, new(productRepoMock))

	cartRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"owner_key":"session-1"}`
	req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var out usecase.CartOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "generated-id", out.ID)
	assert.Equal(t, "session-1", out.OwnerKey)
}

func TestCartHandler_Create_MissingOwnerKey(t *testing.T) {
	e := newCartEcho(new(cartRepoMock), new(productRepoMock))

	req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_GetByID_NotFound(t *testing.T) {
	cartRepo := new(cartRepoMock)
	e := newCartEcho(cartRepo, new(productRepoMock))

	cartRepo.On("FindByID", mock.Anything, "missing").Return(nil, repo.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/carts/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), usecase.CodeCartNotFound)
}

func TestCartHandler_GetByOwner(t *testing.T) {
	cartRepo := new(cartRepoMock)
	e := newCartEcho(cartRepo, new(productRepoMock))

	cart := &model.Cart{ID: "cart-1", OwnerKey: "session-1", Items: model.CartItems{}}
	cartRepo.On("FindByOwnerKey", mock.Anything, "session-1").Return(cart, nil)

	req := httptest.NewRequest(http.MethodGet, "/carts?owner_key=session-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_GetByOwner_MissingKey(t *testing.T) {
	e := newCartEcho(new(cartRepoMock), new(productRepoMock))

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	cartRepo := new(cartRepoMock)
	productRepo := new(productRepoMock)
	e := newCartEcho(cartRepo, productRepo)

	p := &model.Product{
		ID:     "p1",
		Name:   "Hydraulic Press",
		Price:  4999,
		Status: model.ProductStatusActive,
		Stock:  10,
	}
	productRepo.On("FindByID", mock.Anything, "p1").Return(p, nil)
	cartRepo.On("FindByID", mock.Anything, "cart-1").Return(&model.Cart{ID: "cart-1", OwnerKey: "session-1"}, nil)
	cartRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	body := `{"product_id":"p1","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/carts/cart-1/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(9998), out.Subtotal)
	assert.Equal(t, int64(2), out.TotalItems)
}

func TestCartHandler_AddItem_InsufficientStock(t *testing.T) {
	cartRepo := new(cartRepoMock)
	productRepo := new(productRepoMock)
	e := newCartEcho(cartRepo, productRepo)

	p := &model.Product{ID: "p1", Name: "Drill", Price: 100, Status: model.ProductStatusActive, Stock: 1}
	productRepo.On("FindByID", mock.Anything, "p1").Return(p, nil)

	body := `{"product_id":"p1","quantity":5}`
	req := httptest.NewRequest(http.MethodPost, "/carts/cart-1/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), usecase.CodeInsufficientStock)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	cartRepo := new(cartRepoMock)
	productRepo := new(productRepoMock)
	e := newCartEcho(cartRepo, productRepo)

	cart := &model.Cart{
		ID:       "cart-1",
		OwnerKey: "session-1",
		Items:    model.CartItems{{ProductID: "p1", UnitPrice: 100, Quantity: 2}},
	}
	cartRepo.On("FindByID", mock.Anything, "cart-1").Return(cart, nil)
	productRepo.On("FindByID", mock.Anything, "p1").Return(nil, repo.ErrNotFound)
	cartRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	body := `{"quantity":5}`
	req := httptest.NewRequest(http.MethodPatch, "/carts/cart-1/items/p1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(5), out.Items[0].Quantity)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	cartRepo := new(cartRepoMock)
	e := newCartEcho(cartRepo, new(productRepoMock))

	cart := &model.Cart{
		ID:       "cart-1",
		OwnerKey: "session-1",
		Items:    model.CartItems{{ProductID: "p1", UnitPrice: 100, Quantity: 2}},
	}
	cartRepo.On("FindByID", mock.Anything, "cart-1").Return(cart, nil)
	cartRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/carts/cart-1/items/p1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
}

func TestCartHandler_Clear(t *testing.T) {
	cartRepo := new(cartRepoMock)
	e := newCartEcho(cartRepo, new(productRepoMock))

	cart := &model.Cart{
		ID:       "cart-1",
		OwnerKey: "session-1",
		Items: model.CartItems{
			{ProductID: "p1", UnitPrice: 100, Quantity: 2},
			{ProductID: "p2", UnitPrice: 200, Quantity: 1},
		},
	}
	cartRepo.On("FindByID", mock.Anything, "cart-1").Return(cart, nil)
	cartRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/carts/cart-1/items", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Subtotal)
}
