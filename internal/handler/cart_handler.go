package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartsのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type CreateCartRequest struct {
	OwnerKey string                  `json:"owner_key"`
	Items    []usecase.CartItemInput `json:"items,omitempty"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// カートのルートを登録（セッションキーで使うため認証なし）
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/carts", h.create)
	e.GET("/carts", h.getByOwner)
	e.GET("/carts/:id", h.getByID)
	e.POST("/carts/:id/items", h.addItem)
	e.PATCH("/carts/:id/items/:productId", h.updateQuantity)
	e.DELETE("/carts/:id/items/:productId", h.removeItem)
	e.DELETE("/carts/:id/items", h.clear)
}

func (h *CartHandler) create(c echo.Context) error {
	var req CreateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateCart(c.Request().Context(), usecase.CreateCartInput{
		OwnerKey: req.OwnerKey,
		Items:    req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CartHandler) getByID(c echo.Context) error {
	out, err := h.uc.GetCartByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart not found", Code: usecase.CodeCartNotFound})
	}

	return c.JSON(http.StatusOK, out)
}

// ?owner_key= でセッションのカートを引く
func (h *CartHandler) getByOwner(c echo.Context) error {
	ownerKey := c.QueryParam("owner_key")
	if ownerKey == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "owner_key is required"})
	}

	out, err := h.uc.GetCartByOwner(c.Request().Context(), ownerKey)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart not found", Code: usecase.CodeCartNotFound})
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		CartID:    c.Param("id"),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), usecase.UpdateQuantityInput{
		CartID:    c.Param("id"),
		ProductID: c.Param("productId"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	out, err := h.uc.ClearCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
