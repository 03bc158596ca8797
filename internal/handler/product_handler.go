package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Code: he.Code})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products のHTTP
type ProductHandler struct {
	uc     *usecase.ProductUsecase
	authMW echo.MiddlewareFunc
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, authMW echo.MiddlewareFunc) *ProductHandler {
	return &ProductHandler{uc: uc, authMW: authMW}
}

// 公開ルートと管理ルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)

	g := e.Group("/admin/products")
	g.Use(h.authMW)

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.softDelete)
	g.DELETE("/:id/permanent", h.hardDelete)
}

// 公開一覧。category/featured/qで絞り込み。
func (h *ProductHandler) list(c echo.Context) error {
	ctx := c.Request().Context()

	if term := c.QueryParam("q"); term != "" {
		items, err := h.uc.SearchProducts(ctx, term, false)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}

	if category := c.QueryParam("category"); category != "" {
		items, err := h.uc.ListByCategory(ctx, category, false)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}

	if c.QueryParam("featured") == "true" {
		items, err := h.uc.ListFeatured(ctx, false)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.uc.ListProducts(ctx, false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found", Code: usecase.CodeProductNotFound})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.ID = c.Param("id")

	p, err := h.uc.UpdateProduct(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) softDelete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) hardDelete(c echo.Context) error {
	if err := h.uc.HardDeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
