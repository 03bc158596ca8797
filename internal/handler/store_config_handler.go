package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /configのHTTP
type StoreConfigHandler struct {
	configUC *usecase.StoreConfigUsecase
	authMW   echo.MiddlewareFunc
}

// DI
func NewStoreConfigHandler(configUC *usecase.StoreConfigUsecase, authMW echo.MiddlewareFunc) *StoreConfigHandler {
	return &StoreConfigHandler{
		configUC: configUC,
		authMW:   authMW,
	}
}

func (h *StoreConfigHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/config", h.getActive)

	g := e.Group("/admin/config", h.authMW)
	g.POST("", h.create)
	g.GET("/:id", h.getByID)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *StoreConfigHandler) getActive(c echo.Context) error {
	cfg, err := h.configUC.GetActiveConfig(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if cfg == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "config not found", Code: usecase.CodeConfigNotFound})
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *StoreConfigHandler) create(c echo.Context) error {
	var req usecase.StoreConfigInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeInvalidInput})
	}

	cfg, err := h.configUC.CreateConfig(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cfg)
}

func (h *StoreConfigHandler) getByID(c echo.Context) error {
	cfg, err := h.configUC.GetConfigByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if cfg == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "config not found", Code: usecase.CodeConfigNotFound})
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *StoreConfigHandler) update(c echo.Context) error {
	var req usecase.StoreConfigInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeInvalidInput})
	}

	cfg, err := h.configUC.UpdateConfig(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *StoreConfigHandler) delete(c echo.Context) error {
	if err := h.configUC.DeleteConfig(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
