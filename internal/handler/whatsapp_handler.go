package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WhatsApp注文メッセージのHTTP
type WhatsAppHandler struct {
	waUC *usecase.WhatsAppUsecase
}

// DI
func NewWhatsAppHandler(waUC *usecase.WhatsAppUsecase) *WhatsAppHandler {
	return &WhatsAppHandler{waUC: waUC}
}

func (h *WhatsAppHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/carts/:id/whatsapp", h.orderMessage)
	e.GET("/products/:id/whatsapp", h.inquiryMessage)
}

func (h *WhatsAppHandler) orderMessage(c echo.Context) error {
	out, err := h.waUC.GenerateOrderMessage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WhatsAppHandler) inquiryMessage(c echo.Context) error {
	out, err := h.waUC.GenerateInquiryMessage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
