package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// アップロード署名URLのHTTP
type UploadHandler struct {
	uploadUC *usecase.UploadUsecase
	authMW   echo.MiddlewareFunc
}

// DI
func NewUploadHandler(uploadUC *usecase.UploadUsecase, authMW echo.MiddlewareFunc) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		authMW:   authMW,
	}
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/uploads", h.authMW)
	g.POST("/presign", h.presign)
}

func (h *UploadHandler) presign(c echo.Context) error {
	var req usecase.PresignUploadInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeInvalidInput})
	}

	out, err := h.uploadUC.PresignUpload(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
