package usecase

import (
	"errors"
	"fmt"
)

// handlerがそのままHTTPステータスに変換できるエラー。
// Codeはフロント向けの機械可読コード。
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func NewHTTPError(status int, code string, message string) error {
	return &HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// エラーコード一覧
const (
	CodeInvalidInput       = "invalid_input"
	CodeCartNotFound       = "cart_not_found"
	CodeItemNotFound       = "item_not_found"
	CodeProductNotFound    = "product_not_found"
	CodeProductUnavailable = "product_unavailable"
	CodeInsufficientStock  = "insufficient_stock"
	CodeConfigNotFound     = "config_not_found"
	CodeStorageError       = "storage_error"
)
