package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownUploadBackend = fmt.Errorf("unknown upload backend")

	// Ошибки удалённого каталога
	ErrTransport         = fmt.Errorf("catalog transport failure")
	ErrUnexpectedStatus  = fmt.Errorf("catalog responded with non-success status")
	ErrMalformedResponse = fmt.Errorf("malformed catalog response")

	// Ошибки форм администратора
	ErrBusy            = fmt.Errorf("submission already in flight")
	ErrUploadBusy      = fmt.Errorf("image upload already in flight")
	ErrOperationFailed = fmt.Errorf("operation failed")
	ErrDisposed        = fmt.Errorf("form is disposed")
	ErrNotFound        = fmt.Errorf("entity not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidForm          = fmt.Errorf("invalid form")
	ErrNegativePrice        = fmt.Errorf("price must not be negative")
	ErrCategoryNameRequired = fmt.Errorf("category name is required")
	ErrUnknownSelector      = fmt.Errorf("unknown collection selector")
	ErrSlideOutOfRange      = fmt.Errorf("slide index out of range")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
