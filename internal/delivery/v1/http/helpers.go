package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет ошибку статусу и сообщению для клиента.
// Ошибки валидации проверяются раньше ErrOperationFailed: отказ загрузки
// из-за типа файла оборачивает обе.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrBusy):
		return http.StatusConflict, e.ErrBusy.Error()
	case errors.Is(err, e.ErrUploadBusy):
		return http.StatusConflict, e.ErrUploadBusy.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrInvalidForm):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrNegativePrice):
		return http.StatusBadRequest, e.ErrNegativePrice.Error()
	case errors.Is(err, e.ErrCategoryNameRequired):
		return http.StatusBadRequest, e.ErrCategoryNameRequired.Error()
	case errors.Is(err, e.ErrUnknownSelector):
		return http.StatusBadRequest, e.ErrUnknownSelector.Error()
	case errors.Is(err, e.ErrSlideOutOfRange):
		return http.StatusBadRequest, e.ErrSlideOutOfRange.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrNoImage):
		return http.StatusBadRequest, e.ErrNoImage.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()
	case errors.Is(err, e.ErrOperationFailed):
		return http.StatusBadGateway, e.ErrOperationFailed.Error()
	case errors.Is(err, e.ErrDisposed):
		return http.StatusServiceUnavailable, e.ErrDisposed.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseImage читает файл из поля "image" формы. Тип определяется по содержимому.
func parseImage(r *http.Request, maxSize int64) (*domain.ImageFile, error) {
	src, fh, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, e.ErrNoImage
		}
		return nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}
	if len(data) == 0 {
		return nil, e.Wrap(fh.Filename, e.ErrNoImage)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, e.Wrap(fh.Filename, e.ErrUnsupportedMediaType)
	}

	return &domain.ImageFile{
		Name:     fh.Filename,
		MimeType: mimeType,
		Data:     data,
	}, nil
}

// readImageRequest ограничивает тело запроса и достает из него изображение.
// При ошибке сам пишет ответ и возвращает false.
func readImageRequest(w http.ResponseWriter, r *http.Request, maxImageSize int64, log logger.Logger) (*domain.ImageFile, bool) {
	const (
		formOverhead = 1 << 20
		maxMemory    = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+formOverhead)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		log.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return nil, false
	}

	file, err := parseImage(r, maxImageSize)
	if err != nil {
		log.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return nil, false
	}

	return file, true
}
