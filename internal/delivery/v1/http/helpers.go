package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ErrorResponse — единый формат тела ошибки API.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// Машиночитаемые коды ошибок API.
const (
	codeNotFound         = "RESOURCE_NOT_FOUND"
	codeBusinessRule     = "BUSINESS_RULE_VIOLATION"
	codeValidation       = "VALIDATION_ERROR"
	codeInvalidPathParam = "INVALID_PATH_PARAMETER"
	codeDataConflict     = "DATA_CONFLICT"
	codeInternal         = "INTERNAL_ERROR"
)

// ToHTTPResponse переводит ошибку домена в HTTP-статус, код и сообщение.
// Неизвестные ошибки схлопываются в 500 без утечки внутренних деталей.
func ToHTTPResponse(err error) (int, string, string) {
	var validationErr *e.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, codeValidation, validationErr.Error()
	}

	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, codeNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, codeNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrCategoryExists):
		return http.StatusBadRequest, codeBusinessRule, e.ErrCategoryExists.Error()
	case errors.Is(err, e.ErrCategoryHasProducts):
		return http.StatusBadRequest, codeBusinessRule, e.ErrCategoryHasProducts.Error()
	case errors.Is(err, e.ErrInvalidPathParam):
		return http.StatusBadRequest, codeInvalidPathParam, e.ErrInvalidPathParam.Error()
	case errors.Is(err, e.ErrUnknownAuditAction):
		return http.StatusBadRequest, codeInvalidPathParam, e.ErrUnknownAuditAction.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, codeValidation, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrNoImage):
		return http.StatusBadRequest, codeValidation, e.ErrNoImage.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, codeValidation, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, codeValidation, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrDataConflict):
		return http.StatusConflict, codeDataConflict, e.ErrDataConflict.Error()
	default:
		return http.StatusInternalServerError, codeInternal, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&ErrorResponse{
		Status:    status,
		Error:     code,
		Message:   msg,
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// parseUUIDParam извлекает UUID из пути запроса.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, e.ErrInvalidPathParam
	}

	return id, nil
}

// parsePage разбирает query-параметры page и size.
// page по умолчанию 0, size по умолчанию 20 и не больше 100.
func parsePage(r *http.Request) usecase.PageReq {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page = v
		}
	}

	size := defaultPageSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return usecase.PageReq{Page: page, Size: size}
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.ErrExpectedMultipart
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseImage читает единственный файл из multipart-формы.
// MIME-тип определяется по содержимому, а не по заголовку клиента.
func parseImage(files []*multipart.FileHeader, maxFileSize int64) (*usecase.ProductImage, error) {
	if len(files) == 0 {
		return nil, e.ErrNoImage
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
