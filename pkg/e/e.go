package e

import (
	"fmt"
	"strings"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки окружения
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// 400 Bad Request — нарушения бизнес-правил
	ErrCategoryExists      = fmt.Errorf("category already exists")
	ErrCategoryHasProducts = fmt.Errorf("category has active products")

	// 400 Bad Request — параметры запроса
	ErrInvalidPathParam     = fmt.Errorf("invalid path parameter")
	ErrUnknownAuditAction   = fmt.Errorf("unknown audit action")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 409 Conflict
	ErrDataConflict = fmt.Errorf("resource already exists or violates an integrity constraint")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// FieldError описывает ошибку валидации одного поля запроса.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError агрегирует ошибки валидации запроса.
// Порядок полей соответствует порядку проверки.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error возвращает список "поле: сообщение", разделённый запятыми.
func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
