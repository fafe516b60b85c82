package http

import (
	"errors"
	"fmt"
	"net/http"

	"FinPlan/internal/domain/models"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
	}
}

// WithParam sets a single error param.
func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// BadRequestError creates a 400 error.
func BadRequestError(message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", "", message, http.StatusBadRequest)
}

// BadRequestErrorf creates a 400 error with formatting.
func BadRequestErrorf(format string, a ...interface{}) *AppError {
	return BadRequestError(fmt.Sprintf(format, a...))
}

// InvalidIdentifierError creates a 400 error for a malformed symbol, currency or country.
func InvalidIdentifierError(message string) *AppError {
	return NewAppError("ERR_INVALID_IDENTIFIER", "", message, http.StatusBadRequest)
}

// DomainError creates a 400 error for inputs outside a formula's domain.
func DomainError(message string) *AppError {
	return NewAppError("ERR_DOMAIN", "", message, http.StatusBadRequest)
}

// ServiceUnavailableError creates a 503 error.
func ServiceUnavailableError(message string) *AppError {
	return NewAppError("ERR_UNAVAILABLE", "", message, http.StatusServiceUnavailable)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", "", message, http.StatusInternalServerError)
}

// FromDomainError maps the domain sentinels onto HTTP errors.
func FromDomainError(err error) *AppError {
	var appErr *AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, models.ErrInvalidIdentifier):
		return InvalidIdentifierError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrDomain):
		return DomainError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrThrottled):
		return ServiceUnavailableError("upstream provider is throttled, retry later").WithError(err)
	case errors.Is(err, models.ErrUnavailable):
		return ServiceUnavailableError("market data is currently unavailable").WithError(err)
	default:
		return InternalError("Something went wrong").WithError(err)
	}
}
