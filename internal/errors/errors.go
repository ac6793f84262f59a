// Package errors provides custom error types for the depotlens API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid password", StatusCode: http.StatusUnauthorized}
	ErrAuthNotConfigured  = &AppError{Code: "AUTH_NOT_CONFIGURED", Message: "Owner authentication is not configured", StatusCode: http.StatusNotFound}
	ErrTooManyRequests    = &AppError{Code: "TOO_MANY_REQUESTS", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Portfolio errors.
var (
	ErrEntryNotFound    = &AppError{Code: "ENTRY_NOT_FOUND", Message: "Portfolio entry not found", StatusCode: http.StatusNotFound}
	ErrNoEntries        = &AppError{Code: "NO_ENTRIES", Message: "No portfolio entries found", StatusCode: http.StatusNotFound}
	ErrPricesNotUpdated = &AppError{Code: "PRICES_NOT_UPDATED", Message: "No current prices available", StatusCode: http.StatusBadRequest}
)

// Document errors.
var (
	ErrNoFile              = &AppError{Code: "NO_FILE", Message: "No file provided", StatusCode: http.StatusBadRequest}
	ErrUnsupportedFileType = &AppError{Code: "UNSUPPORTED_FILE_TYPE", Message: "File type not allowed", StatusCode: http.StatusBadRequest}
	ErrFileTooLarge        = &AppError{Code: "FILE_TOO_LARGE", Message: "File exceeds the upload limit", StatusCode: http.StatusRequestEntityTooLarge}
	ErrRecognitionFailed   = &AppError{Code: "RECOGNITION_FAILED", Message: "Document text could not be recognized", StatusCode: http.StatusUnprocessableEntity}
)

// Market data errors.
var (
	ErrQuoteUnavailable      = &AppError{Code: "QUOTE_UNAVAILABLE", Message: "Market data not found for symbol", StatusCode: http.StatusNotFound}
	ErrMarketDataUnavailable = &AppError{Code: "MARKET_DATA_UNAVAILABLE", Message: "Market data provider unavailable", StatusCode: http.StatusBadGateway}
)
