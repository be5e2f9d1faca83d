package errors

import (
	"encoding/json"
	"net/http"
)

// APIError represents a structured API error carrying the numeric status code
// echoed in the error envelope
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// NewValidationError builds a 400 error for a missing or malformed parameter
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewAuthError builds a 401 error for a missing or invalid credential
func NewAuthError(message string) *APIError {
	return &APIError{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

// NewNotFoundError builds a 404 error
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// NewUpstreamError builds an error passing through the upstream status code
func NewUpstreamError(statusCode int, message string) *APIError {
	return &APIError{
		Code:    statusCode,
		Message: message,
	}
}

// NewInternalError builds a 500 error
func NewInternalError(message string) *APIError {
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}
