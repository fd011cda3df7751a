// Package errors provides standardized error types for the API.
package errors

import (
	"fmt"
	"net/http"
)

// Code represents an API error code.
type Code string

const (
	CodeNotFound       Code = "NOT_FOUND"
	CodeInvalidRequest Code = "INVALID_REQUEST"
	CodeInternal       Code = "INTERNAL_ERROR"
	CodeRateLimited    Code = "RATE_LIMITED"
	CodeUnsupported    Code = "UNSUPPORTED_OPERATION"
	CodeMissingAPIKey  Code = "MISSING_API_KEY"
	CodeUnreachable    Code = "SERVICE_UNREACHABLE"
	CodeProvider       Code = "PROVIDER_ERROR"
)

// APIError represents a structured API error.
type APIError struct {
	Code       Code   `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &APIError{Code: CodeNotFound, Message: "Resource not found", HTTPStatus: http.StatusNotFound}
	ErrInternal       = &APIError{Code: CodeInternal, Message: "Internal server error", HTTPStatus: http.StatusInternalServerError}
	ErrInvalidRequest = &APIError{Code: CodeInvalidRequest, Message: "Invalid request", HTTPStatus: http.StatusBadRequest}
	ErrRateLimited    = &APIError{Code: CodeRateLimited, Message: "Rate limit exceeded", HTTPStatus: http.StatusTooManyRequests}
)

// NotFound creates a not found error with a custom message.
func NotFound(resource string) *APIError {
	return &APIError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// InvalidRequest creates a bad request error with a custom message.
func InvalidRequest(message string) *APIError {
	return &APIError{
		Code:       CodeInvalidRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates an internal error, optionally logging the real error.
func Internal(message string) *APIError {
	if message == "" {
		message = "Internal server error"
	}
	return &APIError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Unsupported creates an error for operations that are unsupported by design.
func Unsupported(message string) *APIError {
	return &APIError{
		Code:       CodeUnsupported,
		Message:    message,
		HTTPStatus: http.StatusNotImplemented,
	}
}

// MissingAPIKey creates an error for AI calls attempted without a credential.
// The request must fail before any network call is made.
func MissingAPIKey(provider string) *APIError {
	return &APIError{
		Code:       CodeMissingAPIKey,
		Message:    fmt.Sprintf("%s API key is required", provider),
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unreachable creates an error for an AI endpoint that could not be reached.
// Kept distinct from generic provider errors so the caller can show an
// actionable message (start the local server, check the base URL).
func Unreachable(message string) *APIError {
	return &APIError{
		Code:       CodeUnreachable,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
	}
}

// Provider creates an error carrying a rejection message from an AI backend.
func Provider(message string) *APIError {
	return &APIError{
		Code:       CodeProvider,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
	}
}
