package models

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies the kind of failure in an error body.
type ErrorCode string

const (
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed    ErrorCode = "method_not_allowed"
)

// APIError is the body of every non-200 response the device sends.
// StatusCode only picks the HTTP status and is not encoded.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, statusCode int) APIError {
	return APIError{Code: code, Message: message, StatusCode: statusCode}
}

// RouteNotFound reports a path outside the route table.
func RouteNotFound(path string) APIError {
	return NewAPIError(ErrorCodeNotFound, fmt.Sprintf("no route for %s", path), http.StatusNotFound)
}

// MethodNotAllowed reports a known path requested with an unsupported method.
func MethodNotAllowed(method, path string) APIError {
	return NewAPIError(ErrorCodeMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", method, path), http.StatusMethodNotAllowed)
}

// EncodingFailed reports a payload that could not be rendered as JSON.
func EncodingFailed() APIError {
	return NewAPIError(ErrorCodeInternalServerError, "failed to encode response", http.StatusInternalServerError)
}
