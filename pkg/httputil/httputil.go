// Package httputil centralizes JSON response writing and error translation so
// every app in the workspace returns the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"stackpad/pkg/platform/sentinel"
)

// Code classifies an API error for HTTP translation.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal_error"
)

// APIError carries a code and a human-readable description. Services return
// it (or a sentinel error) and handlers pass it to WriteError.
type APIError struct {
	Code        Code
	Description string
}

func (e APIError) Error() string {
	return string(e.Code) + ": " + e.Description
}

// NewError builds an APIError with the given code and description.
func NewError(code Code, description string) APIError {
	return APIError{Code: code, Description: description}
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the shared JSON error envelope.
// APIError maps through its code; sentinel errors map to their natural
// status; anything else becomes an internal error. Internal errors omit the
// description so backend details never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := CodeInternal
	description := ""

	var apiErr APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
		description = apiErr.Description
	case errors.Is(err, sentinel.ErrNotFound):
		code = CodeNotFound
		description = "resource not found"
	case errors.Is(err, sentinel.ErrConflict):
		code = CodeConflict
		description = "resource already exists"
	case errors.Is(err, sentinel.ErrUnavailable):
		code = CodeUnavailable
		description = "service temporarily unavailable"
	}

	if code == CodeInternal {
		description = ""
	}
	WriteJSON(w, ToHTTPStatus(code), errorResponse{
		Error:            string(code),
		ErrorDescription: description,
	})
}
