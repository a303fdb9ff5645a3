package mapsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured failure from the API. It carries the HTTP status
// and the stable code from the error body so callers can branch without
// string-matching messages.
type APIError struct {
	// StatusCode is the HTTP status the server responded with
	StatusCode int `json:"-"`

	// Code is the stable machine-readable rejection code
	Code string `json:"code"`

	// Message is the human-readable description from the server
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode reports whether err is an APIError carrying the given code.
func HasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
// Bodies that do not match the error shape fall back to a generic error
// derived from the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Code != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Error,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       CodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
