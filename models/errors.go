package models

import (
	"errors"
	"fmt"
)

// Error codes used in API responses and internal error handling.
const (
	// ErrCodeFetch covers transport failures and non-2xx upstream statuses.
	ErrCodeFetch = "FETCH_FAILED"

	// Extraction codes: the page was fetched but no usable payload was found.
	ErrCodeNoMatch     = "EXTRACTION_NO_MATCH"
	ErrCodeInvalidJSON = "EXTRACTION_INVALID_JSON"

	// ErrCodeMissingField marks an expected renderer field that was absent.
	ErrCodeMissingField = "MAPPING_MISSING_FIELD"

	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the body returned when a request cannot produce a result.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}

// ToResponse converts an internal error to the API-facing error body.
func (e *ScrapeError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message, Code: e.Code}
}

// CodeOf returns the code carried by err, or ErrCodeInternal when err is not
// a *ScrapeError.
func CodeOf(err error) string {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
