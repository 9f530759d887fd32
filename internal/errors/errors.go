// Package errors defines the error taxonomy shared by the catalog client and
// the search components. CatalogError carries a type so callers can pick the
// right user-facing message without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// CatalogError represents a failure while talking to, or preparing a call to,
// the remote catalog.
type CatalogError struct {
	Type    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeValidation    = "VALIDATION"
	ErrorTypeNotFound      = "NOT_FOUND"
	ErrorTypeTransport     = "TRANSPORT"
	ErrorTypeDetailFetch   = "DETAIL_FETCH"
	ErrorTypeAPIKeyMissing = "API_KEY_MISSING"
)

var (
	// ErrEmptyQuery is returned when a search is attempted with a blank query.
	ErrEmptyQuery = NewValidationError("query must not be empty")
	// ErrStale is returned when a request finished after a newer one replaced it.
	ErrStale = stderrors.New("result superseded by a newer request")
)

// NewCatalogError creates a new CatalogError
func NewCatalogError(errorType, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates an input validation error
func NewValidationError(message string) *CatalogError {
	return NewCatalogError(ErrorTypeValidation, message, nil)
}

// NewNotFoundError wraps an explicit "no match" answer. message is the
// upstream's human-readable text and may be empty.
func NewNotFoundError(message string) *CatalogError {
	return NewCatalogError(ErrorTypeNotFound, message, nil)
}

// NewTransportError creates a network, status or decoding error
func NewTransportError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeTransport, message, cause)
}

// NewDetailFetchError creates a detail lookup error
func NewDetailFetchError(id, message string, cause error) *CatalogError {
	if message == "" {
		message = fmt.Sprintf("lookup failed for %s", id)
	}
	return NewCatalogError(ErrorTypeDetailFetch, message, cause)
}

// NewAPIKeyMissingError creates an API key missing error
func NewAPIKeyMissingError(service string) *CatalogError {
	return NewCatalogError(ErrorTypeAPIKeyMissing, fmt.Sprintf("API key missing for %s", service), nil)
}

// IsType reports whether err is, or wraps, a CatalogError of the given type.
func IsType(err error, errorType string) bool {
	var ce *CatalogError
	if stderrors.As(err, &ce) {
		return ce.Type == errorType
	}
	return false
}

// Is and As are re-exported so callers importing this package under the name
// "errors" keep access to the standard helpers.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target interface{}) bool { return stderrors.As(err, target) }

func New(text string) error { return stderrors.New(text) }
