package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeNotAuthenticated   ErrorCode = "AUTH-001"
	ErrCodeLoginFailed        ErrorCode = "AUTH-002"
	ErrCodePasswordChange     ErrorCode = "AUTH-003"
	ErrCodeCredentialsMissing ErrorCode = "AUTH-004"

	// Context errors (CTX-001 to CTX-099)
	ErrCodeNoActiveCompany ErrorCode = "CTX-001"
	ErrCodeStaleContext    ErrorCode = "CTX-002"
	ErrCodeNoDimension     ErrorCode = "CTX-003"

	// API errors (API-001 to API-099)
	ErrCodeRequestFailed  ErrorCode = "API-001"
	ErrCodeDecodeFailed   ErrorCode = "API-002"
	ErrCodeImportRejected ErrorCode = "API-003"

	// Mapping/validation errors (MAP-001 to MAP-099)
	ErrCodeBadAttributes ErrorCode = "MAP-001"
	ErrCodeBadRole       ErrorCode = "MAP-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// PlxError represents an enhanced error with code, suggestions, and cause
type PlxError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PlxError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlxError) Unwrap() error {
	return e.Cause
}

// New creates a new PlxError
func New(code ErrorCode, message string) *PlxError {
	return &PlxError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlxError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlxError {
	return &PlxError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlxError) WithSuggestion(suggestion string) *PlxError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlxError) WithSuggestions(suggestions ...string) *PlxError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotAuthenticatedError is returned by store actions invoked without a token
func NewNotAuthenticatedError() *PlxError {
	return New(ErrCodeNotAuthenticated, "not logged in").
		WithSuggestion("Pass --email and --password, or set PLX_EMAIL and PLX_PASSWORD").
		WithSuggestion("Run 'plx auth check' to verify credentials")
}

// NewNoActiveCompanyError is returned by company-scoped actions without a selected company
func NewNoActiveCompanyError() *PlxError {
	return New(ErrCodeNoActiveCompany, "no active company selected").
		WithSuggestion("Select a company first (SYSADMIN must tunnel into a company)")
}

// NewCredentialsMissingError is returned when a CLI command has no credentials to log in with
func NewCredentialsMissingError() *PlxError {
	return New(ErrCodeCredentialsMissing, "no credentials provided").
		WithSuggestion("Pass --email and --password").
		WithSuggestion("Or set PLX_EMAIL and PLX_PASSWORD in the environment")
}

// NewBadAttributesError is returned when free-text attributes are not a JSON object
func NewBadAttributesError(cause error) *PlxError {
	return Wrap(ErrCodeBadAttributes, "attributes must be a JSON object", cause).
		WithSuggestion(`Use an object literal like {"color":"red"}`)
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *PlxError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}
