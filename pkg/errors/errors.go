package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrEmptyQuery is reported when a lookup is requested for a blank username.
var ErrEmptyQuery = stdErrors.New("empty query")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError is the single failure kind of a profile lookup. A non-2xx
// response, a transport failure and an undecodable body all end up here;
// StatusCode is zero when no response was received.
type LookupError struct {
	Query      string
	StatusCode int
	Err        error
}

// NewLookupError constructs a LookupError for the given query.
func NewLookupError(query string, statusCode int, err error) error {
	return &LookupError{Query: query, StatusCode: statusCode, Err: err}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("lookup %q failed: status %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("lookup %q failed: %v", e.Query, e.Err)
}

// Unwrap exposes the underlying error.
func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsLookupFailure reports whether err is either failure a lookup can end in.
func IsLookupFailure(err error) bool {
	if err == nil {
		return false
	}
	var lookupErr *LookupError
	return stdErrors.Is(err, ErrEmptyQuery) || stdErrors.As(err, &lookupErr)
}
