package jsonapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrorBuilder provides a fluent API for building Error objects.
type ErrorBuilder struct {
	err Error
}

// NewError creates a new ErrorBuilder with the given status, code, and title.
func NewError(status int, code, title string) *ErrorBuilder {
	return &ErrorBuilder{
		err: Error{
			Status: strconv.Itoa(status),
			Code:   code,
			Title:  title,
		},
	}
}

// Detail sets the error detail message.
func (b *ErrorBuilder) Detail(detail string) *ErrorBuilder {
	b.err.Detail = detail
	return b
}

// Detailf sets the error detail message with formatting.
func (b *ErrorBuilder) Detailf(format string, args ...any) *ErrorBuilder {
	b.err.Detail = fmt.Sprintf(format, args...)
	return b
}

// ID sets the error ID, typically the request ID.
func (b *ErrorBuilder) ID(id string) *ErrorBuilder {
	b.err.ID = id
	return b
}

// Pointer sets the JSON pointer to the source of the error.
// Example: "/ids/2"
func (b *ErrorBuilder) Pointer(pointer string) *ErrorBuilder {
	if b.err.Source == nil {
		b.err.Source = &ErrorSource{}
	}
	b.err.Source.Pointer = pointer
	return b
}

// Parameter sets the path or query parameter that caused the error.
func (b *ErrorBuilder) Parameter(param string) *ErrorBuilder {
	if b.err.Source == nil {
		b.err.Source = &ErrorSource{}
	}
	b.err.Source.Parameter = param
	return b
}

// Meta adds metadata to the error.
func (b *ErrorBuilder) Meta(key string, value any) *ErrorBuilder {
	if b.err.Meta == nil {
		b.err.Meta = make(Meta)
	}
	b.err.Meta[key] = value
	return b
}

// Build returns the constructed Error.
func (b *ErrorBuilder) Build() Error {
	return b.err
}

// StatusCode returns the HTTP status code as an int.
func (e Error) StatusCode() int {
	code, _ := strconv.Atoi(e.Status)
	return code
}

// ErrMethodNotAllowed creates a 405 Method Not Allowed error.
func ErrMethodNotAllowed(method string, allowed []string) Error {
	b := NewError(http.StatusMethodNotAllowed, "method_not_allowed", "Method Not Allowed").Meta("method", method)
	if len(allowed) == 0 {
		return b.Detailf("The %s method is not allowed for this resource", method).Build()
	}
	return b.Detailf("%s is not supported. Use one of: %s", method, strings.Join(allowed, ", ")).Build()
}

// ErrInternal creates a 500 Internal Server Error.
func ErrInternal(detail string) Error {
	if detail == "" {
		detail = "An internal error occurred"
	}
	return NewError(http.StatusInternalServerError, "internal_error", "Internal Server Error").Detail(detail).Build()
}
