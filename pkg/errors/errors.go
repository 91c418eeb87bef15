package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeAPI represents EpiGraphDB REST API errors
	ErrorTypeAPI ErrorType = "api"
	// ErrorTypeRelation represents relation-graph computation errors
	ErrorTypeRelation ErrorType = "relation"
	// ErrorTypeCypher represents direct Bolt/Cypher errors
	ErrorTypeCypher ErrorType = "cypher"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrType returns the error category. Concrete error types embed *BaseError,
// so the method is promoted and category checks work on the error values
// callers actually receive.
func (e *BaseError) ErrType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Relation-graph errors

// ErrInvalidInput is returned when a relation-builder input set is malformed,
// e.g. duplicate entity identifiers (identity is the graph's vertex key)
type ErrInvalidInput struct {
	*BaseError
	Field  string
	Reason string
}

func NewInvalidInput(field, reason string) *ErrInvalidInput {
	return &ErrInvalidInput{
		BaseError: NewBaseError(ErrorTypeRelation, fmt.Sprintf("invalid input: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrRelationComputationFailed is returned when the relation function fails for
// a pair; the pair is carried so no edge goes missing silently
type ErrRelationComputationFailed struct {
	*BaseError
	EntityA string
	EntityB string
}

func NewRelationComputationFailed(entityA, entityB string, err error) *ErrRelationComputationFailed {
	return &ErrRelationComputationFailed{
		BaseError: NewBaseError(ErrorTypeRelation, fmt.Sprintf("relation computation failed for pair (%s, %s)", entityA, entityB), err),
		EntityA:   entityA,
		EntityB:   entityB,
	}
}

// API errors

// ErrAPIRequestFailed is returned when an EpiGraphDB request returns a non-2xx
// status or cannot be completed
type ErrAPIRequestFailed struct {
	*BaseError
	Endpoint   string
	StatusCode int
}

func NewAPIRequestFailed(endpoint string, statusCode int, err error) *ErrAPIRequestFailed {
	return &ErrAPIRequestFailed{
		BaseError:  NewBaseError(ErrorTypeAPI, fmt.Sprintf("request failed: %s (status %d)", endpoint, statusCode), err),
		Endpoint:   endpoint,
		StatusCode: statusCode,
	}
}

// ErrAPIDecodeFailed is returned when a response body cannot be decoded
type ErrAPIDecodeFailed struct {
	*BaseError
	Endpoint string
}

func NewAPIDecodeFailed(endpoint string, err error) *ErrAPIDecodeFailed {
	return &ErrAPIDecodeFailed{
		BaseError: NewBaseError(ErrorTypeAPI, fmt.Sprintf("failed to decode response: %s", endpoint), err),
		Endpoint:  endpoint,
	}
}

// Cypher errors

// ErrCypherConnectionFailed is returned when the Bolt connection fails
type ErrCypherConnectionFailed struct {
	*BaseError
	URI string
}

func NewCypherConnectionFailed(uri string, err error) *ErrCypherConnectionFailed {
	return &ErrCypherConnectionFailed{
		BaseError: NewBaseError(ErrorTypeCypher, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrCypherQueryFailed is returned when a Cypher query fails
type ErrCypherQueryFailed struct {
	*BaseError
	Query string
}

func NewCypherQueryFailed(query string, err error) *ErrCypherQueryFailed {
	return &ErrCypherQueryFailed{
		BaseError: NewBaseError(ErrorTypeCypher, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Config errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Context errors

// ErrContextCancelled is returned when context is cancelled mid-operation
type ErrContextCancelled struct {
	*BaseError
	Operation string
}

func NewContextCancelled(operation string, err error) *ErrContextCancelled {
	return &ErrContextCancelled{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context cancelled: %s", operation), err),
		Operation: operation,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if err == nil {
		return false
	}
	if typed, ok := err.(interface{ ErrType() ErrorType }); ok {
		return typed.ErrType() == errType
	}
	// Check wrapped errors
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		return IsErrorType(wrapped.Unwrap(), errType)
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	// Context errors are not retryable
	if IsErrorType(err, ErrorTypeContext) {
		return false
	}
	// Relation computation is pure; retrying cannot help
	if IsErrorType(err, ErrorTypeRelation) {
		return false
	}
	// Client errors (4xx) indicate a bad request; server errors may be transient
	if apiErr, ok := err.(*ErrAPIRequestFailed); ok {
		return apiErr.StatusCode == 0 || apiErr.StatusCode >= 500
	}
	// Bolt connection errors are retryable
	if IsErrorType(err, ErrorTypeCypher) {
		return true
	}
	return false
}
