// Package errors provides standardized error handling for the operations engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration errors: store credentials missing or malformed.
	ErrCodeStoreNotConfigured    ErrorCode = "STORE_NOT_CONFIGURED"
	ErrCodeStoreConnectionFailed ErrorCode = "STORE_CONNECTION_FAILED"

	// Query errors: store reachable but the read failed.
	ErrCodeQueryFailed  ErrorCode = "QUERY_FAILED"
	ErrCodeQueryTimeout ErrorCode = "QUERY_TIMEOUT"

	// Dispatch errors: the Dialogue Router sent something unusable.
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
	ErrCodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"

	// Notification errors: the golden-hour digest could not be delivered.
	ErrCodeNotificationFailed ErrorCode = "NOTIFICATION_FAILED"
)

// StandardError represents a structured application error. It is carried
// across the dispatch boundary as result data, never thrown to the caller.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Indicator renders the error the way operation results expose it: a single
// descriptive string in the result's error field.
func (e *StandardError) Indicator() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// NewStoreNotConfiguredError reports absent store credentials. Not retryable;
// the process configuration is wrong.
func NewStoreNotConfiguredError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreNotConfigured,
		Message:   "Record store credentials missing",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreConnectionFailedError reports an unreachable record store.
func NewStoreConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreConnectionFailed,
		Message:   "Record store connection failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryFailedError reports a failed store read, carrying the raw message.
func NewQueryFailedError(table string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryFailed,
		Message:   "Record store query failed",
		Details:   fmt.Sprintf("table: %s, error: %s", table, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError reports a store read that exceeded its deadline.
func NewQueryTimeoutError(table string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Record store query timeout",
		Details:   fmt.Sprintf("table: %s", table),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownOperationError reports a dispatch for a name nothing registered.
func NewUnknownOperationError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownOperation,
		Message:   "Unknown operation",
		Details:   fmt.Sprintf("operation: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidArgumentError reports operation arguments that failed schema
// validation.
func NewInvalidArgumentError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidArgument,
		Message:   "Invalid operation arguments",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationFailedError reports a digest delivery failure.
func NewNotificationFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandard returns err as a *StandardError, wrapping foreign errors as a
// query failure so every failure crossing the boundary has a code.
func AsStandard(err error) *StandardError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*StandardError); ok {
		return se
	}
	return &StandardError{
		Code:      ErrCodeQueryFailed,
		Message:   "Operation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
