package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network/connection failures during the fetch
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeHTTPStatus represents a non-success response from the source site
	ErrorTypeHTTPStatus ErrorType = "http_status"
	// ErrorTypeExtraction represents a missing or malformed structured-data block
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeCache represents seen-store load/save failures
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeDelivery represents webhook delivery failures
	ErrorTypeDelivery ErrorType = "delivery"
	// ErrorTypeValidation represents listing validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// MonitorError represents a monitor-specific error
type MonitorError struct {
	Type    ErrorType
	Stage   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *MonitorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Stage, e.Message)
}

// Unwrap returns the underlying error
func (e *MonitorError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error aborts the current run.
// Only failures before the listing loop are fatal; once the page is in
// hand every failure degrades per-listing or per-store instead.
func (e *MonitorError) IsFatal() bool {
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypeHTTPStatus, ErrorTypeExtraction:
		return true
	default:
		return false
	}
}

// New creates a new MonitorError
func New(errType ErrorType, stage, message string, err error) *MonitorError {
	return &MonitorError{
		Type:    errType,
		Stage:   stage,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(stage, message string, err error) *MonitorError {
	return New(ErrorTypeNetwork, stage, message, err)
}

// NewHTTPStatus creates a new http status error
func NewHTTPStatus(stage string, statusCode int) *MonitorError {
	message := fmt.Sprintf("unexpected status code: %d", statusCode)
	return New(ErrorTypeHTTPStatus, stage, message, nil)
}

// NewExtraction creates a new extraction error
func NewExtraction(stage, message string, err error) *MonitorError {
	return New(ErrorTypeExtraction, stage, message, err)
}

// NewCache creates a new cache error
func NewCache(stage, message string, err error) *MonitorError {
	return New(ErrorTypeCache, stage, message, err)
}

// NewDelivery creates a new delivery error
func NewDelivery(stage, message string, err error) *MonitorError {
	return New(ErrorTypeDelivery, stage, message, err)
}

// NewValidation creates a new validation error
func NewValidation(stage, message string) *MonitorError {
	return New(ErrorTypeValidation, stage, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *MonitorError {
	return New(ErrorTypeConfiguration, "", message, err)
}
