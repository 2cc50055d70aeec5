package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAborted        ErrorCode = "ABORTED"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Transport errors
	ErrTransportNotReady ErrorCode = "TRANSPORT_NOT_READY"
	ErrTransportSend     ErrorCode = "TRANSPORT_SEND"
	ErrChannelClosed     ErrorCode = "CHANNEL_CLOSED"

	// Pairing errors
	ErrPairingFailed  ErrorCode = "PAIRING_FAILED"
	ErrPeerNotFound   ErrorCode = "PEER_NOT_FOUND"
	ErrPairingPayload ErrorCode = "PAIRING_PAYLOAD"

	// Request errors
	ErrNotGranted        ErrorCode = "NOT_GRANTED"
	ErrNoPermission      ErrorCode = "NO_PERMISSION"
	ErrTooManyRequests   ErrorCode = "TOO_MANY_REQUESTS"
	ErrSignatureRejected ErrorCode = "SIGNATURE_REJECTED"
	ErrBroadcastFailed   ErrorCode = "BROADCAST_FAILED"
	ErrRequestTimeout    ErrorCode = "REQUEST_TIMEOUT"

	// Event dispatch errors
	ErrListenerFailed ErrorCode = "LISTENER_FAILED"
)

// BeaconError represents a structured error with code and details
type BeaconError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BeaconError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BeaconError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BeaconError) Is(target error) bool {
	var targetErr *BeaconError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BeaconError with the given code and message
func New(code ErrorCode, message string) *BeaconError {
	return &BeaconError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BeaconError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BeaconError {
	return &BeaconError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BeaconError
func Wrap(err error, code ErrorCode, message string) *BeaconError {
	if err == nil {
		return nil
	}
	return &BeaconError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BeaconError {
	if err == nil {
		return nil
	}
	return &BeaconError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BeaconError) WithDetail(key string, value interface{}) *BeaconError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var beaconErr *BeaconError
	if errors.As(err, &beaconErr) {
		return beaconErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BeaconError
func GetErrorCode(err error) ErrorCode {
	var beaconErr *BeaconError
	if errors.As(err, &beaconErr) {
		return beaconErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BeaconError
func GetErrorDetails(err error) map[string]interface{} {
	var beaconErr *BeaconError
	if errors.As(err, &beaconErr) {
		return beaconErr.Details
	}
	return nil
}
