package types

// ErrorType classifies an error response returned by a wallet
type ErrorType string

const (
	ErrTypeBroadcastError      ErrorType = "BROADCAST_ERROR"
	ErrTypeNetworkNotSupported ErrorType = "NETWORK_NOT_SUPPORTED"
	ErrTypeNoAddress           ErrorType = "NO_ADDRESS_ERROR"
	ErrTypeNotGranted          ErrorType = "NOT_GRANTED"
	ErrTypeParametersInvalid   ErrorType = "PARAMETERS_INVALID"
	ErrTypeTooManyOperations   ErrorType = "TOO_MANY_OPERATIONS"
	ErrTypeTransactionInvalid  ErrorType = "TRANSACTION_INVALID"
	ErrTypeSignatureRejected   ErrorType = "SIGNATURE_REJECTED"
	ErrTypeAborted             ErrorType = "ABORTED"
	ErrTypeUnknown             ErrorType = "UNKNOWN"
)

// ErrorResponse is the error descriptor a wallet sends back when it
// refuses or fails a request.
type ErrorResponse struct {
	// Type is the error class
	Type ErrorType

	// Description is an optional human-readable explanation
	Description string

	// RequestID ties the error back to the request that caused it
	RequestID string
}

// Title returns a short human-readable name for the error type
func (e ErrorResponse) Title() string {
	switch e.Type {
	case ErrTypeNotGranted:
		return "Permission not granted"
	case ErrTypeAborted:
		return "Request aborted"
	case ErrTypeBroadcastError:
		return "Broadcast failed"
	case ErrTypeNetworkNotSupported:
		return "Network not supported"
	case ErrTypeNoAddress:
		return "No address available"
	case ErrTypeParametersInvalid:
		return "Invalid parameters"
	case ErrTypeTooManyOperations:
		return "Too many operations"
	case ErrTypeTransactionInvalid:
		return "Invalid transaction"
	case ErrTypeSignatureRejected:
		return "Signature rejected"
	default:
		return "Unknown error"
	}
}
