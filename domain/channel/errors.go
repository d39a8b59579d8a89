package channel

import "errors"

// Failure kinds surfaced at the operation boundary.
// Callers wrap these with context and match them with errors.Is.
var (
	ErrUnknownTransport    = errors.New("unknown transport")
	ErrUnknownChannel      = errors.New("unknown channel")
	ErrReadOnlyChannel     = errors.New("channel is read-only")
	ErrMixedTransportBatch = errors.New("batch spans more than one transport")
	ErrArityMismatch       = errors.New("number of values does not match number of ids")
	ErrInvalidValue        = errors.New("invalid value encoding")
	ErrTimeout             = errors.New("timed out waiting for channel")
	ErrConnection          = errors.New("transport connection error")
	ErrWriteRejected       = errors.New("write rejected")
)

// Stable error codes, used in GraphQL extensions and API error bodies.
const (
	CodeUnknownTransport    = "UNKNOWN_TRANSPORT"
	CodeUnknownChannel      = "UNKNOWN_CHANNEL"
	CodeReadOnlyChannel     = "READ_ONLY_CHANNEL"
	CodeMixedTransportBatch = "MIXED_TRANSPORT_BATCH"
	CodeArityMismatch       = "ARITY_MISMATCH"
	CodeInvalidValue        = "INVALID_VALUE"
	CodeTimeout             = "TIMEOUT"
	CodeConnection          = "CONNECTION_ERROR"
	CodeWriteRejected       = "WRITE_REJECTED"
	CodeInternal            = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrUnknownTransport, CodeUnknownTransport},
	{ErrUnknownChannel, CodeUnknownChannel},
	{ErrReadOnlyChannel, CodeReadOnlyChannel},
	{ErrMixedTransportBatch, CodeMixedTransportBatch},
	{ErrArityMismatch, CodeArityMismatch},
	{ErrInvalidValue, CodeInvalidValue},
	{ErrTimeout, CodeTimeout},
	{ErrConnection, CodeConnection},
	{ErrWriteRejected, CodeWriteRejected},
}

// ErrorCode returns the stable code for err, or CodeInternal when err is not
// one of the channel failure kinds.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
