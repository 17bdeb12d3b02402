package eccang

import "fmt"

const (
	ErrCodeDecode    = "CARRIER_DECODE_ERROR"
	ErrCodeSchema    = "CARRIER_SCHEMA_ERROR"
	ErrCodeTransport = "CARRIER_TRANSPORT_ERROR"
	ErrCodeBusiness  = "CARRIER_BUSINESS_ERROR"
)

// DecodeError reports a malformed envelope or an embedded payload that is not
// valid JSON. Indicates a transport or format problem, not a schema mismatch.
type DecodeError struct {
	Reason string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrCodeDecode, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCodeDecode, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// SchemaError reports a decoded payload that does not match the expected
// per-operation shape.
type SchemaError struct {
	Field    string
	Expected string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: field %q: expected %s", ErrCodeSchema, e.Field, e.Expected)
}

// TransportError reports a non-2xx HTTP status from the carrier endpoint.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrCodeTransport, e.StatusCode)
}

// BusinessError reports that the carrier explicitly answered with Failure.
// Never retried automatically: a retry would resubmit a business decision.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeBusiness, e.Message)
}
