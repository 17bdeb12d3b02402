package service

import (
	"errors"

	"github.com/shipflow/ordergateway/internal/constants"
	"github.com/shipflow/ordergateway/pkg/eccang"
)

var (
	ErrOrderNotFound = errors.New("ORDER_NOT_FOUND")
	ErrLabelNotReady = errors.New("LABEL_NOT_READY")
	ErrDatabase      = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// carrierErrorCode maps a gateway error to the workflow error code it
// surfaces under. Business failures keep their own code so they are never
// mistaken for retryable faults.
func carrierErrorCode(err error) string {
	var businessErr *eccang.BusinessError
	var transportErr *eccang.TransportError
	var schemaErr *eccang.SchemaError
	var decodeErr *eccang.DecodeError

	switch {
	case errors.As(err, &businessErr):
		return constants.ErrCodeCarrierRejected
	case errors.As(err, &transportErr):
		return constants.ErrCodeCarrierUnavailable
	case errors.As(err, &schemaErr), errors.As(err, &decodeErr):
		return constants.ErrCodeCarrierProtocol
	default:
		return constants.ErrCodeCarrierUnavailable
	}
}
