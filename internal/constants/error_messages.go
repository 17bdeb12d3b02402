package constants

const (
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeLabelNotReady      = "LABEL_NOT_READY"
	ErrCodeCarrierRejected    = "CARRIER_REJECTED"
	ErrCodeCarrierUnavailable = "CARRIER_UNAVAILABLE"
	ErrCodeCarrierProtocol    = "CARRIER_PROTOCOL_ERROR"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgOrderNotFound      = "order not found"
	ErrMsgLabelNotReady      = "label not generated by the carrier yet"
	ErrMsgCarrierRejected    = "carrier rejected the request"
	ErrMsgCarrierUnavailable = "carrier is unavailable"
	ErrMsgCarrierProtocol    = "carrier returned an unreadable response"
	ErrMsgValidationFailed   = "request failed validation"
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgDatabase           = "storage operation failed"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeOrderNotFound:      ErrMsgOrderNotFound,
	ErrCodeLabelNotReady:      ErrMsgLabelNotReady,
	ErrCodeCarrierRejected:    ErrMsgCarrierRejected,
	ErrCodeCarrierUnavailable: ErrMsgCarrierUnavailable,
	ErrCodeCarrierProtocol:    ErrMsgCarrierProtocol,
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeDatabase:           ErrMsgDatabase,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeOrderNotFound:
		return 404
	case ErrCodeLabelNotReady:
		return 409
	case ErrCodeValidationFailed, ErrCodeCarrierRejected:
		return 422
	case ErrCodeCarrierUnavailable, ErrCodeCarrierProtocol:
		return 502
	case ErrCodeDatabase, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
