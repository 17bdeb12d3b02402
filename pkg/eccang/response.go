package eccang

import (
	"encoding/json"
	"errors"
)

const (
	AskSuccess = "Success"
	AskFailure = "Failure"
)

// TrackStatusPending means the carrier is still assigning tracking numbers.
// Other status values are stored verbatim and treated as final.
const TrackStatusPending = 2

const defaultFailureMessage = "carrier request failed"

type ErrorDetail struct {
	ErrMessage string `json:"errMessage"`
}

// BaseResponse carries the fields every carrier answer must include.
type BaseResponse struct {
	Ask     string       `json:"ask"`
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"Error,omitempty"`
}

func (r *BaseResponse) base() *BaseResponse {
	return r
}

// FailureMessage resolves the human-readable reason for a Failure answer,
// falling back to the nested error detail when message is empty.
func (r *BaseResponse) FailureMessage() string {
	if r.Message != "" {
		return r.Message
	}
	if r.Error != nil && r.Error.ErrMessage != "" {
		return r.Error.ErrMessage
	}
	return defaultFailureMessage
}

type CreateOrderResponse struct {
	BaseResponse
	TrackStatus        *int            `json:"track_status,omitempty"`
	OrderCode          string          `json:"order_code,omitempty"`
	ShippingMethodNo   string          `json:"shipping_method_no,omitempty"`
	ReferenceNo        string          `json:"reference_no,omitempty"`
	TrackingNumber     string          `json:"tracking_number,omitempty"`
	TrackingNumberAlt  string          `json:"TrackingNumber,omitempty"`
	TrackingNumberList json.RawMessage `json:"tracking_number_list,omitempty"`
}

type TrackNumberData struct {
	ReferenceNo        string          `json:"reference_no,omitempty"`
	TrackingNumber     string          `json:"tracking_number,omitempty"`
	TrackingNumberAlt  string          `json:"TrackingNumber,omitempty"`
	TrackingNumberList json.RawMessage `json:"tracking_number_list,omitempty"`
}

type GetTrackNumberResponse struct {
	BaseResponse
	TrackStatus *int              `json:"track_status,omitempty"`
	Datas       []TrackNumberData `json:"datas,omitempty"`
}

type LabelData struct {
	URL              string `json:"url"`
	LabelType        string `json:"label_type,omitempty"`
	ReferenceNo      string `json:"reference_no,omitempty"`
	OrderCode        string `json:"order_code,omitempty"`
	ShippingMethodNo string `json:"shipping_method_no,omitempty"`
	TrackingNumber   string `json:"tracking_number,omitempty"`
}

type GetLabelURLResponse struct {
	BaseResponse
	Datas []LabelData `json:"datas,omitempty"`
}

// Response is implemented by every per-operation response type via the
// embedded BaseResponse.
type Response interface {
	base() *BaseResponse
}

// ValidateResponse decodes payload into out and enforces the response
// contract: the base fields must be present, ask must be one of the known
// answers, and every typed field must carry its declared primitive type.
// Unknown extra fields are ignored.
func ValidateResponse(payload json.RawMessage, out Response) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return &SchemaError{Field: "(root)", Expected: "object"}
	}
	if _, ok := probe["ask"]; !ok {
		return &SchemaError{Field: "ask", Expected: `"Success" or "Failure"`}
	}
	if _, ok := probe["message"]; !ok {
		return &SchemaError{Field: "message", Expected: "string"}
	}

	if err := json.Unmarshal(payload, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return &SchemaError{Field: field, Expected: typeErr.Type.String()}
		}
		return &SchemaError{Field: "(root)", Expected: "valid response document"}
	}

	base := out.base()
	if base.Ask != AskSuccess && base.Ask != AskFailure {
		return &SchemaError{Field: "ask", Expected: `"Success" or "Failure"`}
	}

	return nil
}
