package service

import (
	"encoding/json"
	"time"

	"github.com/shipflow/ordergateway/internal/model"
	"github.com/shipflow/ordergateway/pkg/eccang"
)

type CreateOrderResponse struct {
	Order    OrderView                  `json:"order"`
	Tracking model.TrackingSummary      `json:"tracking"`
	Carrier  eccang.CreateOrderResponse `json:"carrier"`
}

type OrderView struct {
	ID                 string          `json:"id"`
	ReferenceNo        string          `json:"reference_no"`
	OrderCode          *string         `json:"order_code"`
	ShippingMethodNo   *string         `json:"shipping_method_no"`
	CountryCode        string          `json:"country_code"`
	ShippingMethod     string          `json:"shipping_method"`
	OrderWeightKg      float64         `json:"order_weight_kg"`
	OrderPieces        int             `json:"order_pieces"`
	TrackStatus        *int            `json:"track_status"`
	TrackingNumberList json.RawMessage `json:"tracking_number_list,omitempty"`
	LastLabelAt        *time.Time      `json:"last_label_at"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	LatestLabel        *LabelView      `json:"latest_label"`
}

type LabelView struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Order     *OrderRef `json:"order,omitempty"`
}

type OrderRef struct {
	ReferenceNo      string  `json:"reference_no"`
	OrderCode        *string `json:"order_code"`
	ShippingMethodNo *string `json:"shipping_method_no"`
}

type ListLabelsResponse struct {
	Items    []LabelView `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func newOrderView(order *model.Order) OrderView {
	return OrderView{
		ID:                 order.ID,
		ReferenceNo:        order.ReferenceNo,
		OrderCode:          order.OrderCode,
		ShippingMethodNo:   order.ShippingMethodNo,
		CountryCode:        order.CountryCode,
		ShippingMethod:     order.ShippingMethod,
		OrderWeightKg:      order.OrderWeightKg,
		OrderPieces:        order.OrderPieces,
		TrackStatus:        order.TrackStatus,
		TrackingNumberList: json.RawMessage(order.TrackingNumberList),
		LastLabelAt:        order.LastLabelAt,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func newLabelView(label *model.Label) LabelView {
	view := LabelView{
		ID:        label.ID,
		OrderID:   label.OrderID,
		URL:       label.URL,
		Type:      label.Type,
		CreatedAt: label.CreatedAt,
	}

	if label.Order != nil {
		view.Order = &OrderRef{
			ReferenceNo:      label.Order.ReferenceNo,
			OrderCode:        label.Order.OrderCode,
			ShippingMethodNo: label.Order.ShippingMethodNo,
		}
	}

	return view
}
