package model

import (
	"time"

	"gorm.io/datatypes"
)

// Order mirrors one carrier order keyed by the caller-supplied reference.
// TrackingNumberList holds either the normalized box/tracking pair list or a
// flat tracking-number array, whichever the reconciliation produced.
type Order struct {
	ID                 string         `gorm:"primaryKey;column:id;<-:create"`
	ReferenceNo        string         `gorm:"column:reference_no;uniqueIndex:idx_orders_reference_no"`
	OrderCode          *string        `gorm:"column:order_code"`
	ShippingMethodNo   *string        `gorm:"column:shipping_method_no"`
	CountryCode        string         `gorm:"column:country_code"`
	ShippingMethod     string         `gorm:"column:shipping_method"`
	OrderWeightKg      float64        `gorm:"column:order_weight_kg"`
	OrderPieces        int            `gorm:"column:order_pieces"`
	TrackStatus        *int           `gorm:"column:track_status"`
	TrackingNumberList datatypes.JSON `gorm:"column:tracking_number_list"`
	LastLabelAt        *time.Time     `gorm:"column:last_label_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
}
