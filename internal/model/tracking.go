package model

// BoxNumberPrimary is assigned to list entries the carrier returns without a
// box number.
const BoxNumberPrimary = "PRIMARY"

// TrackingPair associates one parcel box with its carrier tracking number.
type TrackingPair struct {
	BoxNumber      string `json:"box_number"`
	TrackingNumber string `json:"tracking_number"`
}

// TrackingSummary is the canonical view of every tracking representation the
// carrier may return for one order. TrackingNumbers is de-duplicated and keeps
// first-seen order; Primary is its first element when present.
type TrackingSummary struct {
	Status          *int           `json:"status,omitempty"`
	Primary         string         `json:"primary,omitempty"`
	TrackingNumbers []string       `json:"tracking_numbers"`
	List            []TrackingPair `json:"list,omitempty"`
}
