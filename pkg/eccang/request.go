package eccang

type Consignee struct {
	Name      string `json:"consignee_name" validate:"required"`
	Street    string `json:"consignee_street" validate:"required"`
	City      string `json:"consignee_city" validate:"required"`
	Province  string `json:"consignee_province,omitempty"`
	Postcode  string `json:"consignee_postcode" validate:"required"`
	Telephone string `json:"consignee_telephone" validate:"required"`
	Email     string `json:"consignee_email,omitempty" validate:"omitempty,email"`
}

type InvoiceItem struct {
	EnName          string  `json:"invoice_enname" validate:"required"`
	CnName          string  `json:"invoice_cnname,omitempty"`
	Weight          float64 `json:"invoice_weight"`
	Quantity        int     `json:"invoice_quantity" validate:"required,gt=0"`
	UnitCode        string  `json:"unit_code,omitempty" validate:"omitempty,oneof=PCE PCS SET"`
	UnitCharge      float64 `json:"invoice_unitcharge"`
	CurrencyCode    string  `json:"invoice_currencycode,omitempty"`
	HSCode          string  `json:"hs_code,omitempty"`
	Magnetoelectric string  `json:"is_magnetoelectric,omitempty" validate:"omitempty,oneof=N E M Y"`
	BoxNumber       string  `json:"box_number,omitempty"`
}

type Volume struct {
	BoxNumber string  `json:"box_number,omitempty"`
	Length    float64 `json:"length,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
}

type CreateOrderRequest struct {
	ReferenceNo    string        `json:"reference_no" validate:"required,max=50"`
	ShippingMethod string        `json:"shipping_method" validate:"required"`
	CountryCode    string        `json:"country_code" validate:"required,len=2"`
	OrderWeight    float64       `json:"order_weight"`
	OrderPieces    int           `json:"order_pieces" validate:"required,gt=0"`
	MailCargoType  int           `json:"mail_cargo_type,omitempty"`
	CargoType      string        `json:"cargo_type,omitempty" validate:"omitempty,oneof=W D L"`
	IsCOD          string        `json:"is_COD,omitempty" validate:"omitempty,oneof=Y N"`
	Consignee      Consignee     `json:"Consignee" validate:"required"`
	Items          []InvoiceItem `json:"ItemArr" validate:"required,min=1,dive"`
	Volumes        []Volume      `json:"Volume" validate:"required,min=1,dive"`
}

// ApplyDefaults fills the carrier-required fields the caller may omit.
func (r *CreateOrderRequest) ApplyDefaults() {
	if r.MailCargoType == 0 {
		r.MailCargoType = 4
	}
	if r.CargoType == "" {
		r.CargoType = "W"
	}
	if r.IsCOD == "" {
		r.IsCOD = "N"
	}
	for i := range r.Items {
		if r.Items[i].CurrencyCode == "" {
			r.Items[i].CurrencyCode = "USD"
		}
		if r.Items[i].BoxNumber == "" {
			r.Items[i].BoxNumber = "U001"
		}
	}
	for i := range r.Volumes {
		if r.Volumes[i].BoxNumber == "" {
			r.Volumes[i].BoxNumber = "U001"
		}
	}
}

type GetTrackNumberRequest struct {
	ReferenceNo []string `json:"reference_no"`
}

type GetLabelURLRequest struct {
	ReferenceNo string `json:"reference_no"`
}
