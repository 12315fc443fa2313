package model

// CorrectionDocument is a saved correction as listed by the upstream API.
type CorrectionDocument struct {
	Number    string           `json:"number"`
	Date      string           `json:"date"`
	Warehouse string           `json:"warehouse"`
	TypeCode  string           `json:"type_code"`
	TypeName  string           `json:"type_name"`
	Note      string           `json:"note"`
	Detail    []DocumentDetail `json:"detail"`
}

type DocumentDetail struct {
	Number     string  `json:"number"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
	Unit       string  `json:"unit"`
	Stock      float64 `json:"stock"`
	Physical   float64 `json:"physical"`
	Correction float64 `json:"correction"`
}
