package model

// CorrectionType is the kind of stock correction document (TypeKor).
type CorrectionType struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

const (
	CorrectionReceive           = 100
	CorrectionIssue             = 200
	CorrectionProductionRemnant = 300
)

// CorrectionTypes is fixed on the client side; the upstream API does not serve it.
var CorrectionTypes = []CorrectionType{
	{Code: CorrectionReceive, Name: "Terima"},
	{Code: CorrectionIssue, Name: "Keluar"},
	{Code: CorrectionProductionRemnant, Name: "Sisa Produksi"},
}

// CorrectionTypeName resolves a type code, returning "" for unknown codes.
func CorrectionTypeName(code int) string {
	for _, t := range CorrectionTypes {
		if t.Code == code {
			return t.Name
		}
	}
	return ""
}

// CorrectionLine is one row of a stock correction (koreksi stok) form.
// CorrectionQty and Valuation are derived; see correction.Recompute.
type CorrectionLine struct {
	Key           string  `json:"key"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
	Expired       *string `json:"expired"`
	SystemQty     float64 `json:"system_qty"`
	PhysicalQty   float64 `json:"physical_qty"`
	Counted       bool    `json:"counted"` // false until a physical count was entered
	CorrectionQty float64 `json:"correction_qty"`
	UnitPrice     float64 `json:"unit_price"`
	Valuation     float64 `json:"valuation"`
}

// IsBlank reports whether the line is still an open slot.
func (l CorrectionLine) IsBlank() bool {
	return trimmed(l.SKU) == ""
}

// CorrectionHeader is the master part of a correction document.
type CorrectionHeader struct {
	Number        string `json:"number"` // "AUTO" until the server assigns one
	Date          string `json:"date"`
	WarehouseCode string `json:"warehouse_code" validate:"notblank"`
	WarehouseName string `json:"warehouse_name"`
	TypeCode      int    `json:"type_code" validate:"required,oneof=100 200 300"`
	Note          string `json:"note"`
}

// CorrectionDetail is a saved line: a CorrectionLine without its row key.
type CorrectionDetail struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
	Expired       *string `json:"expired"`
	SystemQty     float64 `json:"system_qty"`
	PhysicalQty   float64 `json:"physical_qty"`
	CorrectionQty float64 `json:"correction_qty"`
	UnitPrice     float64 `json:"unit_price"`
	Valuation     float64 `json:"valuation"`
}

type CorrectionPayloadHeader struct {
	CorrectionHeader
	TypeName string `json:"type_name"`
}

// CorrectionPayload is what createCorrectionDocument receives.
type CorrectionPayload struct {
	Header  CorrectionPayloadHeader `json:"header"`
	Details []CorrectionDetail      `json:"details"`
}

// BarcodeLabel is one entry of the printable QR label sheet.
type BarcodeLabel struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	QRValue string  `json:"qr_value"`
	Length  float64 `json:"length"`
	Width   float64 `json:"width"`
}
