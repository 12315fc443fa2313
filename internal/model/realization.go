package model

// RealizationLine is one scanned roll/bahan of a production realization.
type RealizationLine struct {
	Key      string  `json:"key"`
	Barcode  string  `json:"barcode"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Note     string  `json:"note"`
	Operator string  `json:"operator"`
	SPK      string  `json:"spk"` // production work order, "" when none
	Stock    float64 `json:"stock"`
}

// HasBarcode reports whether the line holds a scanned barcode.
func (l RealizationLine) HasBarcode() bool {
	return trimmed(l.Barcode) != ""
}

type RealizationHeader struct {
	Number                 string `json:"number"`
	Date                   string `json:"date"` // DD/MM/YYYY
	WarehouseCode          string `json:"warehouse_code" validate:"notblank"`
	WarehouseName          string `json:"warehouse_name"`
	ProductionLocationCode string `json:"production_location_code" validate:"notblank"`
	ProductionLocationName string `json:"production_location_name"`
	Note                   string `json:"note"`
}

// BarcodeStock is the upstream resolution of a scanned barcode.
type BarcodeStock struct {
	Barcode string
	SKU     string
	Name    string
	Unit    string
	Length  float64
	Width   float64
	Stock   float64
	SPK     string
}

type RealizationPayloadHeader struct {
	Number             string `json:"nomor"`
	Date               string `json:"tanggal"`
	WarehouseCode      string `json:"mnt_gdg_kode"`
	ProductionLocation string `json:"mnt_lokasiproduksi"`
	Note               string `json:"mnt_keterangan"`
	UserCreate         string `json:"user_create"`
}

type RealizationPayloadDetail struct {
	SKU     string  `json:"sku"`
	Barcode string  `json:"barcode"`
	Qty     float64 `json:"qty"`
	Unit    string  `json:"satuan"`
	SPK     string  `json:"spk"`
	Note    string  `json:"keterangan"`
}

// RealizationPayload is posted as-is to the upstream production endpoint.
type RealizationPayload struct {
	Header     RealizationPayloadHeader   `json:"header"`
	Details    []RealizationPayloadDetail `json:"details"`
	IsEditMode bool                       `json:"isEditMode"`
}
