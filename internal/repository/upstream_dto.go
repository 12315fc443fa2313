package repository

import (
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"
)

// Upstream paths, relative to the API base URL
const (
	pathLogin             = "/auth/login"
	pathWarehouseLookup   = "/mmt/lookup/gudang"
	pathCorrectionStock   = "/mmt/koreksi-stok/stok"
	pathCorrection        = "/mmt/koreksi-stok"
	pathBarcodeStock      = "/mmt/permintaan-produksi/stok-barcode/"
	pathProductionRequest = "/mmt/permintaan-produksi"
)

type warehouseDTO struct {
	Kode apiclient.Text `json:"Kode"`
	Nama apiclient.Text `json:"Nama"`
}

type stockDTO struct {
	Kode    apiclient.Text   `json:"Kode"`
	Nama    apiclient.Text   `json:"Nama"`
	Satuan  apiclient.Text   `json:"Satuan"`
	Panjang apiclient.Number `json:"Panjang"`
	Lebar   apiclient.Number `json:"Lebar"`
	Stok    apiclient.Number `json:"Stok"`
	HrgBeli apiclient.Number `json:"HRGBELI"`
}

func (d stockDTO) toModel() model.StockRecord {
	return model.StockRecord{
		Code:          d.Kode.String(),
		Name:          d.Nama.String(),
		Unit:          d.Satuan.String(),
		Length:        d.Panjang.Float(),
		Width:         d.Lebar.Float(),
		Stock:         d.Stok.Float(),
		PurchasePrice: d.HrgBeli.Float(),
	}
}

type correctionHeaderDTO struct {
	Nomor      string `json:"Nomor"`
	Tanggal    string `json:"Tanggal"`
	GudangKode string `json:"GudangKode"`
	GudangNama string `json:"GudangNama"`
	TypeKor    int    `json:"TypeKor"`
	Keterangan string `json:"Keterangan"`
	TypeName   string `json:"TypeName"`
}

type correctionDetailDTO struct {
	SKU        string  `json:"SKU"`
	NamaBarang string  `json:"NamaBarang"`
	Satuan     string  `json:"Satuan"`
	Panjang    float64 `json:"Panjang"`
	Lebar      float64 `json:"Lebar"`
	Expired    *string `json:"Expired"`
	System     float64 `json:"System"`
	Fisik      float64 `json:"Fisik"`
	Qty        float64 `json:"Qty"`
	Harga      float64 `json:"Harga"`
	Nilai      float64 `json:"Nilai"`
}

type correctionPayloadDTO struct {
	Header  correctionHeaderDTO   `json:"header"`
	Details []correctionDetailDTO `json:"details"`
}

func toCorrectionPayloadDTO(p model.CorrectionPayload) correctionPayloadDTO {
	out := correctionPayloadDTO{
		Header: correctionHeaderDTO{
			Nomor:      p.Header.Number,
			Tanggal:    p.Header.Date,
			GudangKode: p.Header.WarehouseCode,
			GudangNama: p.Header.WarehouseName,
			TypeKor:    p.Header.TypeCode,
			Keterangan: p.Header.Note,
			TypeName:   p.Header.TypeName,
		},
		Details: make([]correctionDetailDTO, 0, len(p.Details)),
	}
	for _, d := range p.Details {
		out.Details = append(out.Details, correctionDetailDTO{
			SKU:        d.SKU,
			NamaBarang: d.Name,
			Satuan:     d.Unit,
			Panjang:    d.Length,
			Lebar:      d.Width,
			Expired:    d.Expired,
			System:     d.SystemQty,
			Fisik:      d.PhysicalQty,
			Qty:        d.CorrectionQty,
			Harga:      d.UnitPrice,
			Nilai:      d.Valuation,
		})
	}
	return out
}

type documentDTO struct {
	Nomor      apiclient.Text      `json:"Nomor"`
	Tanggal    apiclient.Text      `json:"Tanggal"`
	Gudang     apiclient.Text      `json:"Gudang"`
	Tipe       apiclient.Text      `json:"Tipe"`
	NamaTipe   apiclient.Text      `json:"Nama_Tipe"`
	Keterangan apiclient.Text      `json:"Keterangan"`
	Detail     []documentDetailDTO `json:"Detail"`
}

type documentDetailDTO struct {
	Nomor   apiclient.Text   `json:"Nomor"`
	Kode    apiclient.Text   `json:"Kode"`
	Nama    apiclient.Text   `json:"Nama"`
	Panjang apiclient.Number `json:"Panjang"`
	Lebar   apiclient.Number `json:"Lebar"`
	Satuan  apiclient.Text   `json:"Satuan"`
	Stock   apiclient.Number `json:"Stock"`
	Fisik   apiclient.Number `json:"Fisik"`
	Koreksi apiclient.Number `json:"Koreksi"`
}

func (d documentDTO) toModel() model.CorrectionDocument {
	doc := model.CorrectionDocument{
		Number:    d.Nomor.String(),
		Date:      d.Tanggal.String(),
		Warehouse: d.Gudang.String(),
		TypeCode:  d.Tipe.String(),
		TypeName:  d.NamaTipe.String(),
		Note:      d.Keterangan.String(),
		Detail:    make([]model.DocumentDetail, 0, len(d.Detail)),
	}
	for _, x := range d.Detail {
		doc.Detail = append(doc.Detail, model.DocumentDetail{
			Number:     x.Nomor.String(),
			SKU:        x.Kode.String(),
			Name:       x.Nama.String(),
			Length:     x.Panjang.Float(),
			Width:      x.Lebar.Float(),
			Unit:       x.Satuan.String(),
			Stock:      x.Stock.Float(),
			Physical:   x.Fisik.Float(),
			Correction: x.Koreksi.Float(),
		})
	}
	return doc
}

type barcodeStockDTO struct {
	Barcode   apiclient.Text   `json:"Barcode"`
	Kode      apiclient.Text   `json:"Kode"`
	NamaBahan apiclient.Text   `json:"Nama_Bahan"`
	Satuan    apiclient.Text   `json:"Satuan"`
	Panjang   apiclient.Number `json:"Panjang"`
	Lebar     apiclient.Number `json:"Lebar"`
	Stok      apiclient.Number `json:"Stok"`
	NomorSPK  apiclient.Text   `json:"Nomor_SPK"`
}

func (d barcodeStockDTO) toModel() model.BarcodeStock {
	return model.BarcodeStock{
		Barcode: d.Barcode.String(),
		SKU:     d.Kode.String(),
		Name:    d.NamaBahan.String(),
		Unit:    d.Satuan.String(),
		Length:  d.Panjang.Float(),
		Width:   d.Lebar.Float(),
		Stock:   d.Stok.Float(),
		SPK:     d.NomorSPK.String(),
	}
}
