// Package export writes correction forms to xlsx workbooks.
package export

import (
	"bytes"
	"fmt"

	"go-warehouse-ops/internal/correction"
	"go-warehouse-ops/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Koreksi Stok"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headings = []string{"No", "SKU", "Nama Barang", "Satuan", "Panjang", "Lebar", "System", "Fisik", "Koreksi", "Harga", "Nilai"}

// CorrectionWorkbook renders the header block, every filled line and the
// summary totals of a form.
func CorrectionWorkbook(header model.CorrectionHeader, lines []model.CorrectionLine) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	meta := [][2]interface{}{
		{"Nomor", header.Number},
		{"Tanggal", header.Date},
		{"Gudang", fmt.Sprintf("%s - %s", header.WarehouseCode, header.WarehouseName)},
		{"Tipe", model.CorrectionTypeName(header.TypeCode)},
		{"Keterangan", header.Note},
	}
	for i, m := range meta {
		row := i + 1
		f.SetCellValue(SheetName, cell(1, row), m[0])
		f.SetCellValue(SheetName, cell(2, row), m[1])
	}

	headRow := len(meta) + 2
	for i, h := range headings {
		f.SetCellValue(SheetName, cell(i+1, headRow), h)
	}

	row := headRow
	no := 0
	for _, l := range lines {
		if l.IsBlank() {
			continue
		}
		row++
		no++
		values := []interface{}{no, l.SKU, l.Name, l.Unit, l.Length, l.Width, l.SystemQty, l.PhysicalQty, l.CorrectionQty, l.UnitPrice, l.Valuation}
		for i, v := range values {
			f.SetCellValue(SheetName, cell(i+1, row), v)
		}
	}

	sum := correction.Summarize(lines)
	row += 2
	totals := [][2]interface{}{
		{"Total Nilai", sum.TotalValuation.InexactFloat64()},
		{"Nilai Lebih", sum.SurplusValuation.InexactFloat64()},
		{"Nilai Kurang", sum.ShortageValuation.InexactFloat64()},
		{"Belum Dihitung", sum.Uncounted},
	}
	for i, t := range totals {
		f.SetCellValue(SheetName, cell(10, row+i), t[0])
		f.SetCellValue(SheetName, cell(11, row+i), t[1])
	}

	return f.WriteToBuffer()
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// FileName is the attachment name for a form's workbook.
func FileName(header model.CorrectionHeader) string {
	return fmt.Sprintf("koreksi-stok-%s-%s.xlsx", header.WarehouseCode, header.Date)
}
