package export

import (
	"testing"

	"go-warehouse-ops/internal/model"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCorrectionWorkbook(t *testing.T) {
	header := model.CorrectionHeader{Number: "AUTO", Date: "2026-10-15", WarehouseCode: "WH-16", WarehouseName: "GUDANG UTAMA MMT", TypeCode: model.CorrectionReceive}
	lines := []model.CorrectionLine{
		{Key: "k1", SKU: "K-1", Name: "Kain", Unit: "M", SystemQty: 10, PhysicalQty: 12, Counted: true, CorrectionQty: 2, UnitPrice: 1500, Valuation: 3000},
		{Key: "k2"},
		{Key: "k3", SKU: "K-2", Name: "Benang", SystemQty: 4, CorrectionQty: -4, UnitPrice: 250, Valuation: -1000},
	}

	buf, err := CorrectionWorkbook(header, lines)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetName, "B3")
	require.NoError(t, err)
	require.Equal(t, "WH-16 - GUDANG UTAMA MMT", v)

	v, _ = f.GetCellValue(SheetName, "B4")
	require.Equal(t, "Terima", v)

	v, _ = f.GetCellValue(SheetName, "C7")
	require.Equal(t, "Nama Barang", v)

	// blank line is skipped, so K-2 is on the second data row
	v, _ = f.GetCellValue(SheetName, "B9")
	require.Equal(t, "K-2", v)
	v, _ = f.GetCellValue(SheetName, "I9")
	require.Equal(t, "-4", v)

	v, _ = f.GetCellValue(SheetName, "K11")
	require.Equal(t, "2000", v)
	v, _ = f.GetCellValue(SheetName, "K14")
	require.Equal(t, "1", v)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "koreksi-stok-WH-16-2026-10-15.xlsx", FileName(model.CorrectionHeader{WarehouseCode: "WH-16", Date: "2026-10-15"}))
}
