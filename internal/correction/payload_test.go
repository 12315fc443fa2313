package correction

import (
	"testing"

	"go-warehouse-ops/internal/model"

	"github.com/stretchr/testify/require"
)

func validHeader() model.CorrectionHeader {
	return model.CorrectionHeader{
		Number:        "AUTO",
		Date:          "2026-10-15",
		WarehouseCode: "WH-16",
		WarehouseName: "GUDANG UTAMA MMT",
		TypeCode:      model.CorrectionProductionRemnant,
		Note:          "opname",
	}
}

func TestBuildPayload(t *testing.T) {
	lines := []model.CorrectionLine{
		Recompute(model.CorrectionLine{Key: "k1", SKU: "A", SystemQty: 3, PhysicalQty: 5, UnitPrice: 10, Counted: true}),
		{Key: "k2"},
		Recompute(model.CorrectionLine{Key: "k3", SKU: "B", SystemQty: 2, UnitPrice: 4}),
	}

	p, err := BuildPayload(validHeader(), lines)
	require.NoError(t, err)
	require.Equal(t, "Sisa Produksi", p.Header.TypeName)
	require.Equal(t, "WH-16", p.Header.WarehouseCode)
	require.Len(t, p.Details, 2)
	require.Equal(t, "A", p.Details[0].SKU)
	require.Equal(t, 2.0, p.Details[0].CorrectionQty)
	require.Equal(t, 20.0, p.Details[0].Valuation)
	require.Equal(t, "B", p.Details[1].SKU)
	require.Equal(t, -8.0, p.Details[1].Valuation)
}

func TestBuildPayloadRejects(t *testing.T) {
	filled := []model.CorrectionLine{{Key: "k1", SKU: "A"}}

	noWarehouse := validHeader()
	noWarehouse.WarehouseCode = " "
	_, err := BuildPayload(noWarehouse, filled)
	require.ErrorIs(t, err, ErrIncompleteHeader)

	noType := validHeader()
	noType.TypeCode = 0
	_, err = BuildPayload(noType, filled)
	require.ErrorIs(t, err, ErrIncompleteHeader)

	unknownType := validHeader()
	unknownType.TypeCode = 400
	_, err = BuildPayload(unknownType, filled)
	require.ErrorIs(t, err, ErrIncompleteHeader)

	_, err = BuildPayload(validHeader(), []model.CorrectionLine{{Key: "k1"}, {Key: "k2", SKU: "  "}})
	require.ErrorIs(t, err, ErrEmptyDetails)
	require.True(t, IsValidation(err))
}
