package correction

import (
	"fmt"
	"math"
	"testing"

	"go-warehouse-ops/internal/model"

	"github.com/stretchr/testify/require"
)

// seqKeys returns a deterministic key generator: k1, k2, ...
func seqKeys() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("k%d", n)
	}
}

func newTestStore() *Store {
	s := NewStore(NewDraftBuffer())
	s.newKey = seqKeys()
	return s
}

func newTestForm() *Form {
	f := &Form{
		Header: model.CorrectionHeader{Number: "AUTO", Date: "2026-10-15", WarehouseCode: "WH-16", TypeCode: 100},
		drafts: NewDraftBuffer(),
	}
	f.store = NewStore(f.drafts)
	f.store.newKey = seqKeys()
	f.store.InsertBlank()
	return f
}

func stock(code string, qty, price float64) model.StockRecord {
	return model.StockRecord{Code: code, Name: "Bahan " + code, Unit: "ROLL", Stock: qty, PurchasePrice: price}
}

// requireReconciled checks the derived fields of a line.
func requireReconciled(t *testing.T, l model.CorrectionLine) {
	t.Helper()
	require.Equal(t, l.PhysicalQty-l.SystemQty, l.CorrectionQty)
	require.Equal(t, l.CorrectionQty*l.UnitPrice, l.Valuation)
	require.False(t, math.Signbit(l.CorrectionQty) && l.CorrectionQty == 0, "correction qty is -0")
	require.False(t, math.Signbit(l.Valuation) && l.Valuation == 0, "valuation is -0")
}
