package correction

import (
	"testing"

	"go-warehouse-ops/internal/model"

	"github.com/stretchr/testify/require"
)

func TestInsertBlankAndFindEditableIndex(t *testing.T) {
	s := newTestStore()
	require.Equal(t, 0, s.Len())

	// empty store: a blank line is created
	require.Equal(t, 0, s.FindEditableIndex())
	require.Equal(t, 1, s.Len())

	// existing blank is reused
	require.Equal(t, 0, s.FindEditableIndex())
	require.Equal(t, 1, s.Len())

	_, err := s.ApplyItemToIndex(0, stock("A", 1, 1))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len(), "filling the last line appends a blank")
	require.Equal(t, 1, s.FindEditableIndex())
}

func TestFindEditableIndexAppendsWhenAllFilled(t *testing.T) {
	s := newTestStore()
	s.ReplaceAll([]model.CorrectionLine{{Key: "a", SKU: "A"}, {Key: "b", SKU: "B"}})

	require.Equal(t, 2, s.FindEditableIndex())
	require.Equal(t, 3, s.Len())
	require.Equal(t, "A", s.Lines()[0].SKU, "existing data kept")
}

func TestApplyItemToIndex(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	s.drafts.Stage("k1", FieldPhysical, "99")

	line, err := s.ApplyItemToIndex(0, model.StockRecord{
		Code: " SKU-1 ", Name: "Kain", Unit: "M", Length: 50, Width: 1.2, Stock: 10, PurchasePrice: 1500,
	})
	require.NoError(t, err)
	require.Equal(t, "SKU-1", line.SKU)
	require.Equal(t, 10.0, line.SystemQty)
	require.Equal(t, 0.0, line.PhysicalQty)
	require.False(t, line.Counted)
	require.Equal(t, -10.0, line.CorrectionQty)
	require.Equal(t, -15000.0, line.Valuation)
	requireReconciled(t, line)

	_, staged := s.drafts.Get("k1", FieldPhysical)
	require.False(t, staged, "drafts of a replaced line are dropped")
	require.Equal(t, 2, s.Len())
}

func TestApplyItemToMiddleLineDoesNotAppend(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	s.InsertBlank()

	_, err := s.ApplyItemToIndex(0, stock("A", 1, 1))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
}

func TestApplyItemRejectsBlankSKU(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	before := s.Lines()

	_, err := s.ApplyItemToIndex(0, model.StockRecord{Code: "   ", Stock: 4})
	require.ErrorIs(t, err, ErrBlankSKU)
	require.True(t, IsValidation(err))
	require.Equal(t, before, s.Lines())
}

func TestApplyItemDuplicateLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	_, err := s.ApplyItemToIndex(0, stock("A", 5, 100))
	require.NoError(t, err)
	before := s.Lines()

	_, err = s.ApplyItemToIndex(1, stock("A", 7, 200))
	require.ErrorIs(t, err, ErrDuplicateSKU)
	require.Contains(t, err.Error(), "A")
	require.Equal(t, before, s.Lines())
}

func TestApplyItemSameSKUOnSameLineIsAllowed(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	_, err := s.ApplyItemToIndex(0, stock("A", 5, 100))
	require.NoError(t, err)

	// re-picking the item of the row being replaced is not a duplicate
	line, err := s.ApplyItemToIndex(0, stock("A", 6, 100))
	require.NoError(t, err)
	require.Equal(t, 6.0, line.SystemQty)
}

func TestApplyItemOutOfRange(t *testing.T) {
	s := newTestStore()
	_, err := s.ApplyItemToIndex(3, stock("A", 1, 1))
	require.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveByKey(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	_, err := s.ApplyItemToIndex(0, stock("A", 5, 100))
	require.NoError(t, err)
	s.drafts.Stage("k1", FieldLength, "3")

	require.True(t, s.RemoveByKey("k1"))
	require.False(t, s.RemoveByKey("k1"))
	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.drafts.Len())
}

func TestRemoveLastLineLeavesOneBlank(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	_, err := s.ApplyItemToIndex(0, stock("A", 5, 100))
	require.NoError(t, err)

	for _, l := range s.Lines() {
		s.RemoveByKey(l.Key)
	}
	require.Equal(t, 1, s.Len())
	require.True(t, s.Lines()[0].IsBlank())
}

func TestReplaceAllClearsDrafts(t *testing.T) {
	s := newTestStore()
	s.InsertBlank()
	s.drafts.Stage("k1", FieldPhysical, "4")

	s.ReplaceAll([]model.CorrectionLine{{Key: "x", SKU: "X"}, {SKU: "Y"}})
	require.Equal(t, 0, s.drafts.Len())
	require.Equal(t, 2, s.Len())
	require.Equal(t, "x", s.Lines()[0].Key)
	require.NotEmpty(t, s.Lines()[1].Key)

	s.ReplaceAll(nil)
	require.Equal(t, 1, s.Len())
}

func TestNewKeyIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		k := NewKey()
		require.False(t, seen[k])
		seen[k] = true
	}
}
