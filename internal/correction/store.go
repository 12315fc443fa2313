package correction

import (
	"fmt"
	"strings"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/rows"
	"go-warehouse-ops/pkg/numeric"

	"github.com/google/uuid"
)

// NewKey generates a synthetic row key.
func NewKey() string {
	return "row_" + uuid.NewString()
}

// Store is the ordered, key-indexed list of correction lines of one form.
// Removing or replacing lines also drops their drafts.
type Store struct {
	lines  *rows.List[model.CorrectionLine]
	drafts *DraftBuffer
	newKey func() string
}

func NewStore(drafts *DraftBuffer) *Store {
	if drafts == nil {
		drafts = NewDraftBuffer()
	}
	return &Store{
		lines:  rows.New[model.CorrectionLine](),
		drafts: drafts,
		newKey: NewKey,
	}
}

func blankLine(key string) model.CorrectionLine {
	return model.CorrectionLine{Key: key}
}

func (s *Store) Len() int {
	return s.lines.Len()
}

// Lines returns a copy of every line in display order.
func (s *Store) Lines() []model.CorrectionLine {
	return s.lines.Values()
}

func (s *Store) Line(key string) (model.CorrectionLine, bool) {
	return s.lines.Get(key)
}

// Index returns the position of key, or -1.
func (s *Store) Index(key string) int {
	return s.lines.Index(key)
}

// InsertBlank appends an empty line with a fresh key.
func (s *Store) InsertBlank() model.CorrectionLine {
	line := blankLine(s.newKey())
	s.lines.Append(line.Key, line)
	return line
}

// FindEditableIndex returns the first line without a SKU, appending one when
// every line is filled.
func (s *Store) FindEditableIndex() int {
	idx, _ := s.lines.FindFirst(func(l model.CorrectionLine) bool { return l.IsBlank() })
	if idx >= 0 {
		return idx
	}
	s.InsertBlank()
	return s.lines.Len() - 1
}

// ApplyItemToIndex fills the line at index from a stock record. A blank SKU or
// a SKU already present on another line aborts without changing anything.
// Filling the last line appends a new blank one.
func (s *Store) ApplyItemToIndex(index int, rec model.StockRecord) (model.CorrectionLine, error) {
	key, line, ok := s.lines.At(index)
	if !ok {
		return model.CorrectionLine{}, fmt.Errorf("%w: index %d", ErrLineNotFound, index)
	}

	sku := strings.TrimSpace(rec.Code)
	if sku == "" {
		return model.CorrectionLine{}, ErrBlankSKU
	}

	dupIdx, _ := s.lines.FindFirst(func(l model.CorrectionLine) bool {
		return l.Key != key && strings.TrimSpace(l.SKU) == sku
	})
	if dupIdx >= 0 {
		return model.CorrectionLine{}, fmt.Errorf("%w: Bahan %s sudah ada di daftar", ErrDuplicateSKU, sku)
	}

	line.SKU = sku
	line.Name = rec.Name
	line.Unit = rec.Unit
	line.Length = numeric.Normalize(rec.Length)
	line.Width = numeric.Normalize(rec.Width)
	line.SystemQty = numeric.Normalize(rec.Stock)
	line.UnitPrice = numeric.Normalize(rec.PurchasePrice)
	line.PhysicalQty = 0
	line.Counted = false
	line = Recompute(line)

	s.lines.Set(key, line)
	s.drafts.ClearLine(key)

	if index == s.lines.Len()-1 {
		s.InsertBlank()
	}
	return line, nil
}

// RemoveByKey deletes a line and its drafts. The store never ends up empty:
// removing the last line leaves exactly one blank line.
func (s *Store) RemoveByKey(key string) bool {
	if !s.lines.Remove(key) {
		return false
	}
	s.drafts.ClearLine(key)
	if s.lines.Len() == 0 {
		s.InsertBlank()
	}
	return true
}

// ReplaceAll swaps the whole collection and clears every draft, since old
// keys are gone.
func (s *Store) ReplaceAll(lines []model.CorrectionLine) {
	s.lines.Reset()
	s.drafts.Reset()
	for _, l := range lines {
		if l.Key == "" {
			l.Key = s.newKey()
		}
		s.lines.Append(l.Key, l)
	}
	if s.lines.Len() == 0 {
		s.InsertBlank()
	}
}

// update applies fn to the line stored under key and recomputes it.
func (s *Store) update(key string, fn func(*model.CorrectionLine)) (model.CorrectionLine, bool) {
	line, ok := s.lines.Get(key)
	if !ok {
		return model.CorrectionLine{}, false
	}
	fn(&line)
	line = Recompute(line)
	s.lines.Set(key, line)
	return line, true
}
