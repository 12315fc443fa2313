package correction

import (
	"fmt"
	"strings"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/numeric"
)

// Form is one open stock correction: header, lines and the drafts of the
// inputs being typed. A Form is single-threaded; callers serialize access.
type Form struct {
	Header model.CorrectionHeader

	store  *Store
	drafts *DraftBuffer
}

// NewForm starts a form with one blank line.
func NewForm(header model.CorrectionHeader) *Form {
	drafts := NewDraftBuffer()
	f := &Form{
		Header: header,
		store:  NewStore(drafts),
		drafts: drafts,
	}
	f.store.InsertBlank()
	return f
}

func (f *Form) Store() *Store {
	return f.store
}

func (f *Form) Drafts() *DraftBuffer {
	return f.drafts
}

func (f *Form) mustLine(key string) (model.CorrectionLine, error) {
	line, ok := f.store.Line(key)
	if !ok {
		return model.CorrectionLine{}, fmt.Errorf("%w: %s", ErrLineNotFound, key)
	}
	return line, nil
}

func committedValue(line model.CorrectionLine, field Field) float64 {
	switch field {
	case FieldLength:
		return line.Length
	case FieldWidth:
		return line.Width
	default:
		return line.PhysicalQty
	}
}

// Stage buffers raw text for an input without touching the line.
func (f *Form) Stage(key string, field Field, raw string) error {
	if _, err := f.mustLine(key); err != nil {
		return err
	}
	f.drafts.Stage(key, field, raw)
	return nil
}

// Commit writes raw into the line and recomputes it. Empty text commits 0; for
// Fisik it also marks the line as not counted. The draft is cleared unless
// keep is set.
func (f *Form) Commit(key string, field Field, raw string, keep bool) (model.CorrectionLine, error) {
	if _, err := f.mustLine(key); err != nil {
		return model.CorrectionLine{}, err
	}

	trimmed := strings.TrimSpace(raw)
	val := 0.0
	if trimmed != "" {
		val = numeric.Normalize(trimmed)
	}

	line, _ := f.store.update(key, func(l *model.CorrectionLine) {
		switch field {
		case FieldLength:
			l.Length = val
		case FieldWidth:
			l.Width = val
		default:
			l.PhysicalQty = val
			l.Counted = trimmed != ""
		}
	})

	if !keep {
		f.drafts.Clear(key, field)
	}
	return line, nil
}

// Adjust is the +/- stepper: it adds delta to the draft when one exists (so
// rapid taps compose with what is being typed), otherwise to the committed
// value, then commits while keeping the draft.
func (f *Form) Adjust(key string, field Field, delta float64) (model.CorrectionLine, error) {
	line, err := f.mustLine(key)
	if err != nil {
		return model.CorrectionLine{}, err
	}

	base := committedValue(line, field)
	if raw, ok := f.drafts.Get(key, field); ok {
		base = numeric.Normalize(raw)
	}
	next := numeric.Format(base + numeric.Normalize(delta))

	f.drafts.Stage(key, field, next)
	return f.Commit(key, field, next, true)
}

// DisplayValue is the text an input shows: the draft when present, else the
// committed number.
func (f *Form) DisplayValue(key string, field Field) (string, error) {
	line, err := f.mustLine(key)
	if err != nil {
		return "", err
	}
	if raw, ok := f.drafts.Get(key, field); ok {
		return raw, nil
	}
	return numeric.Format(committedValue(line, field)), nil
}

// ImportStock replaces every line with the warehouse stock baseline. On
// ErrNoStockData the form is left as it was.
func (f *Form) ImportStock(records []model.StockRecord) (ImportResult, error) {
	res, err := MergeFromWarehouse(records, f.store.newKey)
	if err != nil {
		return res, err
	}
	f.store.ReplaceAll(res.Lines)
	return res, nil
}

// Pick fills a line from a chosen stock record. A nil index targets the first
// editable line; a blank line appended for that is dropped again when the
// record is rejected.
func (f *Form) Pick(index *int, rec model.StockRecord) (model.CorrectionLine, error) {
	if index != nil {
		return f.store.ApplyItemToIndex(*index, rec)
	}

	before := f.store.Len()
	idx := f.store.FindEditableIndex()
	line, err := f.store.ApplyItemToIndex(idx, rec)
	if err != nil && f.store.Len() > before {
		f.store.RemoveByKey(f.store.Lines()[idx].Key)
	}
	return line, err
}

// Payload builds the document to save from the current state.
func (f *Form) Payload() (model.CorrectionPayload, error) {
	return BuildPayload(f.Header, f.store.Lines())
}

// LineView is a line with the text its inputs currently show.
type LineView struct {
	model.CorrectionLine
	Display map[Field]string `json:"display"`
}

// View is the full state of a form as a client renders it.
type View struct {
	Header   model.CorrectionHeader `json:"header"`
	TypeName string                 `json:"type_name"`
	Lines    []LineView             `json:"lines"`
	Summary  Summary                `json:"summary"`
}

func (f *Form) View() View {
	lines := f.store.Lines()
	views := make([]LineView, 0, len(lines))
	for _, l := range lines {
		display := make(map[Field]string, 3)
		for _, field := range []Field{FieldPhysical, FieldLength, FieldWidth} {
			display[field], _ = f.DisplayValue(l.Key, field)
		}
		views = append(views, LineView{CorrectionLine: l, Display: display})
	}
	return View{
		Header:   f.Header,
		TypeName: model.CorrectionTypeName(f.Header.TypeCode),
		Lines:    views,
		Summary:  Summarize(lines),
	}
}
