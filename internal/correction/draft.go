package correction

import (
	"fmt"
)

// Field is a numeric input of a line that can hold in-progress text.
type Field string

const (
	FieldPhysical Field = "physical_qty"
	FieldLength   Field = "length"
	FieldWidth    Field = "width"
)

func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldPhysical, FieldLength, FieldWidth:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

type draftKey struct {
	line  string
	field Field
}

// DraftBuffer stages raw text per (line, field) until it is committed.
// It belongs to one form; nothing here is shared between forms.
type DraftBuffer struct {
	entries map[draftKey]string
}

func NewDraftBuffer() *DraftBuffer {
	return &DraftBuffer{entries: make(map[draftKey]string)}
}

// Stage records or overwrites the raw text of an input.
func (d *DraftBuffer) Stage(lineKey string, field Field, raw string) {
	d.entries[draftKey{lineKey, field}] = raw
}

func (d *DraftBuffer) Get(lineKey string, field Field) (string, bool) {
	v, ok := d.entries[draftKey{lineKey, field}]
	return v, ok
}

func (d *DraftBuffer) Clear(lineKey string, field Field) {
	delete(d.entries, draftKey{lineKey, field})
}

// ClearLine drops every draft of one line.
func (d *DraftBuffer) ClearLine(lineKey string) {
	for _, f := range []Field{FieldPhysical, FieldLength, FieldWidth} {
		delete(d.entries, draftKey{lineKey, f})
	}
}

func (d *DraftBuffer) Reset() {
	d.entries = make(map[draftKey]string)
}

func (d *DraftBuffer) Len() int {
	return len(d.entries)
}
