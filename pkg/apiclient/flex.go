package apiclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go-warehouse-ops/pkg/numeric"
)

// Number accepts a JSON number, a numeric string, a bool or null. Anything
// that is not a finite number decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(numeric.Normalize(v))
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

// Text accepts a JSON string, number or null and keeps it as trimmed text.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*t = ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
	case trimmed[0] == 't' || trimmed[0] == 'f':
		b, _ := strconv.ParseBool(string(trimmed))
		*t = Text(strconv.FormatBool(b))
	default:
		*t = Text(string(trimmed))
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
