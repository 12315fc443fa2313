// Package numeric coerces loosely typed quantities into finite float64 values.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize converts v to a finite number. Anything that does not parse to a
// finite value (empty text, garbage, NaN, ±Inf, nil) becomes 0.
func Normalize(v any) float64 {
	var n float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint:
		n = float64(x)
	case uint32:
		n = float64(x)
	case uint64:
		n = float64(x)
	case bool:
		if x {
			n = 1
		}
	case json.Number:
		return Normalize(string(x))
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	case *float64:
		if x == nil {
			return 0
		}
		n = *x
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return FixNegativeZero(n)
}

// FixNegativeZero maps -0 to +0 and leaves every other value alone.
func FixNegativeZero(n float64) float64 {
	if n == 0 {
		return 0
	}
	return n
}

// Format renders n the way a numeric text field shows it: shortest
// representation, no exponent, no trailing zeros.
func Format(n float64) string {
	return strconv.FormatFloat(FixNegativeZero(n), 'f', -1, 64)
}
