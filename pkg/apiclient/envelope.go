package apiclient

import (
	"bytes"
	"encoding/json"
)

// PickArray unwraps a list response. The upstream is inconsistent, so this
// accepts {"data":[...]}, a bare array and {"data":{"data":[...]}} in that
// order. Anything else is an empty list.
func PickArray(body []byte) []json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	hasEnv := json.Unmarshal(body, &env) == nil

	if hasEnv {
		if arr, ok := asArray(env.Data); ok {
			return arr
		}
	}
	if arr, ok := asArray(body); ok {
		return arr
	}
	if hasEnv && len(env.Data) > 0 {
		var inner struct {
			Data json.RawMessage `json:"data"`
		}
		if json.Unmarshal(env.Data, &inner) == nil {
			if arr, ok := asArray(inner.Data); ok {
				return arr
			}
		}
	}
	return nil
}

// PickObject unwraps a single-object response: {"data":{...}}, else
// {"data":{"data":{...}}}, else the bare object.
func PickObject(body []byte) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(body, &env) == nil && len(env.Data) > 0 {
		if !isObject(env.Data) {
			// data present but null or not an object
			return nil
		}
		var inner struct {
			Data json.RawMessage `json:"data"`
		}
		if json.Unmarshal(env.Data, &inner) == nil && isObject(inner.Data) {
			return inner.Data
		}
		return env.Data
	}
	if isObject(body) {
		return body
	}
	return nil
}

// DecodeArray unwraps a list response and decodes each element, skipping
// elements that do not decode into T.
func DecodeArray[T any](body []byte) []T {
	raw := PickArray(body)
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
