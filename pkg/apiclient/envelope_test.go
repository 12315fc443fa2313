package apiclient

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickArray(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"data array", `{"data":[{"Kode":"A"},{"Kode":"B"}]}`, 2},
		{"bare array", `[{"Kode":"A"}]`, 1},
		{"nested data", `{"data":{"data":[{"Kode":"A"},{"Kode":"B"},{"Kode":"C"}]}}`, 3},
		{"object", `{"data":{"Kode":"A"}}`, 0},
		{"garbage", `not json`, 0},
		{"null data", `{"data":null}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, PickArray([]byte(tt.body)), tt.want)
		})
	}
}

func TestPickObject(t *testing.T) {
	require.JSONEq(t, `{"Kode":"A"}`, string(PickObject([]byte(`{"data":{"Kode":"A"}}`))))
	require.JSONEq(t, `{"Kode":"B"}`, string(PickObject([]byte(`{"data":{"data":{"Kode":"B"}}}`))))
	require.JSONEq(t, `{"Kode":"C"}`, string(PickObject([]byte(`{"Kode":"C"}`))))
	require.Nil(t, PickObject([]byte(`[]`)))
	require.Nil(t, PickObject([]byte(`{"data":null}`)))
}

func TestDecodeArrayWithFlexibleScalars(t *testing.T) {
	type item struct {
		Kode Text   `json:"Kode"`
		Stok Number `json:"Stok"`
	}
	body := []byte(`{"data":[{"Kode":" A ","Stok":"12.5"},{"Kode":7,"Stok":null},{"Kode":"C","Stok":"abc"},{"Kode":"D","Stok":true}]}`)
	got := DecodeArray[item](body)
	require.Len(t, got, 4)
	require.Equal(t, "A", got[0].Kode.String())
	require.Equal(t, 12.5, got[0].Stok.Float())
	require.Equal(t, "7", got[1].Kode.String())
	require.Equal(t, 0.0, got[1].Stok.Float())
	require.Equal(t, 0.0, got[2].Stok.Float())
	require.Equal(t, 1.0, got[3].Stok.Float())
}

func TestNumberNegativeZero(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`-0`), &n))
	require.Equal(t, 0.0, n.Float())
	require.False(t, math.Signbit(n.Float()))
}
