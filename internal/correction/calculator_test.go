package correction

import (
	"math"
	"testing"

	"go-warehouse-ops/internal/model"

	"github.com/stretchr/testify/require"
)

func TestRecompute(t *testing.T) {
	tests := []struct {
		name          string
		system, price float64
		physical      float64
		wantQty       float64
		wantValuation float64
	}{
		{"nothing counted", 10, 1500, 0, -10, -15000},
		{"exact match", 10, 1500, 10, 0, 0},
		{"surplus", 10, 1500, 12, 2, 3000},
		{"zero price shortage", 5, 0, 3, -2, 0},
		{"fractional", 2.5, 100, 1, -1.5, -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recompute(model.CorrectionLine{SystemQty: tt.system, UnitPrice: tt.price, PhysicalQty: tt.physical})
			require.Equal(t, tt.wantQty, got.CorrectionQty)
			require.Equal(t, tt.wantValuation, got.Valuation)
			requireReconciled(t, got)
		})
	}
}

func TestRecomputeNoNegativeZero(t *testing.T) {
	// 0 * negative price and -0 inputs must both come out as +0
	got := Recompute(model.CorrectionLine{SystemQty: 0, PhysicalQty: math.Copysign(0, -1), UnitPrice: -5})
	require.False(t, math.Signbit(got.CorrectionQty))
	require.False(t, math.Signbit(got.Valuation))

	got = Recompute(model.CorrectionLine{SystemQty: 10, PhysicalQty: 10, UnitPrice: 1500})
	require.False(t, math.Signbit(got.Valuation))
}

func TestRecomputeNormalizesNonFinite(t *testing.T) {
	got := Recompute(model.CorrectionLine{SystemQty: math.NaN(), PhysicalQty: 3, UnitPrice: math.Inf(1)})
	require.Equal(t, 0.0, got.SystemQty)
	require.Equal(t, 0.0, got.UnitPrice)
	require.Equal(t, 3.0, got.CorrectionQty)
	require.Equal(t, 0.0, got.Valuation)
}
