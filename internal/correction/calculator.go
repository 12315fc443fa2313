package correction

import (
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/numeric"
)

// Recompute derives CorrectionQty (Fisik - System) and Valuation (Qty * Harga).
// Inputs are normalized first and neither result is ever -0.
func Recompute(line model.CorrectionLine) model.CorrectionLine {
	line.PhysicalQty = numeric.Normalize(line.PhysicalQty)
	line.SystemQty = numeric.Normalize(line.SystemQty)
	line.UnitPrice = numeric.Normalize(line.UnitPrice)

	qty := numeric.FixNegativeZero(line.PhysicalQty - line.SystemQty)
	line.CorrectionQty = qty
	line.Valuation = numeric.FixNegativeZero(qty * line.UnitPrice)
	return line
}
