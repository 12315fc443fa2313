package correction

import (
	"strings"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/numeric"
)

// ImportResult is the outcome of loading a warehouse's full stock list.
type ImportResult struct {
	Lines             []model.CorrectionLine `json:"lines"`
	Imported          int                    `json:"imported"`
	SkippedBlank      int                    `json:"skipped_blank"`
	SkippedDuplicates []string               `json:"skipped_duplicates,omitempty"`
}

// MergeFromWarehouse maps stock records to baseline correction lines: System
// from the record, Fisik 0, Qty = -System. One blank line is appended for
// manual additions. Lines get synthetic keys; a SKU seen again is skipped
// rather than overwriting the earlier line. No usable record yields
// ErrNoStockData.
func MergeFromWarehouse(records []model.StockRecord, newKey func() string) (ImportResult, error) {
	if newKey == nil {
		newKey = NewKey
	}

	var res ImportResult
	seen := make(map[string]bool, len(records))
	lines := make([]model.CorrectionLine, 0, len(records)+1)

	for _, rec := range records {
		sku := strings.TrimSpace(rec.Code)
		if sku == "" {
			res.SkippedBlank++
			continue
		}
		if seen[sku] {
			res.SkippedDuplicates = append(res.SkippedDuplicates, sku)
			continue
		}
		seen[sku] = true

		lines = append(lines, Recompute(model.CorrectionLine{
			Key:         newKey(),
			SKU:         sku,
			Name:        rec.Name,
			Unit:        rec.Unit,
			Length:      numeric.Normalize(rec.Length),
			Width:       numeric.Normalize(rec.Width),
			SystemQty:   numeric.Normalize(rec.Stock),
			UnitPrice:   numeric.Normalize(rec.PurchasePrice),
			PhysicalQty: 0,
		}))
	}

	if len(lines) == 0 {
		return res, ErrNoStockData
	}

	res.Imported = len(lines)
	// sisipkan satu baris kosong di akhir untuk input manual
	res.Lines = append(lines, blankLine(newKey()))
	return res, nil
}
