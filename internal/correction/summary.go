package correction

import (
	"go-warehouse-ops/internal/model"

	"github.com/shopspring/decimal"
)

// Summary aggregates the filled lines of a form.
type Summary struct {
	Lines             int             `json:"lines"`
	Counted           int             `json:"counted"`
	Uncounted         int             `json:"uncounted"`
	Surplus           int             `json:"surplus"`
	Shortage          int             `json:"shortage"`
	Match             int             `json:"match"`
	TotalValuation    decimal.Decimal `json:"total_valuation"`
	SurplusValuation  decimal.Decimal `json:"surplus_valuation"`
	ShortageValuation decimal.Decimal `json:"shortage_valuation"`
}

// Summarize sums valuations in decimal so the total does not drift the way a
// running float sum does. Blank lines are ignored.
func Summarize(lines []model.CorrectionLine) Summary {
	s := Summary{
		TotalValuation:    decimal.Zero,
		SurplusValuation:  decimal.Zero,
		ShortageValuation: decimal.Zero,
	}
	for _, l := range lines {
		if l.IsBlank() {
			continue
		}
		s.Lines++
		if l.Counted {
			s.Counted++
		} else {
			s.Uncounted++
		}

		v := decimal.NewFromFloat(l.Valuation)
		s.TotalValuation = s.TotalValuation.Add(v)
		switch {
		case l.CorrectionQty > 0:
			s.Surplus++
			s.SurplusValuation = s.SurplusValuation.Add(v)
		case l.CorrectionQty < 0:
			s.Shortage++
			s.ShortageValuation = s.ShortageValuation.Add(v.Abs())
		default:
			s.Match++
		}
	}
	return s
}

// Labels lists the QR labels of every filled line.
func Labels(lines []model.CorrectionLine) ([]model.BarcodeLabel, error) {
	labels := make([]model.BarcodeLabel, 0, len(lines))
	for _, l := range lines {
		if l.IsBlank() {
			continue
		}
		labels = append(labels, model.BarcodeLabel{
			Key:     l.Key,
			Name:    l.Name,
			QRValue: l.SKU,
			Length:  l.Length,
			Width:   l.Width,
		})
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return labels, nil
}
