package correction

import (
	"fmt"
	"strings"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/validator"
)

// BuildPayload assembles the document to save: the header plus every line
// that has a SKU, in display order, without row keys. It fails before any
// network call when the header lacks a warehouse or correction type, or when
// no line is filled.
func BuildPayload(header model.CorrectionHeader, lines []model.CorrectionLine) (model.CorrectionPayload, error) {
	if err := validator.FirstError(validator.ValidateStruct(header)); err != nil {
		return model.CorrectionPayload{}, fmt.Errorf("%w: %v", ErrIncompleteHeader, err)
	}

	details := make([]model.CorrectionDetail, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.SKU) == "" {
			continue
		}
		details = append(details, model.CorrectionDetail{
			SKU:           l.SKU,
			Name:          l.Name,
			Unit:          l.Unit,
			Length:        l.Length,
			Width:         l.Width,
			Expired:       l.Expired,
			SystemQty:     l.SystemQty,
			PhysicalQty:   l.PhysicalQty,
			CorrectionQty: l.CorrectionQty,
			UnitPrice:     l.UnitPrice,
			Valuation:     l.Valuation,
		})
	}
	if len(details) == 0 {
		return model.CorrectionPayload{}, ErrEmptyDetails
	}

	return model.CorrectionPayload{
		Header: model.CorrectionPayloadHeader{
			CorrectionHeader: header,
			TypeName:         model.CorrectionTypeName(header.TypeCode),
		},
		Details: details,
	}, nil
}
