// Package realization holds the production realization (realisasi produksi)
// scan sheet: one line per scanned barcode, always ending in an open line for
// the next scan.
package realization

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/rows"
	"go-warehouse-ops/pkg/validator"

	"github.com/google/uuid"
)

const DateLayout = "02/01/2006"

var (
	ErrBlankBarcode     = errors.New("barcode is empty")
	ErrNoWarehouse      = errors.New("source warehouse must be selected before scanning")
	ErrDuplicateBarcode = errors.New("barcode is already used")
	ErrLineNotFound     = errors.New("line not found")
	ErrIncompleteHeader = errors.New("header is incomplete")
	ErrNoScannedLines   = errors.New("at least one barcode must be scanned")
)

func IsValidation(err error) bool {
	for _, target := range []error{ErrBlankBarcode, ErrNoWarehouse, ErrDuplicateBarcode, ErrLineNotFound, ErrIncompleteHeader, ErrNoScannedLines} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// DefaultHeader is a new sheet's header for the given date.
func DefaultHeader(now time.Time, warehouseCode, warehouseName, location string) model.RealizationHeader {
	return model.RealizationHeader{
		Number:                 "AUTO",
		Date:                   now.Format(DateLayout),
		WarehouseCode:          warehouseCode,
		WarehouseName:          warehouseName,
		ProductionLocationCode: location,
	}
}

// Sheet is not safe for concurrent use.
type Sheet struct {
	Header model.RealizationHeader

	lines  *rows.List[model.RealizationLine]
	newKey func() string
}

func NewSheet(header model.RealizationHeader) *Sheet {
	s := &Sheet{
		Header: header,
		lines:  rows.New[model.RealizationLine](),
		newKey: func() string { return "row_" + uuid.NewString() },
	}
	s.appendBlank()
	return s
}

func (s *Sheet) appendBlank() model.RealizationLine {
	line := model.RealizationLine{Key: s.newKey()}
	s.lines.Append(line.Key, line)
	return line
}

func (s *Sheet) Lines() []model.RealizationLine {
	return s.lines.Values()
}

func (s *Sheet) Line(key string) (model.RealizationLine, bool) {
	return s.lines.Get(key)
}

// ScannedCount is the number of lines holding a barcode.
func (s *Sheet) ScannedCount() int {
	n := 0
	for _, l := range s.lines.Values() {
		if l.HasBarcode() {
			n++
		}
	}
	return n
}

// AutoTarget picks the line a hardware-scanner read goes to: the first line
// without a barcode, else the last line.
func (s *Sheet) AutoTarget() string {
	if _, key := s.lines.FindFirst(func(l model.RealizationLine) bool { return !l.HasBarcode() }); key != "" {
		return key
	}
	key, _, _ := s.lines.At(s.lines.Len() - 1)
	return key
}

// CheckScan validates a scan before the barcode is resolved upstream and
// returns the trimmed barcode.
func (s *Sheet) CheckScan(key, barcode string) (string, error) {
	bc := strings.TrimSpace(barcode)
	if bc == "" {
		return "", ErrBlankBarcode
	}
	if strings.TrimSpace(s.Header.WarehouseCode) == "" {
		return "", ErrNoWarehouse
	}
	if !s.lines.Has(key) {
		return "", fmt.Errorf("%w: %s", ErrLineNotFound, key)
	}
	if s.barcodeUsedElsewhere(key, bc) {
		return "", fmt.Errorf("%w: Barcode %s sudah digunakan", ErrDuplicateBarcode, bc)
	}
	return bc, nil
}

func (s *Sheet) barcodeUsedElsewhere(key, bc string) bool {
	idx, _ := s.lines.FindFirst(func(l model.RealizationLine) bool {
		return l.Key != key && strings.TrimSpace(l.Barcode) == bc
	})
	return idx >= 0
}

// NormalizeSPK maps an absent work order ("" or "0") to "".
func NormalizeSPK(raw string) string {
	spk := strings.TrimSpace(raw)
	if spk == "0" {
		return ""
	}
	return spk
}

// ApplyScan writes a resolved barcode into the line and keeps one open line at
// the end. The duplicate check is repeated because another scan may have
// landed while the lookup was in flight.
func (s *Sheet) ApplyScan(key, scanned string, stock model.BarcodeStock) (model.RealizationLine, error) {
	line, ok := s.lines.Get(key)
	if !ok {
		return model.RealizationLine{}, fmt.Errorf("%w: %s", ErrLineNotFound, key)
	}

	bc := strings.TrimSpace(stock.Barcode)
	if bc == "" {
		bc = strings.TrimSpace(scanned)
	}
	if s.barcodeUsedElsewhere(key, bc) {
		return model.RealizationLine{}, fmt.Errorf("%w: Barcode %s sudah digunakan", ErrDuplicateBarcode, bc)
	}

	line.Barcode = bc
	line.SKU = stock.SKU
	line.Name = stock.Name
	line.Unit = stock.Unit
	line.Length = stock.Length
	line.Width = stock.Width
	line.Qty = 1
	line.Stock = stock.Stock
	line.SPK = NormalizeSPK(stock.SPK)
	s.lines.Set(key, line)

	s.ensureTrailingBlank()
	return line, nil
}

func (s *Sheet) ensureTrailingBlank() {
	_, last, ok := s.lines.At(s.lines.Len() - 1)
	if !ok {
		s.appendBlank()
		return
	}
	if last.HasBarcode() || strings.TrimSpace(last.SKU) != "" {
		s.appendBlank()
	}
}

// SetNotes updates the free-text fields of a line.
func (s *Sheet) SetNotes(key, note, operator string) (model.RealizationLine, error) {
	line, ok := s.lines.Get(key)
	if !ok {
		return model.RealizationLine{}, fmt.Errorf("%w: %s", ErrLineNotFound, key)
	}
	line.Note = note
	line.Operator = operator
	s.lines.Set(key, line)
	return line, nil
}

// RemoveByKey deletes a line; an emptied sheet gets one blank line back.
func (s *Sheet) RemoveByKey(key string) bool {
	if !s.lines.Remove(key) {
		return false
	}
	if s.lines.Len() == 0 {
		s.appendBlank()
	}
	return true
}

// Payload builds the save request. Both header locations and at least one
// scanned line are required.
func (s *Sheet) Payload(user string) (model.RealizationPayload, error) {
	if err := validator.FirstError(validator.ValidateStruct(s.Header)); err != nil {
		return model.RealizationPayload{}, fmt.Errorf("%w: %v", ErrIncompleteHeader, err)
	}

	var details []model.RealizationPayloadDetail
	for _, l := range s.lines.Values() {
		if !l.HasBarcode() {
			continue
		}
		spk := l.SPK
		if spk == "" {
			spk = "0"
		}
		details = append(details, model.RealizationPayloadDetail{
			SKU:     l.SKU,
			Barcode: l.Barcode,
			Qty:     1,
			Unit:    l.Unit,
			SPK:     spk,
			Note:    l.Note,
		})
	}
	if len(details) == 0 {
		return model.RealizationPayload{}, ErrNoScannedLines
	}

	if strings.TrimSpace(user) == "" {
		user = "Admin"
	}
	return model.RealizationPayload{
		Header: model.RealizationPayloadHeader{
			Number:             s.Header.Number,
			Date:               s.Header.Date,
			WarehouseCode:      s.Header.WarehouseCode,
			ProductionLocation: s.Header.ProductionLocationCode,
			Note:               s.Header.Note,
			UserCreate:         user,
		},
		Details:    details,
		IsEditMode: false,
	}, nil
}

// View is the sheet as a client renders it.
type View struct {
	Header  model.RealizationHeader `json:"header"`
	Lines   []model.RealizationLine `json:"lines"`
	Scanned int                     `json:"scanned"`
	Target  string                  `json:"target"`
	Valid   bool                    `json:"valid"`
}

func (s *Sheet) View() View {
	_, err := s.Payload("")
	return View{
		Header:  s.Header,
		Lines:   s.Lines(),
		Scanned: s.ScannedCount(),
		Target:  s.AutoTarget(),
		Valid:   err == nil,
	}
}
