package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/realization"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/internal/ws"
	"go-warehouse-ops/pkg/lock"
	"go-warehouse-ops/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RealizationConfig struct {
	DefaultWarehouseCode      string
	DefaultWarehouseName      string
	DefaultProductionLocation string
}

type SheetView struct {
	ID string `json:"id"`
	realization.View
}

type RealizationService interface {
	OpenSheet(sess Session) SheetView
	GetSheet(sess Session, id string) (SheetView, error)
	CloseSheet(sess Session, id string) error
	UpdateHeader(sess Session, id string, header model.RealizationHeader) (SheetView, error)
	// Scan resolves a barcode into a line. An empty rowKey targets the first
	// line without a barcode.
	Scan(sess Session, id, rowKey, barcode string) (SheetView, error)
	UpdateLine(sess Session, id, key, note, operator string) (SheetView, error)
	RemoveLine(sess Session, id, key string) (SheetView, error)
	Save(sess Session, id string) (int, error)
	EvictIdle(ttl time.Duration) int
}

type realizationSession struct {
	mu      sync.Mutex
	owner   string
	sheet   *realization.Sheet
	touched time.Time
}

type realizationService struct {
	mu     sync.Mutex
	sheets map[string]*realizationSession

	repo     repository.RealizationRepository
	lookup   LookupService
	journal  JournalService
	guard    lock.Guard
	notifier Notifier
	log      *logrus.Logger
	cfg      RealizationConfig
	now      func() time.Time
}

func NewRealizationService(
	repo repository.RealizationRepository,
	lookup LookupService,
	journal JournalService,
	guard lock.Guard,
	notifier Notifier,
	log *logrus.Logger,
	cfg RealizationConfig,
) RealizationService {
	return &realizationService{
		sheets:   map[string]*realizationSession{},
		repo:     repo,
		lookup:   lookup,
		journal:  journal,
		guard:    guard,
		notifier: notifier,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *realizationService) OpenSheet(sess Session) SheetView {
	id := uuid.NewString()
	header := realization.DefaultHeader(s.now(), s.cfg.DefaultWarehouseCode, s.cfg.DefaultWarehouseName, s.cfg.DefaultProductionLocation)
	if name, ok := s.lookup.WarehouseName(sess, header.ProductionLocationCode); ok {
		header.ProductionLocationName = name
	}
	rs := &realizationSession{owner: sess.Username, sheet: realization.NewSheet(header), touched: s.now()}

	s.mu.Lock()
	s.sheets[id] = rs
	s.mu.Unlock()

	return SheetView{ID: id, View: rs.sheet.View()}
}

func (s *realizationService) session(sess Session, id string) (*realizationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.sheets[id]
	if !ok || rs.owner != sess.Username {
		return nil, ErrFormNotFound
	}
	rs.touched = s.now()
	return rs, nil
}

// EvictIdle drops sheets left untouched for longer than ttl.
func (s *realizationService) EvictIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, rs := range s.sheets {
		if !rs.touched.Before(cutoff) || !rs.mu.TryLock() {
			continue
		}
		delete(s.sheets, id)
		rs.mu.Unlock()
		evicted++
	}
	if evicted > 0 {
		s.log.WithFields(logrus.Fields{"evicted": evicted, "open": len(s.sheets)}).Info("idle realization sheets evicted")
	}
	return evicted
}

func (s *realizationService) withSheet(sess Session, id string, fn func(sh *realization.Sheet) error) (SheetView, error) {
	rs, err := s.session(sess, id)
	if err != nil {
		return SheetView{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := fn(rs.sheet); err != nil {
		return SheetView{}, err
	}
	return SheetView{ID: id, View: rs.sheet.View()}, nil
}

func (s *realizationService) GetSheet(sess Session, id string) (SheetView, error) {
	return s.withSheet(sess, id, func(*realization.Sheet) error { return nil })
}

func (s *realizationService) CloseSheet(sess Session, id string) error {
	if _, err := s.session(sess, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sheets, id)
	s.mu.Unlock()
	return nil
}

func (s *realizationService) UpdateHeader(sess Session, id string, header model.RealizationHeader) (SheetView, error) {
	return s.withSheet(sess, id, func(sh *realization.Sheet) error {
		header.WarehouseCode = strings.TrimSpace(header.WarehouseCode)
		header.ProductionLocationCode = strings.TrimSpace(header.ProductionLocationCode)
		if strings.TrimSpace(header.Number) == "" {
			header.Number = sh.Header.Number
		}
		if strings.TrimSpace(header.Date) == "" {
			header.Date = sh.Header.Date
		}
		if name, ok := s.lookup.WarehouseName(sess, header.WarehouseCode); ok {
			header.WarehouseName = name
		}
		if name, ok := s.lookup.WarehouseName(sess, header.ProductionLocationCode); ok {
			header.ProductionLocationName = name
		}
		sh.Header = header
		return nil
	})
}

// Scan checks the barcode locally, resolves it upstream without holding the
// sheet, then applies it. The apply step repeats the duplicate check since
// another scan may have filled the same barcode meanwhile.
func (s *realizationService) Scan(sess Session, id, rowKey, barcode string) (SheetView, error) {
	rs, err := s.session(sess, id)
	if err != nil {
		return SheetView{}, err
	}

	rs.mu.Lock()
	if strings.TrimSpace(rowKey) == "" {
		rowKey = rs.sheet.AutoTarget()
	}
	bc, err := rs.sheet.CheckScan(rowKey, barcode)
	warehouse := rs.sheet.Header.WarehouseCode
	rs.mu.Unlock()
	if err != nil {
		return SheetView{}, err
	}

	stock, err := s.repo.FindBarcodeStock(sess.Token, bc, warehouse)
	if err != nil {
		logger.LogError(s.log, "realization", "Scan", "stok-barcode", map[string]string{"barcode": bc, "gudang": warehouse}, err)
		if errors.Is(err, repository.ErrBarcodeNotFound) {
			return SheetView{}, &UpstreamError{Op: "scan_barcode", Message: "Data barcode tidak ditemukan.", Err: err}
		}
		return SheetView{}, upstreamError("scan_barcode", "", err, "Gagal mengambil data barcode")
	}

	return s.withSheet(sess, id, func(sh *realization.Sheet) error {
		_, err := sh.ApplyScan(rowKey, bc, *stock)
		return err
	})
}

func (s *realizationService) UpdateLine(sess Session, id, key, note, operator string) (SheetView, error) {
	return s.withSheet(sess, id, func(sh *realization.Sheet) error {
		_, err := sh.SetNotes(key, note, operator)
		return err
	})
}

func (s *realizationService) RemoveLine(sess Session, id, key string) (SheetView, error) {
	return s.withSheet(sess, id, func(sh *realization.Sheet) error {
		if !sh.RemoveByKey(key) {
			return realization.ErrLineNotFound
		}
		return nil
	})
}

// Save posts the sheet and closes it. It returns the number of barcodes saved.
func (s *realizationService) Save(sess Session, id string) (int, error) {
	rs, err := s.session(sess, id)
	if err != nil {
		return 0, err
	}

	release, err := s.guard.Acquire(context.Background(), "realization:"+id)
	if err != nil {
		return 0, err
	}
	defer release()

	rs.mu.Lock()
	defer rs.mu.Unlock()

	payload, err := rs.sheet.Payload(sess.Username)
	if err != nil {
		return 0, err
	}

	totalQty := decimal.Zero
	for _, d := range payload.Details {
		totalQty = totalQty.Add(decimal.NewFromFloat(d.Qty))
	}
	entry := model.SubmissionLog{
		Kind:          model.SubmissionRealizationSave,
		DocumentNo:    payload.Header.Number,
		WarehouseCode: payload.Header.WarehouseCode,
		Lines:         len(payload.Details),
		TotalValue:    totalQty,
	}
	entry.CreatedBy = sess.Username

	if err := s.repo.Create(sess.Token, payload); err != nil {
		logger.LogError(s.log, "realization", "Save", "permintaan-produksi", map[string]interface{}{"sheet": id, "lines": len(payload.Details)}, err)
		uerr := upstreamError("save_realization", "", err, "Terjadi kesalahan saat menyimpan.")
		entry.Message = uerr.Message
		s.journal.Record(entry)
		return 0, uerr
	}

	entry.Success = true
	s.journal.Record(entry)

	s.mu.Lock()
	delete(s.sheets, id)
	s.mu.Unlock()

	s.notifier.Notify(ws.EventRealizationSaved, map[string]interface{}{
		"warehouse_code":      payload.Header.WarehouseCode,
		"production_location": payload.Header.ProductionLocation,
		"barcodes":            len(payload.Details),
		"user":                sess.Username,
	})
	return len(payload.Details), nil
}
