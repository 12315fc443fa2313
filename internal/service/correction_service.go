package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"go-warehouse-ops/internal/correction"
	"go-warehouse-ops/internal/export"
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/internal/ws"
	"go-warehouse-ops/pkg/lock"
	"go-warehouse-ops/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	isoDate             = "2006-01-02"
	defaultDocumentDays = 30
)

type CorrectionConfig struct {
	DefaultWarehouseCode string
	DefaultWarehouseName string
	PrintBaseURL         string
}

// FormView is a correction form as returned to clients.
type FormView struct {
	ID string `json:"id"`
	correction.View
}

type ImportView struct {
	FormView
	Imported          int      `json:"imported"`
	SkippedBlank      int      `json:"skipped_blank"`
	SkippedDuplicates []string `json:"skipped_duplicates,omitempty"`
}

type SaveResult struct {
	WarehouseCode string          `json:"warehouse_code"`
	Lines         int             `json:"lines"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

type DocumentQuery struct {
	StartDate string
	EndDate   string
	Days      int
}

type DocumentList struct {
	StartDate string                     `json:"start_date"`
	EndDate   string                     `json:"end_date"`
	Documents []model.CorrectionDocument `json:"documents"`
}

type CorrectionService interface {
	OpenForm(sess Session) FormView
	GetForm(sess Session, id string) (FormView, error)
	CloseForm(sess Session, id string) error
	UpdateHeader(sess Session, id string, header model.CorrectionHeader) (FormView, error)
	InsertLine(sess Session, id string) (FormView, error)
	RemoveLine(sess Session, id, key string) (FormView, error)
	SearchStock(sess Session, id, q string) ([]model.StockRecord, error)
	Pick(sess Session, id string, index *int, sku string) (FormView, error)
	ImportStock(sess Session, id string) (ImportView, error)
	Stage(sess Session, id, key string, field correction.Field, raw string) (FormView, error)
	Commit(sess Session, id, key string, field correction.Field, raw string, keep bool) (FormView, error)
	Adjust(sess Session, id, key string, field correction.Field, delta float64) (FormView, error)
	Labels(sess Session, id string) ([]model.BarcodeLabel, error)
	Export(sess Session, id string) (*bytes.Buffer, string, error)
	Save(sess Session, id string) (*SaveResult, error)
	ListDocuments(sess Session, q DocumentQuery) (*DocumentList, error)
	DeleteDocument(sess Session, number string) error
	PrintURL(number string) (string, error)
	EvictIdle(ttl time.Duration) int
}

// correctionSession is one open form. mu serializes every operation on it;
// touched is guarded by the service mutex.
type correctionSession struct {
	mu      sync.Mutex
	owner   string
	form    *correction.Form
	touched time.Time
}

type correctionService struct {
	mu    sync.Mutex
	forms map[string]*correctionSession

	stockRepo      repository.StockRepository
	correctionRepo repository.CorrectionRepository
	lookup         LookupService
	journal        JournalService
	guard          lock.Guard
	notifier       Notifier
	log            *logrus.Logger
	cfg            CorrectionConfig
	now            func() time.Time
}

func NewCorrectionService(
	stockRepo repository.StockRepository,
	correctionRepo repository.CorrectionRepository,
	lookup LookupService,
	journal JournalService,
	guard lock.Guard,
	notifier Notifier,
	log *logrus.Logger,
	cfg CorrectionConfig,
) CorrectionService {
	return &correctionService{
		forms:          map[string]*correctionSession{},
		stockRepo:      stockRepo,
		correctionRepo: correctionRepo,
		lookup:         lookup,
		journal:        journal,
		guard:          guard,
		notifier:       notifier,
		log:            log,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *correctionService) defaultHeader() model.CorrectionHeader {
	return model.CorrectionHeader{
		Number:        "AUTO",
		Date:          s.now().Format(isoDate),
		WarehouseCode: s.cfg.DefaultWarehouseCode,
		WarehouseName: s.cfg.DefaultWarehouseName,
		TypeCode:      model.CorrectionReceive,
	}
}

func (s *correctionService) OpenForm(sess Session) FormView {
	id := uuid.NewString()
	cs := &correctionSession{
		owner:   sess.Username,
		form:    correction.NewForm(s.defaultHeader()),
		touched: s.now(),
	}

	s.mu.Lock()
	s.forms[id] = cs
	s.mu.Unlock()

	return FormView{ID: id, View: cs.form.View()}
}

// session finds an open form of the caller and marks it as used. Forms of
// other users are reported as missing.
func (s *correctionService) session(sess Session, id string) (*correctionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.forms[id]
	if !ok || cs.owner != sess.Username {
		return nil, ErrFormNotFound
	}
	cs.touched = s.now()
	return cs, nil
}

// withForm runs fn on the form under its lock and returns the resulting view.
func (s *correctionService) withForm(sess Session, id string, fn func(f *correction.Form) error) (FormView, error) {
	cs, err := s.session(sess, id)
	if err != nil {
		return FormView{}, err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := fn(cs.form); err != nil {
		return FormView{}, err
	}
	return FormView{ID: id, View: cs.form.View()}, nil
}

// EvictIdle drops forms not used for longer than ttl. A form with an
// operation in flight is kept.
func (s *correctionService) EvictIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, cs := range s.forms {
		if !cs.touched.Before(cutoff) || !cs.mu.TryLock() {
			continue
		}
		delete(s.forms, id)
		cs.mu.Unlock()
		evicted++
	}
	if evicted > 0 {
		s.log.WithFields(logrus.Fields{"evicted": evicted, "open": len(s.forms)}).Info("idle correction forms evicted")
	}
	return evicted
}

func (s *correctionService) GetForm(sess Session, id string) (FormView, error) {
	return s.withForm(sess, id, func(*correction.Form) error { return nil })
}

func (s *correctionService) CloseForm(sess Session, id string) error {
	if _, err := s.session(sess, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.forms, id)
	s.mu.Unlock()
	return nil
}

func (s *correctionService) UpdateHeader(sess Session, id string, header model.CorrectionHeader) (FormView, error) {
	return s.withForm(sess, id, func(f *correction.Form) error {
		header.WarehouseCode = strings.TrimSpace(header.WarehouseCode)
		if strings.TrimSpace(header.Number) == "" {
			header.Number = f.Header.Number
		}
		if strings.TrimSpace(header.Date) == "" {
			header.Date = f.Header.Date
		}
		if header.WarehouseCode != f.Header.WarehouseCode || header.WarehouseName == "" {
			if name, ok := s.lookup.WarehouseName(sess, header.WarehouseCode); ok {
				header.WarehouseName = name
			}
		}
		f.Header = header
		return nil
	})
}

func (s *correctionService) InsertLine(sess Session, id string) (FormView, error) {
	return s.withForm(sess, id, func(f *correction.Form) error {
		f.Store().InsertBlank()
		return nil
	})
}

func (s *correctionService) RemoveLine(sess Session, id, key string) (FormView, error) {
	return s.withForm(sess, id, func(f *correction.Form) error {
		if !f.Store().RemoveByKey(key) {
			return fmt.Errorf("%w: %s", correction.ErrLineNotFound, key)
		}
		return nil
	})
}

func (s *correctionService) SearchStock(sess Session, id, q string) ([]model.StockRecord, error) {
	cs, err := s.session(sess, id)
	if err != nil {
		return nil, err
	}
	cs.mu.Lock()
	header := cs.form.Header
	cs.mu.Unlock()

	if strings.TrimSpace(header.WarehouseCode) == "" {
		return nil, ErrWarehouseRequired
	}

	records, err := s.stockRepo.Search(sess.Token, header.WarehouseCode, header.Date, q)
	if err != nil {
		logger.LogError(s.log, "correction", "SearchStock", "stock query", map[string]string{"gudang": header.WarehouseCode, "q": q}, err)
		return nil, upstreamError("search_stock", "", err, "Gagal mencari stok")
	}
	return records, nil
}

// Pick puts a stock item on the form. The client only names the SKU; system
// stock and price are taken from the stock collaborator for the form's
// warehouse and date.
func (s *correctionService) Pick(sess Session, id string, index *int, sku string) (FormView, error) {
	cs, err := s.session(sess, id)
	if err != nil {
		return FormView{}, err
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return FormView{}, correction.ErrBlankSKU
	}

	cs.mu.Lock()
	header := cs.form.Header
	cs.mu.Unlock()
	if strings.TrimSpace(header.WarehouseCode) == "" {
		return FormView{}, ErrWarehouseRequired
	}

	records, err := s.stockRepo.Search(sess.Token, header.WarehouseCode, header.Date, sku)
	if err != nil {
		logger.LogError(s.log, "correction", "Pick", "stock query", map[string]string{"gudang": header.WarehouseCode, "sku": sku}, err)
		return FormView{}, upstreamError("pick_stock", "", err, "Gagal mencari stok")
	}
	var rec *model.StockRecord
	for i := range records {
		if strings.TrimSpace(records[i].Code) == sku {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return FormView{}, fmt.Errorf("%w: %s", ErrStockItemNotFound, sku)
	}

	return s.withForm(sess, id, func(f *correction.Form) error {
		// header changed while the lookup ran: the record belongs to another stock list
		if f.Header.WarehouseCode != header.WarehouseCode || f.Header.Date != header.Date {
			return fmt.Errorf("%w: %s", ErrStockItemNotFound, sku)
		}
		_, err := f.Pick(index, *rec)
		return err
	})
}

// ImportStock replaces the form's lines with the warehouse's full stock. A
// failed query leaves the form as it was.
func (s *correctionService) ImportStock(sess Session, id string) (ImportView, error) {
	cs, err := s.session(sess, id)
	if err != nil {
		return ImportView{}, err
	}

	release, err := s.guard.Acquire(context.Background(), "correction:"+id)
	if err != nil {
		return ImportView{}, err
	}
	defer release()

	cs.mu.Lock()
	defer cs.mu.Unlock()

	header := cs.form.Header
	if strings.TrimSpace(header.WarehouseCode) == "" {
		return ImportView{}, ErrWarehouseRequired
	}

	records, err := s.stockRepo.FindAll(sess.Token, header.WarehouseCode, header.Date)
	if err != nil {
		logger.LogError(s.log, "correction", "ImportStock", "stock query", map[string]string{"gudang": header.WarehouseCode}, err)
		return ImportView{}, upstreamError("import_stock", "Gagal memuat stok: ", err, "Unknown")
	}

	res, err := cs.form.ImportStock(records)
	if err != nil {
		return ImportView{}, err
	}
	if len(res.SkippedDuplicates) > 0 {
		s.log.WithFields(logrus.Fields{
			"form":       id,
			"duplicates": res.SkippedDuplicates,
		}).Warn("stock import skipped repeated SKUs")
	}

	return ImportView{
		FormView:          FormView{ID: id, View: cs.form.View()},
		Imported:          res.Imported,
		SkippedBlank:      res.SkippedBlank,
		SkippedDuplicates: res.SkippedDuplicates,
	}, nil
}

func (s *correctionService) Stage(sess Session, id, key string, field correction.Field, raw string) (FormView, error) {
	return s.withForm(sess, id, func(f *correction.Form) error {
		return f.Stage(key, field, raw)
	})
}

func (s *correctionService) Commit(sess Session, id, key string, field correction.Field, raw string, keep bool) (FormView, error) {
	return s.withForm(sess, id, func(f *correction.Form) error {
		_, err := f.Commit(key, field, raw, keep)
		return err
	})
}

func (s *correctionService) Adjust(sess Session, id, key string, field correction.Field, delta float64) (FormView, error) {
	return s.withForm(sess, id, func(f *correction.Form) error {
		_, err := f.Adjust(key, field, delta)
		return err
	})
}

func (s *correctionService) Labels(sess Session, id string) ([]model.BarcodeLabel, error) {
	var labels []model.BarcodeLabel
	_, err := s.withForm(sess, id, func(f *correction.Form) error {
		var err error
		labels, err = correction.Labels(f.Store().Lines())
		return err
	})
	return labels, err
}

func (s *correctionService) Export(sess Session, id string) (*bytes.Buffer, string, error) {
	var (
		buf  *bytes.Buffer
		name string
	)
	_, err := s.withForm(sess, id, func(f *correction.Form) error {
		var err error
		buf, err = export.CorrectionWorkbook(f.Header, f.Store().Lines())
		name = export.FileName(f.Header)
		return err
	})
	return buf, name, err
}

// Save validates and posts the form. On success the form is closed; on
// failure it stays open with its state unchanged so the operator can retry.
func (s *correctionService) Save(sess Session, id string) (*SaveResult, error) {
	cs, err := s.session(sess, id)
	if err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire(context.Background(), "correction:"+id)
	if err != nil {
		return nil, err
	}
	defer release()

	cs.mu.Lock()
	defer cs.mu.Unlock()

	payload, err := cs.form.Payload()
	if err != nil {
		return nil, err
	}
	summary := correction.Summarize(cs.form.Store().Lines())

	entry := model.SubmissionLog{
		Kind:          model.SubmissionCorrectionSave,
		DocumentNo:    payload.Header.Number,
		WarehouseCode: payload.Header.WarehouseCode,
		Lines:         len(payload.Details),
		TotalValue:    summary.TotalValuation,
	}
	entry.CreatedBy = sess.Username

	if err := s.correctionRepo.Create(sess.Token, payload); err != nil {
		logger.LogError(s.log, "correction", "Save", "createCorrectionDocument", map[string]interface{}{"form": id, "lines": len(payload.Details)}, err)
		uerr := upstreamError("save_correction", "Gagal Simpan: ", err, "Unknown")
		entry.Message = uerr.Message
		s.journal.Record(entry)
		return nil, uerr
	}

	entry.Success = true
	s.journal.Record(entry)

	s.mu.Lock()
	delete(s.forms, id)
	s.mu.Unlock()

	result := &SaveResult{
		WarehouseCode: payload.Header.WarehouseCode,
		Lines:         len(payload.Details),
		TotalValue:    summary.TotalValuation,
	}
	s.notifier.Notify(ws.EventCorrectionSaved, map[string]interface{}{
		"warehouse_code": result.WarehouseCode,
		"lines":          result.Lines,
		"user":           sess.Username,
	})
	return result, nil
}

func (s *correctionService) ListDocuments(sess Session, q DocumentQuery) (*DocumentList, error) {
	today := s.now()
	start, end := q.StartDate, q.EndDate
	if q.Days > 0 {
		start = today.AddDate(0, 0, -q.Days).Format(isoDate)
		end = today.Format(isoDate)
	}
	if end == "" {
		end = today.Format(isoDate)
	}
	if start == "" {
		start = today.AddDate(0, 0, -defaultDocumentDays).Format(isoDate)
	}

	startT, err1 := time.Parse(isoDate, start)
	endT, err2 := time.Parse(isoDate, end)
	if err1 != nil || err2 != nil || startT.After(endT) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidDateRange, start, end)
	}

	docs, err := s.correctionRepo.FindByDateRange(sess.Token, start, end)
	if err != nil {
		logger.LogError(s.log, "correction", "ListDocuments", "list koreksi", map[string]string{"start": start, "end": end}, err)
		return nil, &UpstreamError{Op: "list_corrections", Message: "Gagal memuat data koreksi.", Err: err}
	}
	return &DocumentList{StartDate: start, EndDate: end, Documents: docs}, nil
}

func (s *correctionService) DeleteDocument(sess Session, number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrDocumentRequired
	}

	entry := model.SubmissionLog{Kind: model.SubmissionCorrectionDelete, DocumentNo: number}
	entry.CreatedBy = sess.Username

	if err := s.correctionRepo.Delete(sess.Token, number); err != nil {
		logger.LogError(s.log, "correction", "DeleteDocument", "delete koreksi", number, err)
		msg := upstreamMessageOr(err, "Server Error")
		uerr := &UpstreamError{Op: "delete_correction", Message: "Hapus data gagal: " + msg, Err: err}
		entry.Message = uerr.Message
		s.journal.Record(entry)
		return uerr
	}

	entry.Success = true
	s.journal.Record(entry)
	s.notifier.Notify(ws.EventCorrectionDeleted, map[string]string{"number": number, "user": sess.Username})
	return nil
}

func (s *correctionService) PrintURL(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrDocumentRequired
	}
	return s.cfg.PrintBaseURL + "/print/koreksi-stok/" + url.PathEscape(number), nil
}
