package service

import (
	"io"
	"sync"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/pkg/cache"
	"go-warehouse-ops/pkg/lock"

	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

var alice = Session{Username: "alice", Token: "up-alice"}
var bob = Session{Username: "bob", Token: "up-bob"}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeWarehouseRepo struct {
	calls int
	err   error
}

func (r *fakeWarehouseRepo) FindAll(token string) ([]model.Warehouse, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []model.Warehouse{
		{Code: "WH-16", Name: "GUDANG UTAMA MMT"},
		{Code: "WH-02", Name: "GUDANG BAHAN"},
		{Code: "GPM", Name: "PRODUKSI GPM"},
	}, nil
}

type fakeStockRepo struct {
	records   []model.StockRecord
	err       error
	lastQuery []string
}

func (r *fakeStockRepo) Search(token, warehouseCode, date, q string) ([]model.StockRecord, error) {
	r.lastQuery = []string{token, warehouseCode, date, q}
	return r.records, r.err
}

func (r *fakeStockRepo) FindAll(token, warehouseCode, date string) ([]model.StockRecord, error) {
	r.lastQuery = []string{token, warehouseCode, date}
	return r.records, r.err
}

type fakeCorrectionRepo struct {
	created   []model.CorrectionPayload
	createErr error
	docs      []model.CorrectionDocument
	listErr   error
	lastRange [2]string
	deleted   []string
	deleteErr error
}

func (r *fakeCorrectionRepo) Create(token string, payload model.CorrectionPayload) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, payload)
	return nil
}

func (r *fakeCorrectionRepo) FindByDateRange(token, start, end string) ([]model.CorrectionDocument, error) {
	r.lastRange = [2]string{start, end}
	return r.docs, r.listErr
}

func (r *fakeCorrectionRepo) Delete(token, number string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, number)
	return nil
}

type fakeRealizationRepo struct {
	stock     map[string]model.BarcodeStock
	lookupErr error
	onLookup  func(barcode string)
	created   []model.RealizationPayload
	createErr error
}

func (r *fakeRealizationRepo) FindBarcodeStock(token, barcode, warehouseCode string) (*model.BarcodeStock, error) {
	if r.onLookup != nil {
		hook := r.onLookup
		r.onLookup = nil
		hook(barcode)
	}
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	st, ok := r.stock[barcode]
	if !ok {
		return nil, repository.ErrBarcodeNotFound
	}
	return &st, nil
}

func (r *fakeRealizationRepo) Create(token string, payload model.RealizationPayload) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, payload)
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(eventType string, data interface{}) {
	n.mu.Lock()
	n.events = append(n.events, eventType)
	n.mu.Unlock()
}

type fixture struct {
	warehouses  *fakeWarehouseRepo
	stock       *fakeStockRepo
	corrections *fakeCorrectionRepo
	realization *fakeRealizationRepo
	journalRepo repository.JournalRepository
	notifier    *recordingNotifier
	guard       lock.Guard
	lookup      LookupService
	journal     JournalService
}

func newFixture() *fixture {
	f := &fixture{
		warehouses:  &fakeWarehouseRepo{},
		stock:       &fakeStockRepo{},
		corrections: &fakeCorrectionRepo{},
		realization: &fakeRealizationRepo{stock: map[string]model.BarcodeStock{}},
		journalRepo: repository.NewMemoryJournalRepo(100),
		notifier:    &recordingNotifier{},
		guard:       lock.NewMemoryGuard(),
	}
	log := quietLogger()
	f.lookup = NewLookupService(f.warehouses, cache.NewMemoryCache(), time.Minute, log)
	f.journal = NewJournalService(f.journalRepo, log)
	return f
}

func (f *fixture) correctionService() *correctionService {
	svc := NewCorrectionService(f.stock, f.corrections, f.lookup, f.journal, f.guard, f.notifier, quietLogger(), CorrectionConfig{
		DefaultWarehouseCode: "WH-16",
		DefaultWarehouseName: "GUDANG UTAMA MMT",
		PrintBaseURL:         "https://print.example",
	}).(*correctionService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func (f *fixture) realizationService() *realizationService {
	svc := NewRealizationService(f.realization, f.lookup, f.journal, f.guard, f.notifier, quietLogger(), RealizationConfig{
		DefaultWarehouseCode:      "WH-16",
		DefaultWarehouseName:      "GUDANG UTAMA MMT",
		DefaultProductionLocation: "GPM",
	}).(*realizationService)
	svc.now = func() time.Time { return testNow }
	return svc
}
