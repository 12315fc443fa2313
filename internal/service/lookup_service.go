package service

import (
	"context"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/pkg/cache"
	"go-warehouse-ops/pkg/logger"

	"github.com/sirupsen/logrus"
)

const warehouseCacheKey = "lookup:gudang"

type LookupService interface {
	Menu() []model.MenuItem
	CorrectionTypes() []model.CorrectionType
	Warehouses(sess Session) ([]model.Warehouse, error)
	// WarehouseName resolves a code through the lookup. ok is false when the
	// code is unknown or the lookup failed.
	WarehouseName(sess Session, code string) (name string, ok bool)
}

type lookupService struct {
	warehouseRepo repository.WarehouseRepository
	cache         cache.Cache
	ttl           time.Duration
	log           *logrus.Logger
}

func NewLookupService(warehouseRepo repository.WarehouseRepository, c cache.Cache, ttl time.Duration, log *logrus.Logger) LookupService {
	return &lookupService{warehouseRepo: warehouseRepo, cache: c, ttl: ttl, log: log}
}

func (s *lookupService) Menu() []model.MenuItem {
	out := make([]model.MenuItem, len(model.DefaultMenu))
	copy(out, model.DefaultMenu)
	return out
}

func (s *lookupService) CorrectionTypes() []model.CorrectionType {
	out := make([]model.CorrectionType, len(model.CorrectionTypes))
	copy(out, model.CorrectionTypes)
	return out
}

func (s *lookupService) Warehouses(sess Session) ([]model.Warehouse, error) {
	ctx := context.Background()

	var cached []model.Warehouse
	if s.ttl > 0 {
		found, err := s.cache.GetObject(ctx, warehouseCacheKey, &cached)
		if err != nil {
			logger.LogError(s.log, "lookup", "Warehouses", "cache get", nil, err)
		} else if found {
			return cached, nil
		}
	}

	warehouses, err := s.warehouseRepo.FindAll(sess.Token)
	if err != nil {
		logger.LogError(s.log, "lookup", "Warehouses", "lookup gudang", nil, err)
		return nil, upstreamError("lookup_warehouses", "", err, "Gagal load lookup gudang")
	}

	if s.ttl > 0 && len(warehouses) > 0 {
		if err := s.cache.SetObject(ctx, warehouseCacheKey, warehouses, s.ttl); err != nil {
			logger.LogError(s.log, "lookup", "Warehouses", "cache set", nil, err)
		}
	}
	return warehouses, nil
}

func (s *lookupService) WarehouseName(sess Session, code string) (string, bool) {
	warehouses, err := s.Warehouses(sess)
	if err != nil {
		return "", false
	}
	for _, w := range warehouses {
		if w.Code == code {
			return w.Name, true
		}
	}
	return "", false
}
