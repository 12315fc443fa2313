package service

import (
	"errors"
	"testing"
	"time"

	"go-warehouse-ops/pkg/cache"

	"github.com/stretchr/testify/require"
)

func TestWarehousesAreCached(t *testing.T) {
	f := newFixture()

	for i := 0; i < 3; i++ {
		got, err := f.lookup.Warehouses(alice)
		require.NoError(t, err)
		require.Len(t, got, 3)
	}
	require.Equal(t, 1, f.warehouses.calls)

	name, ok := f.lookup.WarehouseName(alice, "WH-02")
	require.True(t, ok)
	require.Equal(t, "GUDANG BAHAN", name)
	_, ok = f.lookup.WarehouseName(alice, "XX")
	require.False(t, ok)
}

func TestWarehousesWithoutCache(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	svc := NewLookupService(repo, cache.NewMemoryCache(), 0, quietLogger())
	_, _ = svc.Warehouses(alice)
	_, _ = svc.Warehouses(alice)
	require.Equal(t, 2, repo.calls)
}

func TestWarehousesFailure(t *testing.T) {
	repo := &fakeWarehouseRepo{err: errors.New("refused")}
	svc := NewLookupService(repo, cache.NewMemoryCache(), time.Minute, quietLogger())

	_, err := svc.Warehouses(alice)
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "refused", uerr.Message)

	_, ok := svc.WarehouseName(alice, "WH-16")
	require.False(t, ok)
}

func TestMenuAndTypes(t *testing.T) {
	svc := newFixture().lookup
	menu := svc.Menu()
	require.Len(t, menu, 9)
	available := 0
	for _, m := range menu {
		if m.Available {
			available++
		}
	}
	require.Equal(t, 2, available)
	require.Len(t, svc.CorrectionTypes(), 3)
}
