package repository

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"

	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, h http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/api", 2*time.Second)
}

func TestWarehouseFindAllDropsIncompleteEntries(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/mmt/lookup/gudang", r.URL.Path)
		w.Write([]byte(`{"data":[{"Kode":"WH-16","Nama":" GUDANG UTAMA MMT "},{"Kode":"","Nama":"X"},{"Kode":"GPM","Nama":"Produksi"}]}`))
	})

	got, err := NewWarehouseRepo(api).FindAll("")
	require.NoError(t, err)
	require.Equal(t, []model.Warehouse{
		{Code: "WH-16", Name: "GUDANG UTAMA MMT"},
		{Code: "GPM", Name: "Produksi"},
	}, got)
}

func TestStockSearchMapsStringNumbers(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "WH-16", q.Get("gudangKode"))
		require.Equal(t, "2026-10-15", q.Get("tanggal"))
		require.Equal(t, "kain", q.Get("q"))
		require.Equal(t, "Bearer up-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"Kode":"K-1","Nama":"Kain","Satuan":"M","Panjang":"50","Lebar":1.6,"Stok":"12.5","HRGBELI":"1500"}]`))
	})

	got, err := NewStockRepo(api).Search("up-token", "WH-16", "2026-10-15", "  kain ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, model.StockRecord{Code: "K-1", Name: "Kain", Unit: "M", Length: 50, Width: 1.6, Stock: 12.5, PurchasePrice: 1500}, got[0])
}

func TestStockFindAllOmitsSearch(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, has := r.URL.Query()["q"]
		require.False(t, has)
		w.Write([]byte(`{"data":{"data":[{"Kode":"A","Stok":1},{"Kode":"B","Stok":2}]}}`))
	})

	got, err := NewStockRepo(api).FindAll("", "WH-16", "2026-10-15")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestCorrectionCreateSendsUpstreamFieldNames(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/mmt/koreksi-stok", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		var body struct {
			Header  map[string]interface{}   `json:"header"`
			Details []map[string]interface{} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Equal(t, "WH-16", body.Header["GudangKode"])
		require.Equal(t, float64(100), body.Header["TypeKor"])
		require.Equal(t, "Terima", body.Header["TypeName"])
		require.Len(t, body.Details, 1)
		require.Equal(t, "K-1", body.Details[0]["SKU"])
		require.Equal(t, float64(-2), body.Details[0]["Qty"])
		require.Equal(t, float64(-3000), body.Details[0]["Nilai"])
		w.WriteHeader(http.StatusCreated)
	})

	payload := model.CorrectionPayload{
		Header: model.CorrectionPayloadHeader{
			CorrectionHeader: model.CorrectionHeader{Number: "AUTO", Date: "2026-10-15", WarehouseCode: "WH-16", TypeCode: 100},
			TypeName:         "Terima",
		},
		Details: []model.CorrectionDetail{{SKU: "K-1", SystemQty: 10, PhysicalQty: 8, CorrectionQty: -2, UnitPrice: 1500, Valuation: -3000}},
	}
	require.NoError(t, NewCorrectionRepo(api).Create("", payload))
}

func TestCorrectionFindByDateRange(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2026-09-15", r.URL.Query().Get("startDate"))
		require.Equal(t, "2026-10-15", r.URL.Query().Get("endDate"))
		w.Write([]byte(`{"data":[{"Nomor":"KOR-001","Tanggal":"2026-10-01","Gudang":"WH-16","Tipe":100,"Nama_Tipe":"Terima","Detail":[{"Nomor":"KOR-001","Kode":"K-1","Stock":"10","Fisik":8,"Koreksi":-2}]}]}`))
	})

	docs, err := NewCorrectionRepo(api).FindByDateRange("", "2026-09-15", "2026-10-15")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "KOR-001", docs[0].Number)
	require.Equal(t, "100", docs[0].TypeCode)
	require.Equal(t, -2.0, docs[0].Detail[0].Correction)
	require.Equal(t, 10.0, docs[0].Detail[0].Stock)
}

func TestCorrectionDeleteReportsUpstreamMessage(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/mmt/koreksi-stok/KOR-001", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Dokumen sudah diposting"}`))
	})

	err := NewCorrectionRepo(api).Delete("", "KOR-001")
	require.EqualError(t, err, "Dokumen sudah diposting")
}

func TestFindBarcodeStock(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/mmt/permintaan-produksi/stok-barcode/BC-1", r.URL.Path)
		require.Equal(t, "WH-16", r.URL.Query().Get("gudang"))
		require.NotEmpty(t, r.URL.Query().Get("_ts"))
		w.Write([]byte(`{"data":{"Barcode":"BC-1","Kode":"K-1","Nama_Bahan":"Kain","Satuan":"ROLL","Panjang":"50","Lebar":"1.6","Stok":1,"Nomor_SPK":0}}`))
	})

	got, err := NewRealizationRepo(api).FindBarcodeStock("", "BC-1", "WH-16")
	require.NoError(t, err)
	require.Equal(t, "K-1", got.SKU)
	require.Equal(t, "0", got.SPK)
	require.Equal(t, 50.0, got.Length)
}

func TestFindBarcodeStockMissing(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	_, err := NewRealizationRepo(api).FindBarcodeStock("", "BC-1", "WH-16")
	require.ErrorIs(t, err, ErrBarcodeNotFound)
}

func TestRealizationCreatePrefersErrorField(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Bad Request","error":"SPK tidak ditemukan"}`))
	})

	err := NewRealizationRepo(api).Create("", model.RealizationPayload{})
	require.EqualError(t, err, "SPK tidak ditemukan")
}

func TestAuthLogin(t *testing.T) {
	api := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var creds map[string]string
		require.NoError(t, json.Unmarshal(raw, &creds))
		if creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Password salah"}`))
			return
		}
		w.Write([]byte(`{"token":"up-token","user":{"username":"budi","nama":"Budi Santoso"}}`))
	})
	repo := NewAuthRepo(api)

	sess, err := repo.Login("budi", "secret")
	require.NoError(t, err)
	require.Equal(t, "up-token", sess.Token)
	require.Equal(t, "Budi Santoso", sess.User.Name)

	_, err = repo.Login("budi", "wrong")
	require.Equal(t, "Password salah", apiclient.UpstreamMessage(err))
}
