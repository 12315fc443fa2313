package repository

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"

	"github.com/gofiber/fiber/v2"
)

var ErrBarcodeNotFound = errors.New("data barcode tidak ditemukan")

type RealizationRepository interface {
	FindBarcodeStock(token, barcode, warehouseCode string) (*model.BarcodeStock, error)
	Create(token string, payload model.RealizationPayload) error
}

type realizationRepo struct {
	api *apiclient.Client
	now func() time.Time
}

func NewRealizationRepo(api *apiclient.Client) RealizationRepository {
	return &realizationRepo{api: api, now: time.Now}
}

func (r *realizationRepo) FindBarcodeStock(token, barcode, warehouseCode string) (*model.BarcodeStock, error) {
	query := url.Values{
		"gudang": {warehouseCode},
		// cache buster, the upstream caches this lookup
		"_ts": {strconv.FormatInt(r.now().UnixMilli(), 10)},
	}
	body, err := r.api.Get(pathBarcodeStock+url.PathEscape(barcode), query, token)
	if err != nil {
		return nil, err
	}

	raw := apiclient.PickObject(body)
	if raw == nil {
		return nil, ErrBarcodeNotFound
	}
	var dto barcodeStockDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, ErrBarcodeNotFound
	}
	stock := dto.toModel()
	return &stock, nil
}

// Create posts the realization. This endpoint reports failures in "error".
func (r *realizationRepo) Create(token string, payload model.RealizationPayload) error {
	_, err := r.api.Do(apiclient.Request{
		Method:      fiber.MethodPost,
		Path:        pathProductionRequest,
		Body:        payload,
		Token:       token,
		MessageKeys: []string{"error", "message"},
	})
	return err
}
