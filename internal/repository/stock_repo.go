package repository

import (
	"net/url"
	"strings"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"
)

type StockRepository interface {
	// Search queries one warehouse's stock as of date; q narrows by code or name.
	Search(token, warehouseCode, date, q string) ([]model.StockRecord, error)
	// FindAll is the full stock of a warehouse as of date.
	FindAll(token, warehouseCode, date string) ([]model.StockRecord, error)
}

type stockRepo struct {
	api *apiclient.Client
}

func NewStockRepo(api *apiclient.Client) StockRepository {
	return &stockRepo{api}
}

func (r *stockRepo) Search(token, warehouseCode, date, q string) ([]model.StockRecord, error) {
	query := url.Values{
		"gudangKode": {warehouseCode},
		"tanggal":    {date},
		"q":          {strings.TrimSpace(q)},
	}
	return r.fetch(token, query)
}

func (r *stockRepo) FindAll(token, warehouseCode, date string) ([]model.StockRecord, error) {
	query := url.Values{
		"gudangKode": {warehouseCode},
		"tanggal":    {date},
	}
	return r.fetch(token, query)
}

func (r *stockRepo) fetch(token string, query url.Values) ([]model.StockRecord, error) {
	body, err := r.api.Get(pathCorrectionStock, query, token)
	if err != nil {
		return nil, err
	}
	dtos := apiclient.DecodeArray[stockDTO](body)
	records := make([]model.StockRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, d.toModel())
	}
	return records, nil
}
