package repository

import (
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"
)

type WarehouseRepository interface {
	FindAll(token string) ([]model.Warehouse, error)
}

type warehouseRepo struct {
	api *apiclient.Client
}

func NewWarehouseRepo(api *apiclient.Client) WarehouseRepository {
	return &warehouseRepo{api}
}

// FindAll returns the gudang lookup, dropping entries without code or name.
func (r *warehouseRepo) FindAll(token string) ([]model.Warehouse, error) {
	body, err := r.api.Get(pathWarehouseLookup, nil, token)
	if err != nil {
		return nil, err
	}

	var warehouses []model.Warehouse
	for _, d := range apiclient.DecodeArray[warehouseDTO](body) {
		if d.Kode == "" || d.Nama == "" {
			continue
		}
		warehouses = append(warehouses, model.Warehouse{Code: d.Kode.String(), Name: d.Nama.String()})
	}
	return warehouses, nil
}
