package model

import "strings"

// Warehouse is a gudang lookup entry.
type Warehouse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// StockRecord is one item of a warehouse stock query.
type StockRecord struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
	Stock         float64 `json:"stock"`
	PurchasePrice float64 `json:"purchase_price"`
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
