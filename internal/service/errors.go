package service

import (
	"errors"

	"go-warehouse-ops/internal/correction"
	"go-warehouse-ops/internal/realization"
	"go-warehouse-ops/pkg/apiclient"
)

var (
	ErrFormNotFound        = errors.New("form not found")
	ErrWarehouseRequired   = errors.New("Pilih gudang terlebih dahulu")
	ErrCredentialsRequired = errors.New("Username dan password wajib diisi")
	ErrDocumentRequired    = errors.New("document number is required")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrStockItemNotFound   = errors.New("Barang tidak ditemukan di stok gudang")
)

// UpstreamError is a failed collaborator call carrying the message to show
// the operator.
type UpstreamError struct {
	Op      string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstreamError(op, prefix string, err error, fallback string) *UpstreamError {
	return &UpstreamError{Op: op, Message: prefix + apiclient.MessageOr(err, fallback), Err: err}
}

// IsValidation reports whether err is a local check that failed before (or
// instead of) any collaborator call.
func IsValidation(err error) bool {
	return correction.IsValidation(err) ||
		realization.IsValidation(err) ||
		errors.Is(err, ErrWarehouseRequired) ||
		errors.Is(err, ErrCredentialsRequired) ||
		errors.Is(err, ErrDocumentRequired) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrStockItemNotFound)
}

// upstreamMessageOr is the upstream body message, ignoring transport errors.
func upstreamMessageOr(err error, fallback string) string {
	if msg := apiclient.UpstreamMessage(err); msg != "" {
		return msg
	}
	return fallback
}
