package correction

import "errors"

// Validation failures. They abort the operation and leave the form untouched.
var (
	ErrBlankSKU         = errors.New("item has no SKU")
	ErrDuplicateSKU     = errors.New("item is already on the list")
	ErrIncompleteHeader = errors.New("header is incomplete")
	ErrEmptyDetails     = errors.New("no item lines to save")
	ErrNoStockData      = errors.New("no stock data found")
	ErrNoLabels         = errors.New("no item selected for labels")
	ErrLineNotFound     = errors.New("line not found")
	ErrUnknownField     = errors.New("unknown field")
)

var validationErrors = []error{
	ErrBlankSKU,
	ErrDuplicateSKU,
	ErrIncompleteHeader,
	ErrEmptyDetails,
	ErrNoStockData,
	ErrNoLabels,
	ErrLineNotFound,
	ErrUnknownField,
}

// IsValidation reports whether err is a local validation failure, as opposed
// to a collaborator (network) failure.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
