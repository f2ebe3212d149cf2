package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product mirrors what the remote product service returns; this service
// never owns or mutates product records beyond the stock field.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Stock int
}

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
