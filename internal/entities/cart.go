package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusPending   CartStatus = "pending"
	CartStatusPaid      CartStatus = "paid"
	CartStatusCancelled CartStatus = "cancelled"
)

// CartItem is a single cart line. Lines are never deleted, only moved
// between statuses. TotalPrice is recomputed from UnitPrice on every
// quantity change.
type CartItem struct {
	ID         int64
	UserID     int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Status     CartStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrCartItemNotFound = errors.New("cart item not found")
)
