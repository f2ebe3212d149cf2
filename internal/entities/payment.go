package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	OrderID       int64
	Amount        decimal.Decimal
	Currency      string
	Method        string
	Authorization string
}

// PaymentResult carries the identifier of the remote payment record. The
// payment itself is owned by the payment service; only the identifier is
// attached to the order.
type PaymentResult struct {
	PaymentID string
	RawBody   []byte
}

// ErrPaymentDeclined marks a definitive rejection by the payment service
// (non-2xx response). Transport failures do not match it and may be retried.
var ErrPaymentDeclined = errors.New("payment declined")
