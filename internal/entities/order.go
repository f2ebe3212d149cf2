package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID     int64
	UserID int64
	Total  decimal.Decimal
	Status OrderStatus

	// PaymentRef is empty until the payment service confirms the payment;
	// it is set together with Status = paid, never separately.
	PaymentRef string

	SagaState SagaState

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PlaceOrderInput struct {
	UserID        int64
	Total         decimal.Decimal
	PaymentMethod string
	Currency      string

	// Authorization is the caller's credential, forwarded to the payment
	// service as-is, never inspected.
	Authorization string
}

var (
	ErrOrderNotFound = errors.New("order not found")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
}
