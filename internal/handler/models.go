package handler

import (
	"time"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the order placement payload
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserID        int64           `json:"user_id" validate:"required,gt=0"`
	Total         decimal.Decimal `json:"total" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	Currency      string          `json:"currency" validate:"required"`
}

// Order is the JSON view of an order
// swagger:model Order
type Order struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"user_id"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status"`

	// PaymentReference is null until the order is paid.
	PaymentReference *string `json:"payment_reference"`

	SagaState string    `json:"saga_state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateOrderResponse wraps a freshly placed order
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// AddToCartRequest adds a product to the caller's cart
// swagger:model AddToCartRequest
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartRequest changes the quantity of a cart line
// swagger:model UpdateCartRequest
type UpdateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartItem is the JSON view of a cart line
// swagger:model CartItem
type CartItem struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MessageResponse is a bare confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func OrderEntityToJSON(o entities.Order) Order {
	out := Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    string(o.Status),
		SagaState: string(o.SagaState),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.PaymentRef != "" {
		ref := o.PaymentRef
		out.PaymentReference = &ref
	}
	return out
}

func CartItemEntityToJSON(i entities.CartItem) CartItem {
	return CartItem{
		ID:         i.ID,
		UserID:     i.UserID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
