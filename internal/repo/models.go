package repo

import (
	"database/sql"
	"time"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int64           `db:"id"`
	UserID     int64           `db:"user_id"`
	Total      decimal.Decimal `db:"total"`
	Status     string          `db:"status"`
	PaymentRef sql.NullString  `db:"payment_reference"`
	SagaState  string          `db:"saga_state"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

type CartItem struct {
	ID         int64           `db:"id"`
	UserID     int64           `db:"user_id"`
	ProductID  int64           `db:"product_id"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		Total:      o.Total,
		Status:     entities.OrderStatus(o.Status),
		PaymentRef: nullStringToString(o.PaymentRef),
		SagaState:  entities.SagaState(o.SagaState),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:         i.ID,
		UserID:     i.UserID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
		Status:     entities.CartStatus(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
