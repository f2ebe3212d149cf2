package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "user_id", "total", "status",
	"payment_reference", "saga_state", "created_at", "updated_at",
}

type orderRepo struct {
	txRunner
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{
		txRunner: txRunner{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *orderRepo) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "total", "status", "payment_reference", "saga_state").
		Values(o.UserID, o.Total, string(o.Status), nullString(o.PaymentRef), string(o.SagaState)).
		Suffix("RETURNING " + columnList(orderColumns)).
		MustSql()

	var row Order
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return OrderToEntity(row), nil
}

func (r *orderRepo) GetByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row), nil
}

// AttachPayment sets the payment reference, the paid status and the paid
// saga state in a single UPDATE, so the "reference iff paid" invariant
// can never be observed half-applied.
func (r *orderRepo) AttachPayment(ctx context.Context, orderID int64, paymentID string) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("payment_reference", paymentID).
		Set("status", string(entities.OrderStatusPaid)).
		Set("saga_state", string(entities.SagaPaid)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}).
		Suffix("RETURNING " + columnList(orderColumns)).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to attach payment: %w", err)
	}
	return OrderToEntity(row), nil
}

// Delete is idempotent: removing a missing order is not an error, so a
// compensation racing a concurrent delete cannot fail.
func (r *orderRepo) Delete(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *orderRepo) SetSagaState(ctx context.Context, orderID int64, state entities.SagaState) error {
	query, args := r.qb.Update("orders").
		Set("saga_state", string(state)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set saga state: %w", err)
	}
	return nil
}

func (r *orderRepo) RecordTransition(ctx context.Context, t entities.OrderTransition) error {
	query, args := r.qb.Insert("order_events").
		Columns("order_id", "from_state", "to_state", "occurred_at").
		Values(t.OrderID, nullString(string(t.From)), string(t.To), t.OccurredAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record transition: %w", err)
	}
	return nil
}

func columnList(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
