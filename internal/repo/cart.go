package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var cartColumns = []string{
	"id", "user_id", "product_id", "quantity",
	"unit_price", "total_price", "status", "created_at", "updated_at",
}

type cartRepo struct {
	txRunner
	qb sq.StatementBuilderType
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{
		txRunner: txRunner{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *cartRepo) CreateItem(ctx context.Context, item entities.CartItem) (entities.CartItem, error) {
	query, args := r.qb.Insert("cart_items").
		Columns("user_id", "product_id", "quantity", "unit_price", "total_price", "status").
		Values(item.UserID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice, string(item.Status)).
		Suffix("RETURNING " + columnList(cartColumns)).
		MustSql()

	var row CartItem
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to create cart item: %w", err)
	}
	return CartItemToEntity(row), nil
}

func (r *cartRepo) ItemForUser(ctx context.Context, itemID, userID int64) (entities.CartItem, error) {
	query, args := r.qb.Select(cartColumns...).
		From("cart_items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		MustSql()

	var row CartItem
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(row), nil
}

func (r *cartRepo) PendingByUser(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select(cartColumns...).
		From("cart_items").
		Where(sq.Eq{"user_id": userID, "status": string(entities.CartStatusPending)}).
		OrderBy("id").
		MustSql()

	var rows []CartItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select pending cart items: %w", err)
	}

	items := make([]entities.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CartItemToEntity(row))
	}
	return items, nil
}

func (r *cartRepo) UpdateQuantity(ctx context.Context, itemID int64, quantity int, total decimal.Decimal) (entities.CartItem, error) {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Set("total_price", total).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		Suffix("RETURNING " + columnList(cartColumns)).
		MustSql()

	var row CartItem
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to update cart item: %w", err)
	}
	return CartItemToEntity(row), nil
}

func (r *cartRepo) MarkPaid(ctx context.Context, itemID int64) error {
	query, args := r.qb.Update("cart_items").
		Set("status", string(entities.CartStatusPaid)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark cart item paid: %w", err)
	}
	return nil
}
