package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

type CartRepo interface {
	CreateItem(ctx context.Context, item entities.CartItem) (entities.CartItem, error)
	ItemForUser(ctx context.Context, itemID, userID int64) (entities.CartItem, error)
	PendingByUser(ctx context.Context, userID int64) ([]entities.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int, total decimal.Decimal) (entities.CartItem, error)
	MarkPaid(ctx context.Context, itemID int64) error
}

type ProductClient interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	UpdateStock(ctx context.Context, productID int64, stock int) error
}

type cartService struct {
	logger   *slog.Logger
	cart     CartRepo
	products ProductClient
}

func NewCartService(logger *slog.Logger, cart CartRepo, products ProductClient) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		cart:     cart,
		products: products,
	}
}

func (s *cartService) AddToCart(ctx context.Context, userID, productID int64, quantity int) (entities.CartItem, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.CartItem{}, err
	}
	if product.Stock < quantity {
		return entities.CartItem{}, entities.ErrInsufficientStock
	}

	qty := decimal.NewFromInt(int64(quantity))
	item, err := s.cart.CreateItem(ctx, entities.CartItem{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  product.Price,
		TotalPrice: product.Price.Mul(qty),
		Status:     entities.CartStatusPending,
	})
	if err != nil {
		return entities.CartItem{}, err
	}

	s.logger.InfoContext(ctx, "cart item added",
		slog.Int64("user_id", userID),
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)
	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int) (entities.CartItem, error) {
	item, err := s.cart.ItemForUser(ctx, itemID, userID)
	if err != nil {
		return entities.CartItem{}, err
	}

	total := item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return s.cart.UpdateQuantity(ctx, item.ID, quantity, total)
}

func (s *cartService) ListPending(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	return s.cart.PendingByUser(ctx, userID)
}

// Checkout walks the pending lines in order and stops at the first
// failure. Lines processed before the failure keep their paid status and
// their stock decrement; no revert is attempted.
func (s *cartService) Checkout(ctx context.Context, userID int64) error {
	items, err := s.cart.PendingByUser(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := s.checkoutItem(ctx, item); err != nil {
			cartLines.WithLabelValues("failed").Inc()
			s.logger.ErrorContext(ctx, "cart checkout aborted",
				slog.Int64("user_id", userID),
				slog.Int64("item_id", item.ID),
				slog.Any("error", err),
			)
			return fmt.Errorf("failed to check out cart item %d: %w", item.ID, err)
		}
		cartLines.WithLabelValues("paid").Inc()
	}

	s.logger.InfoContext(ctx, "cart checked out",
		slog.Int64("user_id", userID),
		slog.Int("items", len(items)),
	)
	return nil
}

func (s *cartService) checkoutItem(ctx context.Context, item entities.CartItem) error {
	if err := s.cart.MarkPaid(ctx, item.ID); err != nil {
		return err
	}

	product, err := s.products.GetProduct(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if product.Stock < item.Quantity {
		return entities.ErrInsufficientStock
	}

	return s.products.UpdateStock(ctx, item.ProductID, product.Stock-item.Quantity)
}
