package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Juanelc4734k/checkout-service/internal/entities"
	"github.com/Juanelc4734k/checkout-service/pkg/trm"
	"github.com/Juanelc4734k/checkout-service/pkg/utils"
)

type OrderRepo interface {
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID int64) (entities.Order, error)
	AttachPayment(ctx context.Context, orderID int64, paymentID string) (entities.Order, error)

	// Delete is idempotent: deleting a missing order succeeds.
	Delete(ctx context.Context, orderID int64) error

	SetSagaState(ctx context.Context, orderID int64, state entities.SagaState) error
	RecordTransition(ctx context.Context, t entities.OrderTransition) error
}

type PaymentClient interface {
	SubmitPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
}

type EventPublisher interface {
	PublishTransition(ctx context.Context, t entities.OrderTransition) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

// checkoutService runs the order placement saga: create the order locally,
// submit the payment remotely, attach the returned payment reference. The
// only compensating action is deleting the order when payment fails.
type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	payments  PaymentClient
	events    EventPublisher
	cache     Cache
	retry     utils.RetryConfig
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	payments PaymentClient,
	events EventPublisher,
	cache Cache,
	retry utils.RetryConfig,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		orders:    orders,
		payments:  payments,
		events:    events,
		cache:     cache,
		retry:     retry,
	}
}

// PlaceOrder never submits a payment before the order row durably exists,
// and never reports success before the payment reference is attached.
func (s *checkoutService) PlaceOrder(ctx context.Context, in entities.PlaceOrderInput) (entities.Order, error) {
	if err := validateInput(in); err != nil {
		ordersPlaced.WithLabelValues("validation_failed").Inc()
		return entities.Order{}, entities.NewCheckoutError(entities.CodeValidation, "invalid order input", err)
	}

	order, err := s.createOrder(ctx, in)
	if err != nil {
		ordersPlaced.WithLabelValues("persistence_failed").Inc()
		return entities.Order{}, entities.NewCheckoutError(entities.CodePersistence, "failed to create order", err)
	}

	order, err = s.transition(ctx, order, entities.SagaPaymentPending)
	if err != nil {
		s.compensate(ctx, order)
		ordersPlaced.WithLabelValues("persistence_failed").Inc()
		return entities.Order{}, entities.NewCheckoutError(entities.CodePersistence, "failed to update order state", err)
	}

	result, err := s.submitPayment(ctx, order, in)
	if err != nil {
		s.compensate(ctx, order)
		ordersPlaced.WithLabelValues("payment_failed").Inc()
		return entities.Order{}, entities.NewCheckoutError(entities.CodePayment, "failed to process payment", err)
	}

	order, err = s.finalize(ctx, order, result.PaymentID)
	if err != nil {
		ordersPlaced.WithLabelValues("persistence_failed").Inc()
		return entities.Order{}, entities.NewCheckoutError(entities.CodePersistence, "failed to attach payment to order", err)
	}

	s.cacheOrder(order)
	ordersPlaced.WithLabelValues("success").Inc()
	s.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", order.ID),
		slog.String("payment_reference", order.PaymentRef),
	)
	return order, nil
}

func (s *checkoutService) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	key := cacheKey(orderID)

	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		s.cache.Remove(key)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *checkoutService) createOrder(ctx context.Context, in entities.PlaceOrderInput) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.Create(ctx, entities.Order{
			UserID:    in.UserID,
			Total:     in.Total,
			Status:    entities.OrderStatusPending,
			SagaState: entities.SagaCreated,
		})
		if err != nil {
			return err
		}
		return s.orders.RecordTransition(ctx, transitionOf(order, "", entities.SagaCreated))
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, transitionOf(order, "", entities.SagaCreated))
	s.logger.InfoContext(ctx, "order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
	)
	return order, nil
}

func (s *checkoutService) transition(ctx context.Context, order entities.Order, to entities.SagaState) (entities.Order, error) {
	from := order.SagaState
	if !entities.CanTransition(from, to) {
		return entities.Order{}, fmt.Errorf("illegal saga transition %s -> %s", from, to)
	}

	t := transitionOf(order, from, to)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SetSagaState(ctx, order.ID, to); err != nil {
			return err
		}
		return s.orders.RecordTransition(ctx, t)
	})
	if err != nil {
		return entities.Order{}, err
	}

	order.SagaState = to
	s.publish(ctx, t)
	s.logger.InfoContext(ctx, "saga transition",
		slog.Int64("order_id", order.ID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
	return order, nil
}

func (s *checkoutService) submitPayment(ctx context.Context, order entities.Order, in entities.PlaceOrderInput) (entities.PaymentResult, error) {
	req := entities.PaymentRequest{
		OrderID:       order.ID,
		Amount:        order.Total,
		Currency:      in.Currency,
		Method:        in.PaymentMethod,
		Authorization: in.Authorization,
	}

	var result entities.PaymentResult
	start := time.Now()
	// Declines are deterministic, only transport failures are retried. The
	// client sends the order id as idempotency key, so a retried submission
	// cannot charge twice.
	err := utils.Retry(s.retry, func() error {
		var err error
		result, err = s.payments.SubmitPayment(ctx, req)
		return err
	}, entities.ErrPaymentDeclined)
	paymentRequestDuration.Observe(time.Since(start).Seconds())

	return result, err
}

// compensate removes the order created earlier in the same flow. Best
// effort: its own failure is logged and counted but never replaces the
// error that triggered it.
func (s *checkoutService) compensate(ctx context.Context, order entities.Order) {
	t := transitionOf(order, order.SagaState, entities.SagaCompensated)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.Delete(ctx, order.ID); err != nil {
			return err
		}
		return s.orders.RecordTransition(ctx, t)
	})
	if err != nil {
		compensationFailures.Inc()
		s.logger.ErrorContext(ctx, "compensating delete failed",
			slog.String("code", string(entities.CodeCompensation)),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
		return
	}

	compensations.Inc()
	s.cache.Remove(cacheKey(order.ID))
	s.publish(ctx, t)
	s.logger.WarnContext(ctx, "order compensated", slog.Int64("order_id", order.ID))
}

func (s *checkoutService) finalize(ctx context.Context, order entities.Order, paymentID string) (entities.Order, error) {
	t := transitionOf(order, order.SagaState, entities.SagaPaid)

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.orders.AttachPayment(ctx, order.ID, paymentID)
		if err != nil {
			return err
		}
		return s.orders.RecordTransition(ctx, t)
	})
	if err != nil {
		s.markOrphaned(ctx, order)
		return entities.Order{}, err
	}

	s.publish(ctx, t)
	return updated, nil
}

// markOrphaned flags the state where the remote payment exists but the
// local order could not be updated to reference it. No automatic
// reconciliation is attempted; the state is persisted so it can be queried.
func (s *checkoutService) markOrphaned(ctx context.Context, order entities.Order) {
	orphanedOrders.Inc()

	t := transitionOf(order, order.SagaState, entities.SagaOrphaned)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SetSagaState(ctx, order.ID, entities.SagaOrphaned); err != nil {
			return err
		}
		return s.orders.RecordTransition(ctx, t)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to mark order orphaned",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
		return
	}

	s.publish(ctx, t)
	s.logger.ErrorContext(ctx, "order orphaned: remote payment exists but is not attached",
		slog.Int64("order_id", order.ID),
	)
}

func (s *checkoutService) publish(ctx context.Context, t entities.OrderTransition) {
	if err := s.events.PublishTransition(ctx, t); err != nil {
		s.logger.WarnContext(ctx, "failed to publish transition event",
			slog.Int64("order_id", t.OrderID),
			slog.Any("error", err),
		)
	}
}

func (s *checkoutService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(cacheKey(order.ID), data)
}

func validateInput(in entities.PlaceOrderInput) error {
	if in.UserID <= 0 {
		return errors.New("user id must be positive")
	}
	if !in.Total.IsPositive() {
		return errors.New("total must be positive")
	}
	if in.PaymentMethod == "" {
		return errors.New("payment method is required")
	}
	if in.Currency == "" {
		return errors.New("currency is required")
	}
	return nil
}

func transitionOf(order entities.Order, from, to entities.SagaState) entities.OrderTransition {
	return entities.OrderTransition{
		OrderID:    order.ID,
		UserID:     order.UserID,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	}
}

func cacheKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}
