package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Juanelc4734k/checkout-service/internal/entities"
	"github.com/Juanelc4734k/checkout-service/internal/service"
	mocks "github.com/Juanelc4734k/checkout-service/internal/service/mocks"
	txMocks "github.com/Juanelc4734k/checkout-service/pkg/trm/mocks"
	"github.com/Juanelc4734k/checkout-service/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRetryConfig() utils.RetryConfig {
	return utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}
}

func validInput() entities.PlaceOrderInput {
	return entities.PlaceOrderInput{
		UserID:        7,
		Total:         decimal.RequireFromString("49.99"),
		PaymentMethod: "card",
		Currency:      "USD",
	}
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	type Mocks struct {
		orders   *mocks.MockOrderRepo
		payments *mocks.MockPaymentClient
		events   *mocks.MockEventPublisher
		cache    *mocks.MockCache
	}

	createdOrder := entities.Order{
		ID:        1,
		UserID:    7,
		Total:     decimal.RequireFromString("49.99"),
		Status:    entities.OrderStatusPending,
		SagaState: entities.SagaCreated,
	}
	paidOrder := entities.Order{
		ID:         1,
		UserID:     7,
		Total:      decimal.RequireFromString("49.99"),
		Status:     entities.OrderStatusPaid,
		PaymentRef: "pay_1",
		SagaState:  entities.SagaPaid,
	}

	dbError := errors.New("db error")
	netError := errors.New("connection refused")

	testCases := []struct {
		name         string
		input        entities.PlaceOrderInput
		mockBehavior func(m Mocks)
		wantCode     entities.ErrorCode
		wantErr      error
		want         entities.Order
	}{
		{
			name:  "success",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).Return(nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{PaymentID: "pay_1"}, nil).Once()
				m.orders.EXPECT().AttachPayment(mock.Anything, int64(1), "pay_1").Return(paidOrder, nil).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
				m.cache.EXPECT().Set("1", mock.Anything).Return()
			},
			want: paidOrder,
		},
		{
			name: "validation failure has no side effects",
			input: entities.PlaceOrderInput{
				UserID:        0,
				Total:         decimal.RequireFromString("49.99"),
				PaymentMethod: "card",
				Currency:      "USD",
			},
			mockBehavior: func(m Mocks) {},
			wantCode:     entities.CodeValidation,
		},
		{
			name: "non-positive total rejected before any call",
			input: entities.PlaceOrderInput{
				UserID:        7,
				Total:         decimal.Zero,
				PaymentMethod: "card",
				Currency:      "USD",
			},
			mockBehavior: func(m Mocks) {},
			wantCode:     entities.CodeValidation,
		},
		{
			name:  "create fails, payment never attempted",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(entities.Order{}, dbError).Once()
			},
			wantCode: entities.CodePersistence,
			wantErr:  dbError,
		},
		{
			name:  "state update fails, order compensated before payment",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).
					Return(dbError).Once()
				m.orders.EXPECT().Delete(mock.Anything, int64(1)).Return(nil).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
				m.cache.EXPECT().Remove("1").Return()
			},
			wantCode: entities.CodePersistence,
			wantErr:  dbError,
		},
		{
			name:  "declined payment compensated without retry",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).Return(nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{}, entities.ErrPaymentDeclined).Once()
				m.orders.EXPECT().Delete(mock.Anything, int64(1)).Return(nil).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
				m.cache.EXPECT().Remove("1").Return()
			},
			wantCode: entities.CodePayment,
			wantErr:  entities.ErrPaymentDeclined,
		},
		{
			name:  "transport failure retried, second attempt succeeds",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).Return(nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{}, netError).Once()
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{PaymentID: "pay_1"}, nil).Once()
				m.orders.EXPECT().AttachPayment(mock.Anything, int64(1), "pay_1").Return(paidOrder, nil).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
				m.cache.EXPECT().Set("1", mock.Anything).Return()
			},
			want: paidOrder,
		},
		{
			name:  "transport failure exhausts attempts, order compensated",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).Return(nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{}, netError).Times(3)
				m.orders.EXPECT().Delete(mock.Anything, int64(1)).Return(nil).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
				m.cache.EXPECT().Remove("1").Return()
			},
			wantCode: entities.CodePayment,
			wantErr:  netError,
		},
		{
			name:  "failed compensation still reports the payment error",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).Return(nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{}, entities.ErrPaymentDeclined).Once()
				m.orders.EXPECT().Delete(mock.Anything, int64(1)).Return(dbError).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
			},
			wantCode: entities.CodePayment,
			wantErr:  entities.ErrPaymentDeclined,
		},
		{
			name:  "attach failure marks the order orphaned",
			input: validInput(),
			mockBehavior: func(m Mocks) {
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(createdOrder, nil).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaPaymentPending).Return(nil).Once()
				m.orders.EXPECT().RecordTransition(mock.Anything, mock.Anything).Return(nil)
				m.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything).
					Return(entities.PaymentResult{PaymentID: "pay_1"}, nil).Once()
				m.orders.EXPECT().AttachPayment(mock.Anything, int64(1), "pay_1").
					Return(entities.Order{}, dbError).Once()
				m.orders.EXPECT().SetSagaState(mock.Anything, int64(1), entities.SagaOrphaned).Return(nil).Once()
				m.events.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
			},
			wantCode: entities.CodePersistence,
			wantErr:  dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				orders:   mocks.NewMockOrderRepo(t),
				payments: mocks.NewMockPaymentClient(t),
				events:   mocks.NewMockEventPublisher(t),
				cache:    mocks.NewMockCache(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(m)

			svc := service.NewCheckoutService(logger, tx, m.orders, m.payments, m.events, m.cache, testRetryConfig())

			got, err := svc.PlaceOrder(context.Background(), tc.input)

			if tc.wantCode != "" {
				var ce *entities.CheckoutError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tc.wantCode, ce.Code)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckoutService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{
		ID:         1,
		UserID:     7,
		Total:      decimal.RequireFromString("49.99"),
		Status:     entities.OrderStatusPaid,
		PaymentRef: "pay_1",
		SagaState:  entities.SagaPaid,
	}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      int64
		mockBehavior func(orders *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: 1,
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "corrupt cache entry evicted, repo serves the order",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("1").Return([]byte("broken"), true).Once()
				cache.EXPECT().Remove("1").Return().Once()
				orders.EXPECT().GetByID(mock.Anything, int64(1)).Return(validOrder, nil).Once()
				cache.EXPECT().Set("1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("1").Return(nil, false).Once()
				orders.EXPECT().GetByID(mock.Anything, int64(1)).Return(validOrder, nil).Once()
				cache.EXPECT().Set("1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: 404,
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("404").Return(nil, false).Once()
				orders.EXPECT().GetByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			payments := mocks.NewMockPaymentClient(t)
			events := mocks.NewMockEventPublisher(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orders, cache)

			svc := service.NewCheckoutService(logger, tx, orders, payments, events, cache, testRetryConfig())

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
