package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Juanelc4734k/checkout-service/internal/entities"
	"github.com/Juanelc4734k/checkout-service/internal/handler"
	mocks "github.com/Juanelc4734k/checkout-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	paidOrder := entities.Order{
		ID:         1,
		UserID:     7,
		Total:      decimal.RequireFromString("49.99"),
		Status:     entities.OrderStatusPaid,
		PaymentRef: "pay_1",
		SagaState:  entities.SagaPaid,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"user_id":7,"total":"49.99","payment_method":"card","currency":"USD"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(in entities.PlaceOrderInput) bool {
						return in.UserID == 7 && in.Total.Equal(decimal.RequireFromString("49.99"))
					})).
					Return(paidOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"payment_reference":"pay_1"`,
		},
		{
			name:         "malformed body",
			body:         `{"user_id":`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"validation_error"`,
		},
		{
			name:         "missing fields fail validation",
			body:         `{"user_id":7}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PaymentMethod"`,
		},
		{
			name:         "negative total rejected",
			body:         `{"user_id":7,"total":"-5","payment_method":"card","currency":"USD"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"validation_error"`,
		},
		{
			name: "payment failure carries its code",
			body: `{"user_id":7,"total":"49.99","payment_method":"card","currency":"USD"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.NewCheckoutError(
						entities.CodePayment, "failed to process payment", entities.ErrPaymentDeclined,
					)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"payment_error"`,
		},
		{
			name: "unclassified error maps to internal",
			body: `{"user_id":7,"total":"49.99","payment_method":"card","currency":"USD"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"internal_error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckoutService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewOrderHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{
		ID:        1,
		UserID:    7,
		Total:     decimal.RequireFromString("49.99"),
		Status:    entities.OrderStatusPending,
		SagaState: entities.SagaCreated,
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "1",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"payment_reference":null`,
		},
		{
			name:         "invalid id",
			orderID:      "abc",
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
		{
			name:    "not found",
			orderID: "404",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "1",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckoutService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewOrderHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestCartHandler_Auth(t *testing.T) {
	testCases := []struct {
		name       string
		userHeader string
		wantStatus int
	}{
		{name: "missing user id", userHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "invalid user id", userHeader: "abc", wantStatus: http.StatusUnauthorized},
		{name: "valid user id", userHeader: "7", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			if tc.wantStatus == http.StatusOK {
				svc.EXPECT().ListPending(mock.Anything, int64(7)).Return(nil, nil).Once()
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewCartHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tc.userHeader != "" {
				req.Header.Set("X-User-ID", tc.userHeader)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestCartHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().Checkout(mock.Anything, int64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"cart checked out"`,
		},
		{
			name: "aborted checkout",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().Checkout(mock.Anything, int64(7)).
					Return(errors.New("failed to check out cart item 2")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"checkout failed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewCartHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
			req.Header.Set("X-User-ID", "7")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestCartHandler_AddToCart(t *testing.T) {
	item := entities.CartItem{
		ID:         1,
		UserID:     7,
		ProductID:  10,
		Quantity:   2,
		UnitPrice:  decimal.RequireFromString("25.50"),
		TotalPrice: decimal.RequireFromString("51.00"),
		Status:     entities.CartStatusPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product_id":10,"quantity":2}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddToCart(mock.Anything, int64(7), int64(10), 2).Return(item, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"product_id":10`,
		},
		{
			name:         "zero quantity fails validation",
			body:         `{"product_id":10,"quantity":0}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity"`,
		},
		{
			name: "product not found",
			body: `{"product_id":99,"quantity":1}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddToCart(mock.Anything, int64(7), int64(99), 1).
					Return(entities.CartItem{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name: "not enough stock",
			body: `{"product_id":10,"quantity":50}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddToCart(mock.Anything, int64(7), int64(10), 50).
					Return(entities.CartItem{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"not enough stock"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewCartHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-ID", "7")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}
