package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Juanelc4734k/checkout-service/internal/client"
	"github.com/Juanelc4734k/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		OrderID:       42,
		Amount:        decimal.RequireFromString("49.99"),
		Currency:      "USD",
		Method:        "card",
		Authorization: "Bearer token",
	}
}

func TestPaymentClient_SubmitPayment(t *testing.T) {
	t.Run("success with string id", func(t *testing.T) {
		var gotIdempotencyKey, gotAuth string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/payments", r.URL.Path)
			gotIdempotencyKey = r.Header.Get("Idempotency-Key")
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"pay_abc","status":"completed"}`))
		}))
		defer srv.Close()

		c := client.NewPaymentClient(srv.Client(), srv.URL)

		result, err := c.SubmitPayment(context.Background(), paymentRequest())
		require.NoError(t, err)

		assert.Equal(t, "pay_abc", result.PaymentID)
		assert.Equal(t, "42", gotIdempotencyKey)
		assert.Equal(t, "Bearer token", gotAuth)
		assert.Equal(t, "42", gotBody["order_id"])
		assert.Equal(t, "card", gotBody["payment_method"])
	})

	t.Run("numeric id accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":1234}`))
		}))
		defer srv.Close()

		c := client.NewPaymentClient(srv.Client(), srv.URL)

		result, err := c.SubmitPayment(context.Background(), paymentRequest())
		require.NoError(t, err)
		assert.Equal(t, "1234", result.PaymentID)
	})

	t.Run("rejection matches declined error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":"card declined"}`))
		}))
		defer srv.Close()

		c := client.NewPaymentClient(srv.Client(), srv.URL)

		_, err := c.SubmitPayment(context.Background(), paymentRequest())
		assert.ErrorIs(t, err, entities.ErrPaymentDeclined)

		var rejected *client.RemoteRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, http.StatusPaymentRequired, rejected.Status)
		assert.Contains(t, string(rejected.Body), "card declined")
	})

	t.Run("connection failure is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := client.NewPaymentClient(&http.Client{}, srv.URL)

		_, err := c.SubmitPayment(context.Background(), paymentRequest())

		var transport *client.TransportError
		assert.ErrorAs(t, err, &transport)
		assert.NotErrorIs(t, err, entities.ErrPaymentDeclined)
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := client.NewPaymentClient(&http.Client{Timeout: 10 * time.Millisecond}, srv.URL)

		_, err := c.SubmitPayment(context.Background(), paymentRequest())

		var transport *client.TransportError
		assert.ErrorAs(t, err, &transport)
	})

	t.Run("malformed success body is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		c := client.NewPaymentClient(srv.Client(), srv.URL)

		_, err := c.SubmitPayment(context.Background(), paymentRequest())

		var transport *client.TransportError
		assert.ErrorAs(t, err, &transport)
	})

	t.Run("success body without id is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"completed"}`))
		}))
		defer srv.Close()

		c := client.NewPaymentClient(srv.Client(), srv.URL)

		_, err := c.SubmitPayment(context.Background(), paymentRequest())

		var transport *client.TransportError
		assert.ErrorAs(t, err, &transport)
	})

	t.Run("authorization header omitted when empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.Header["Authorization"]
			assert.False(t, present)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"pay_abc"}`))
		}))
		defer srv.Close()

		c := client.NewPaymentClient(srv.Client(), srv.URL)

		req := paymentRequest()
		req.Authorization = ""

		_, err := c.SubmitPayment(context.Background(), req)
		require.NoError(t, err)
	})
}
