package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

const idempotencyKeyHeader = "Idempotency-Key"

// RemoteRejectedError is a definitive non-2xx answer from the payment
// service. It matches entities.ErrPaymentDeclined and must not be retried.
type RemoteRejectedError struct {
	Status int
	Body   []byte
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("payment service rejected request: status %d", e.Status)
}

func (e *RemoteRejectedError) Is(target error) bool {
	return target == entities.ErrPaymentDeclined
}

// TransportError covers everything that prevented a definitive answer:
// connection failures, timeouts, unreadable or malformed response bodies.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "payment service unreachable: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type PaymentClient struct {
	client  *http.Client
	baseURL string
}

func NewPaymentClient(client *http.Client, baseURL string) *PaymentClient {
	return &PaymentClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type paymentPayload struct {
	OrderID       string          `json:"order_id"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// paymentID tolerates both string and numeric identifiers in the response.
type paymentID string

func (p *paymentID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = paymentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = paymentID(n.String())
	return nil
}

// SubmitPayment performs a single payment-creation call. No retry happens
// at this layer; the order id doubles as the idempotency key so that the
// orchestrator may retry transport failures safely.
func (c *PaymentClient) SubmitPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	orderID := strconv.FormatInt(req.OrderID, 10)

	body, err := json.Marshal(paymentPayload{
		OrderID:       orderID,
		Status:        string(entities.OrderStatusPending),
		PaymentMethod: req.Method,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		return entities.PaymentResult{}, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return entities.PaymentResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(idempotencyKeyHeader, orderID)
	if req.Authorization != "" {
		httpReq.Header.Set("Authorization", req.Authorization)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return entities.PaymentResult{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PaymentResult{}, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entities.PaymentResult{}, &RemoteRejectedError{Status: resp.StatusCode, Body: raw}
	}

	var parsed struct {
		ID paymentID `json:"id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return entities.PaymentResult{}, &TransportError{Err: fmt.Errorf("malformed response body: %w", err)}
	}
	if parsed.ID == "" {
		return entities.PaymentResult{}, &TransportError{Err: errors.New("response body has no payment id")}
	}

	return entities.PaymentResult{PaymentID: string(parsed.ID), RawBody: raw}, nil
}
