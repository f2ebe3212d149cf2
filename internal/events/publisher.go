package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Publisher emits one message per saga transition, keyed by order id so
// that consumers see the transitions of a given order in order.
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, brokers []string, topic string, batchTimeout time.Duration) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: batchTimeout,
		},
	}
}

type transitionEvent struct {
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	FromState  string    `json:"from_state,omitempty"`
	ToState    string    `json:"to_state"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p *Publisher) PublishTransition(ctx context.Context, t entities.OrderTransition) error {
	value, err := json.Marshal(transitionEvent{
		OrderID:    t.OrderID,
		UserID:     t.UserID,
		FromState:  string(t.From),
		ToState:    string(t.To),
		OccurredAt: t.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal transition event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(t.OrderID, 10)),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write transition event: %w", err)
	}

	p.logger.DebugContext(ctx, "transition event published",
		slog.Int64("order_id", t.OrderID),
		slog.String("to_state", string(t.To)),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
