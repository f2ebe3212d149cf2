package entities

import "time"

// SagaState tracks where a single checkout is in its lifecycle. The current
// state lives on the order row; the full history (including states of rows
// removed by compensation) lives in order_events.
type SagaState string

const (
	SagaCreated        SagaState = "created"
	SagaPaymentPending SagaState = "payment_pending"
	SagaPaid           SagaState = "paid"
	SagaCompensated    SagaState = "compensated"
	SagaOrphaned       SagaState = "orphaned"
)

var validNext = map[SagaState]map[SagaState]bool{
	SagaCreated:        {SagaPaymentPending: true, SagaCompensated: true},
	SagaPaymentPending: {SagaPaid: true, SagaCompensated: true, SagaOrphaned: true},
	SagaPaid:           {},
	SagaCompensated:    {},
	SagaOrphaned:       {},
}

func CanTransition(from, to SagaState) bool {
	return validNext[from][to]
}

type OrderTransition struct {
	OrderID    int64
	UserID     int64
	From       SagaState
	To         SagaState
	OccurredAt time.Time
}
