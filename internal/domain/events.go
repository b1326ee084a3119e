package domain

import "time"

type OrderEvent struct {
	EventType     string    `json:"event_type"`
	TransactionID string    `json:"transaction_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced    = "order.placed"
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
	EventOrderDeleted   = "order.deleted"
)
