package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Healthy() bool
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	// QueueOrderPlacement carries orders accepted by the gateway that still
	// have to be written to the store.
	QueueOrderPlacement = "order-placement"
	// QueueOrderEvents carries paid/cancelled/deleted notifications.
	QueueOrderEvents = "order-events"

	QueueOrderPlacementDLQ = "order-placement-dlq"
	QueueOrderEventsDLQ    = "order-events-dlq"
)
