package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/queue"
	"go.uber.org/zap"
)

// Notifier receives order lifecycle events.
type Notifier interface {
	Notify(ctx context.Context, event domain.OrderEvent) error
}

// OrderEventsWorker fans order events out to every notifier.
type OrderEventsWorker struct {
	notifiers []Notifier
	broker    queue.Broker
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewOrderEventsWorker(
	notifiers []Notifier,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderEventsWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderEventsWorker{
		notifiers: notifiers,
		broker:    broker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *OrderEventsWorker) Start() error {
	w.logger.Infow("starting order events worker", "notifiers", len(w.notifiers))

	return w.broker.Subscribe(w.ctx, queue.QueueOrderEvents, w.handleMessage)
}

func (w *OrderEventsWorker) Stop() {
	w.logger.Info("stopping order events worker")
	w.cancel()
}

func (w *OrderEventsWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var errs []error
	for _, n := range w.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			w.logger.Errorw("failed to deliver order event",
				"event_type", event.EventType,
				"transaction_id", event.TransactionID,
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
