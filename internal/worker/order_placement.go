package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/queue"
	"github.com/Beka01247/bistro-api/internal/service"
	"go.uber.org/zap"
)

// OrderPlacementWorker writes orders whose gateway session has already been
// handed to the client.
type OrderPlacementWorker struct {
	orderService *service.OrderService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewOrderPlacementWorker(
	orderService *service.OrderService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderPlacementWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderPlacementWorker{
		orderService: orderService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *OrderPlacementWorker) Start() error {
	w.logger.Info("starting order placement worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderPlacement, w.handleMessage)
}

func (w *OrderPlacementWorker) Stop() {
	w.logger.Info("stopping order placement worker")
	w.cancel()
}

func (w *OrderPlacementWorker) handleMessage(ctx context.Context, message []byte) error {
	var order domain.Order
	if err := json.Unmarshal(message, &order); err != nil {
		w.logger.Errorw("failed to unmarshal order", "error", err)
		return fmt.Errorf("failed to unmarshal order: %w", err)
	}

	if order.TransactionID == "" {
		w.logger.Errorw("order without transaction id dropped")
		return fmt.Errorf("%w: order without transaction id", domain.ErrValidation)
	}

	return w.orderService.Persist(ctx, &order)
}
