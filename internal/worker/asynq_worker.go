package worker

import (
	"context"
	"encoding/json"

	"github.com/amazona-next/internal/logger"
	"github.com/amazona-next/internal/provider"
	"github.com/amazona-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

// handleOrderPlaced 下单交接任务：聚合快照在这里移交给外部订单流水线。
// 本服务不负责订单履约，只记录交接并确认消费。
func (c *Consumer) handleOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderNo == "" || len(payload.Items) == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload",
			"order_no", payload.OrderNo,
			"item_kinds", len(payload.Items),
		)
		return nil
	}

	logger.Infow("worker_order_placed_handoff",
		"order_no", payload.OrderNo,
		"session_id", payload.SessionID,
		"item_kinds", len(payload.Items),
		"items_total", payload.ItemsTotal,
		"payment_method", payload.PaymentMethod,
		"country", payload.ShippingAddress.Country,
	)
	return nil
}
