package queue

import (
	"encoding/json"

	"github.com/amazona-next/internal/cart"
	"github.com/amazona-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 下单交接任务：聚合快照移交外部订单流水线
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// OrderPlacedPayload 下单任务载荷
type OrderPlacedPayload struct {
	OrderNo         string               `json:"order_no"`
	SessionID       string               `json:"session_id"`
	Items           []cart.Item          `json:"items"`
	ShippingAddress cart.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
	ItemsTotal      string               `json:"items_total"`
}

// NewOrderPlacedTask 构建下单任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, data), nil
}
