package cart

import (
	"errors"
	"fmt"
)

// ErrUnknownAction 未识别的动作类型，属于编程错误
var ErrUnknownAction = errors.New("unknown cart action")

// Apply 纯函数状态迁移：输入聚合与动作，返回新聚合。
// 不做副作用，持久化由调用方在迁移成功后负责。
func Apply(agg Aggregate, action Action) (Aggregate, error) {
	switch action.Type {
	case ActionAddItem:
		next := cloneItems(agg.CartItems)
		replaced := false
		for i := range next {
			if next[i].Slug == action.Item.Slug {
				next[i] = action.Item
				replaced = true
				break
			}
		}
		if !replaced {
			next = append(next, action.Item)
		}
		agg.CartItems = next
		return agg, nil

	case ActionRemoveItem:
		next := make([]Item, 0, len(agg.CartItems))
		for _, item := range agg.CartItems {
			if item.Slug != action.Slug {
				next = append(next, item)
			}
		}
		agg.CartItems = next
		return agg, nil

	case ActionCartReset:
		return NewAggregate(), nil

	case ActionClearItems:
		agg.CartItems = []Item{}
		return agg, nil

	case ActionSaveShippingAddress:
		agg.CartItems = cloneItems(agg.CartItems)
		agg.ShippingAddress = action.Address
		return agg, nil

	case ActionSavePaymentMethod:
		agg.CartItems = cloneItems(agg.CartItems)
		agg.PaymentMethod = action.Method
		return agg, nil

	default:
		return agg, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
}
