package service

import "errors"

// 业务哨兵错误：在 handler 层映射为接口错误响应
var (
	// ErrProductNotAvailable 商品不存在或不可售
	ErrProductNotAvailable = errors.New("product not available")
	// ErrInsufficientStock 期望数量超过当前库存快照，加购被拒绝
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockUnavailable 库存查询失败，未知库存状态下不允许加购
	ErrStockUnavailable = errors.New("stock check unavailable")
	// ErrShippingFieldMissing 收货地址五个字段必须同时提交
	ErrShippingFieldMissing = errors.New("shipping address field missing")
	// ErrPaymentMethodRequired 未选择支付方式
	ErrPaymentMethodRequired = errors.New("payment method is required")
	// ErrPaymentMethodInvalid 支付方式不在枚举集合内
	ErrPaymentMethodInvalid = errors.New("payment method invalid")
	// ErrCartEmpty 购物车为空，无法下单
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCheckoutIncomplete 下单前置步骤未完成
	ErrCheckoutIncomplete = errors.New("checkout prerequisites missing")
	// ErrQueueUnavailable 队列不可用，下单交接失败
	ErrQueueUnavailable = errors.New("queue unavailable")
)
