package checkout

import (
	"github.com/amazona-next/internal/cart"
)

// Step 下单流程步骤（仅用于展示进度，始终由聚合完整度推导）
type Step int

const (
	StepShipping   Step = 1
	StepPayment    Step = 2
	StepPlaceOrder Step = 3
)

// String 步骤名称
func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepPlaceOrder:
		return "place_order"
	default:
		return "unknown"
	}
}

// State 向宿主路由层暴露的导航契约
type State struct {
	CurrentStep   Step            `json:"current_step"`
	CanEnter      map[string]bool `json:"can_enter"`
	ShippingReady bool            `json:"shipping_ready"`
	PaymentReady  bool            `json:"payment_ready"`
}

// CanEnter 判断步骤入口守卫：前进受限，后退总是允许
func CanEnter(agg cart.Aggregate, step Step) bool {
	switch step {
	case StepShipping:
		return true
	case StepPayment:
		// 与前端守卫一致：仅检查 address 字段非空
		return agg.ShippingAddress.Address != ""
	case StepPlaceOrder:
		return agg.ShippingAddress.Address != "" && agg.PaymentMethod != ""
	default:
		return false
	}
}

// RedirectTarget 守卫未通过时的回退步骤
func RedirectTarget(agg cart.Aggregate, step Step) Step {
	if CanEnter(agg, step) {
		return step
	}
	switch step {
	case StepPlaceOrder:
		if CanEnter(agg, StepPayment) {
			return StepPayment
		}
		return StepShipping
	default:
		return StepShipping
	}
}

// DeriveStep 由聚合完整度推导当前步骤，避免独立步骤状态与聚合脱节
func DeriveStep(agg cart.Aggregate) Step {
	if agg.ShippingAddress.Address == "" {
		return StepShipping
	}
	if agg.PaymentMethod == "" {
		return StepPayment
	}
	return StepPlaceOrder
}

// DeriveState 生成完整导航状态
func DeriveState(agg cart.Aggregate) State {
	return State{
		CurrentStep: DeriveStep(agg),
		CanEnter: map[string]bool{
			StepShipping.String():   CanEnter(agg, StepShipping),
			StepPayment.String():    CanEnter(agg, StepPayment),
			StepPlaceOrder.String(): CanEnter(agg, StepPlaceOrder),
		},
		ShippingReady: agg.ShippingAddress.Complete(),
		PaymentReady:  agg.PaymentMethod != "",
	}
}
