package constants

// 支付方式常量（封闭集合，与前端展示文案一致）
const (
	PaymentMethodPayPal = "PayPal"
	PaymentMethodStripe = "Stripe"
	PaymentMethodCOD    = "Cash On Delivery"
)

// PaymentMethods 支付方式枚举表
var PaymentMethods = []string{
	PaymentMethodPayPal,
	PaymentMethodStripe,
	PaymentMethodCOD,
}

// IsValidPaymentMethod 判断是否为合法支付方式
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderPlaced = "order:placed"
)

// 购物车会话常量
const (
	CartSessionHeader     = "X-Cart-Session"
	CartSessionContextKey = "cart_session_id"
)
