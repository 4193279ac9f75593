package cart

// ActionType 购物车动作类型（封闭集合）
type ActionType string

const (
	ActionAddItem             ActionType = "ADD_ITEM"
	ActionRemoveItem          ActionType = "REMOVE_ITEM"
	ActionCartReset           ActionType = "CART_RESET"
	ActionClearItems          ActionType = "CLEAR_ITEMS"
	ActionSaveShippingAddress ActionType = "SAVE_SHIPPING_ADDRESS"
	ActionSavePaymentMethod   ActionType = "SAVE_PAYMENT_METHOD"
)

// Action 购物车动作（带类型标签的载荷）
type Action struct {
	Type    ActionType      `json:"type"`
	Item    Item            `json:"item,omitempty"`
	Slug    string          `json:"slug,omitempty"`
	Address ShippingAddress `json:"address,omitempty"`
	Method  string          `json:"method,omitempty"`
}

// AddItem 添加行项动作（调用方已算好合并后的数量）
func AddItem(item Item) Action {
	return Action{Type: ActionAddItem, Item: item}
}

// RemoveItem 删除行项动作
func RemoveItem(slug string) Action {
	return Action{Type: ActionRemoveItem, Slug: slug}
}

// Reset 重置聚合动作
func Reset() Action {
	return Action{Type: ActionCartReset}
}

// ClearItems 仅清空行项动作
func ClearItems() Action {
	return Action{Type: ActionClearItems}
}

// SaveShippingAddress 保存收货地址动作
func SaveShippingAddress(address ShippingAddress) Action {
	return Action{Type: ActionSaveShippingAddress, Address: address}
}

// SavePaymentMethod 保存支付方式动作
func SavePaymentMethod(method string) Action {
	return Action{Type: ActionSavePaymentMethod, Method: method}
}
