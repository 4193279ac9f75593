package cart

import (
	"strings"

	"github.com/amazona-next/internal/models"

	"github.com/shopspring/decimal"
)

// Item 购物车行项（countInStock 为加入时观测到的库存快照）
type Item struct {
	ProductID    uint         `json:"product_id"`
	Slug         string       `json:"slug"`
	Name         string       `json:"name"`
	Image        string       `json:"image"`
	Price        models.Money `json:"price"`
	Quantity     int          `json:"quantity"`
	CountInStock int          `json:"count_in_stock"`
}

// ShippingAddress 收货地址：要么全空（未采集），要么五个字段全部填写
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Empty 判断地址是否尚未采集
func (a ShippingAddress) Empty() bool {
	return a.FullName == "" && a.Address == "" && a.City == "" &&
		a.PostalCode == "" && a.Country == ""
}

// Complete 判断五个字段是否全部非空
func (a ShippingAddress) Complete() bool {
	return strings.TrimSpace(a.FullName) != "" &&
		strings.TrimSpace(a.Address) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.PostalCode) != "" &&
		strings.TrimSpace(a.Country) != ""
}

// Aggregate 购物车聚合：持久化与状态迁移的最小一致单元
type Aggregate struct {
	CartItems       []Item          `json:"cart_items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
}

// NewAggregate 返回规范空聚合
func NewAggregate() Aggregate {
	return Aggregate{CartItems: []Item{}}
}

// FindItem 按 slug 查找行项
func (a Aggregate) FindItem(slug string) (Item, bool) {
	for _, item := range a.CartItems {
		if item.Slug == slug {
			return item, true
		}
	}
	return Item{}, false
}

// ItemCount 返回行项数量合计（导航角标）
func (a Aggregate) ItemCount() int {
	total := 0
	for _, item := range a.CartItems {
		total += item.Quantity
	}
	return total
}

// ItemsTotal 返回行项金额合计
func (a Aggregate) ItemsTotal() models.Money {
	total := decimal.Zero
	for _, item := range a.CartItems {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

func cloneItems(items []Item) []Item {
	next := make([]Item, len(items))
	copy(next, items)
	return next
}
