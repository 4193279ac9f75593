package public

import (
	"github.com/amazona-next/internal/cart"
	"github.com/amazona-next/internal/checkout"
	"github.com/amazona-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ShippingAddressRequest 收货地址请求，五个字段缺一不可
type ShippingAddressRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// PaymentMethodRequest 支付方式请求。
// 不加 binding:required：空选择要走业务错误而不是绑定错误。
type PaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func checkoutPayload(agg cart.Aggregate) gin.H {
	return gin.H{
		"cart":  agg,
		"state": checkout.DeriveState(agg),
	}
}

// GetCheckoutState 当前导航状态（步骤与各步入口守卫）
func (h *Handler) GetCheckoutState(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	agg, err := h.CartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "checkout state failed", err)
		return
	}
	response.Success(c, checkoutPayload(agg))
}

// SaveShippingAddress 保存收货地址（步骤 1）
func (h *Handler) SaveShippingAddress(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "all shipping address fields are required", err)
		return
	}
	agg, err := h.CartService.SaveShippingAddress(c.Request.Context(), sessionID, cart.ShippingAddress{
		FullName:   req.FullName,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, checkoutPayload(agg))
}

// SavePaymentMethod 保存支付方式（步骤 2），空选择拒绝且不迁移状态
func (h *Handler) SavePaymentMethod(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	agg, err := h.CartService.SavePaymentMethod(c.Request.Context(), sessionID, req.PaymentMethod)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, checkoutPayload(agg))
}

// PlaceOrder 下单（步骤 3）：守卫复核、库存二次校验、快照交接
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	placed, err := h.CartService.PlaceOrder(c.Request.Context(), sessionID)
	if err != nil {
		respondPlaceOrderError(c, err)
		return
	}
	agg, err := h.CartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, gin.H{
		"order": placed,
		"cart":  agg,
		"state": checkout.DeriveState(agg),
	})
}
