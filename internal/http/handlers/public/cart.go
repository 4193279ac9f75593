package public

import (
	"github.com/amazona-next/internal/cart"
	"github.com/amazona-next/internal/checkout"
	"github.com/amazona-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	Slug string `json:"slug" binding:"required"`
}

// cartPayload 购物车响应载荷
func cartPayload(agg cart.Aggregate) gin.H {
	return gin.H{
		"cart":        agg,
		"item_count":  agg.ItemCount(),
		"items_total": agg.ItemsTotal().String(),
		"state":       checkout.DeriveState(agg),
	}
}

// GetCart 获取当前会话购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	agg, err := h.CartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, cartPayload(agg))
}

// AddCartItem 加购一件商品（同 slug 数量加一）
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	agg, err := h.CartService.AddItem(c.Request.Context(), sessionID, req.Slug)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cartPayload(agg))
}

// RemoveCartItem 删除一个行项（幂等）
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	slug := c.Param("slug")
	if slug == "" {
		respondError(c, response.CodeBadRequest, "slug required", nil)
		return
	}
	agg, err := h.CartService.RemoveItem(c.Request.Context(), sessionID, slug)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cartPayload(agg))
}

// ClearCartItems 清空行项，保留地址与支付方式
func (h *Handler) ClearCartItems(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	agg, err := h.CartService.ClearItems(c.Request.Context(), sessionID)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cartPayload(agg))
}

// ResetCart 重置为规范空购物车（登出路径）
func (h *Handler) ResetCart(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	agg, err := h.CartService.Reset(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart reset failed", err)
		return
	}
	response.Success(c, cartPayload(agg))
}
