package public

import (
	"github.com/amazona-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts 商品列表（featured=1 时仅返回推荐商品）
func (h *Handler) GetProducts(c *gin.Context) {
	var (
		products interface{}
		err      error
	)
	if c.Query("featured") == "1" {
		products, err = h.ProductRepo.ListFeatured()
	} else {
		products, err = h.ProductRepo.List()
	}
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProductBySlug 商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.ProductRepo.GetBySlug(slug)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	if product == nil {
		response.NotFound(c, "product not found")
		return
	}
	response.Success(c, gin.H{"product": product})
}
