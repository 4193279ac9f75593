package router

import (
	"fmt"
	"strings"

	"github.com/amazona-next/internal/cache"
	"github.com/amazona-next/internal/config"
	publichandlers "github.com/amazona-next/internal/http/handlers/public"
	"github.com/amazona-next/internal/logger"
	"github.com/amazona-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "az"
	}
	placeOrderRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:place_order", redisPrefix),
		WindowSeconds: cfg.Security.PlaceOrderRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PlaceOrderRateLimit.MaxRequests,
		Message:       "too many order attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录（无会话要求）
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:slug", publicHandler.GetProductBySlug)

		// 购物车与下单流程（按会话隔离）
		session := apiV1.Group("")
		session.Use(CartSessionMiddleware())
		{
			session.GET("/cart", publicHandler.GetCart)
			session.POST("/cart/items", publicHandler.AddCartItem)
			session.DELETE("/cart/items/:slug", publicHandler.RemoveCartItem)
			session.DELETE("/cart/items", publicHandler.ClearCartItems)
			session.DELETE("/cart", publicHandler.ResetCart)

			session.GET("/checkout/state", publicHandler.GetCheckoutState)
			session.PUT("/checkout/shipping", publicHandler.SaveShippingAddress)
			session.PUT("/checkout/payment", publicHandler.SavePaymentMethod)
			session.POST("/checkout/place-order",
				RateLimitMiddleware(cache.Client(), placeOrderRule, KeyByCartSession),
				publicHandler.PlaceOrder,
			)
		}
	}

	return r
}
