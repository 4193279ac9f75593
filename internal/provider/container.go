package provider

import (
	"github.com/amazona-next/internal/cache"
	"github.com/amazona-next/internal/config"
	"github.com/amazona-next/internal/logger"
	"github.com/amazona-next/internal/models"
	"github.com/amazona-next/internal/queue"
	"github.com/amazona-next/internal/repository"
	"github.com/amazona-next/internal/service"
	"github.com/amazona-next/internal/stock"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo   repository.ProductRepository
	CartStateRepo repository.CartStateRepository

	// Services
	StockOracle stock.Oracle
	CartService *service.CartService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.ProductRepo = repository.NewProductRepository(models.DB)

	// Redis 不可用时降级为进程内存储，购物车功能继续可用
	if cache.Enabled() {
		c.CartStateRepo = repository.NewRedisCartStateRepository(c.Config.Cart.SessionTTLSeconds)
	} else {
		logger.Warnw("provider_cart_state_fallback_memory")
		c.CartStateRepo = repository.NewMemoryCartStateRepository()
	}
}

func (c *Container) initServices() {
	c.StockOracle = stock.NewCatalogOracle(c.ProductRepo)
	c.CartService = service.NewCartService(
		c.CartStateRepo,
		c.ProductRepo,
		c.StockOracle,
		c.QueueClient,
		service.CartServiceOptions{
			RetainShippingAddress: c.Config.Checkout.RetainShippingAddress,
			RetainPaymentMethod:   c.Config.Checkout.RetainPaymentMethod,
			StrictActions:         c.Config.Server.Mode != "release",
		},
	)
}
