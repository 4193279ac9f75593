package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/amazona-next/internal/repository"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// Oracle 库存查询接口：返回某商品当前可售数量的时间点快照。
// 无预占、无锁，下单时必须以权威来源重新校验。
type Oracle interface {
	CheckAvailability(ctx context.Context, slug string) (int, error)
}

// CatalogOracle 基于商品目录仓库的实现
type CatalogOracle struct {
	productRepo repository.ProductRepository
}

// NewCatalogOracle 创建目录库存查询器
func NewCatalogOracle(productRepo repository.ProductRepository) *CatalogOracle {
	return &CatalogOracle{productRepo: productRepo}
}

// CheckAvailability 查询商品当前库存数量
func (o *CatalogOracle) CheckAvailability(ctx context.Context, slug string) (int, error) {
	if o == nil || o.productRepo == nil {
		return 0, errors.New("catalog oracle not initialized")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	product, err := o.productRepo.GetBySlug(slug)
	if err != nil {
		return 0, fmt.Errorf("stock query failed: %w", err)
	}
	if product == nil {
		return 0, fmt.Errorf("%w: %s", ErrProductNotFound, slug)
	}
	return product.CountInStock, nil
}
