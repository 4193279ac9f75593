package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amazona-next/internal/cache"
	"github.com/amazona-next/internal/cart"
)

// CartStateRepository 购物车聚合持久化接口。
// Save 整体覆盖写入（无部分字段更新），Load 未命中时返回 (规范空聚合, false, nil)。
type CartStateRepository interface {
	Save(ctx context.Context, sessionID string, agg cart.Aggregate) error
	Load(ctx context.Context, sessionID string) (cart.Aggregate, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisCartStateRepository Redis 实现：每个会话一个 JSON 键
type RedisCartStateRepository struct {
	ttl time.Duration
}

// NewRedisCartStateRepository 创建 Redis 购物车状态仓库
func NewRedisCartStateRepository(sessionTTLSeconds int) *RedisCartStateRepository {
	ttl := time.Duration(0)
	if sessionTTLSeconds > 0 {
		ttl = time.Duration(sessionTTLSeconds) * time.Second
	}
	return &RedisCartStateRepository{ttl: ttl}
}

// Save 写入聚合快照
func (r *RedisCartStateRepository) Save(ctx context.Context, sessionID string, agg cart.Aggregate) error {
	return cache.SetJSON(ctx, cartStateKey(sessionID), agg, r.ttl)
}

// Load 读取聚合快照
func (r *RedisCartStateRepository) Load(ctx context.Context, sessionID string) (cart.Aggregate, bool, error) {
	agg := cart.NewAggregate()
	found, err := cache.GetJSON(ctx, cartStateKey(sessionID), &agg)
	if err != nil {
		return cart.NewAggregate(), false, err
	}
	if !found {
		return cart.NewAggregate(), false, nil
	}
	if agg.CartItems == nil {
		agg.CartItems = []cart.Item{}
	}
	return agg, true, nil
}

// Delete 删除聚合快照
func (r *RedisCartStateRepository) Delete(ctx context.Context, sessionID string) error {
	return cache.Del(ctx, cartStateKey(sessionID))
}

func cartStateKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
