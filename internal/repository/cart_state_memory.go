package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/amazona-next/internal/cart"
)

// MemoryCartStateRepository 进程内实现：Redis 关闭时的降级路径，测试亦复用。
// 存储 JSON 序列化结果而非结构体引用，保证与 Redis 实现相同的往返语义。
type MemoryCartStateRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryCartStateRepository 创建内存购物车状态仓库
func NewMemoryCartStateRepository() *MemoryCartStateRepository {
	return &MemoryCartStateRepository{blobs: make(map[string][]byte)}
}

// Save 写入聚合快照
func (r *MemoryCartStateRepository) Save(ctx context.Context, sessionID string, agg cart.Aggregate) error {
	payload, err := json.Marshal(agg)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[sessionID] = payload
	return nil
}

// Load 读取聚合快照
func (r *MemoryCartStateRepository) Load(ctx context.Context, sessionID string) (cart.Aggregate, bool, error) {
	r.mu.RLock()
	payload, ok := r.blobs[sessionID]
	r.mu.RUnlock()
	if !ok {
		return cart.NewAggregate(), false, nil
	}
	agg := cart.NewAggregate()
	if err := json.Unmarshal(payload, &agg); err != nil {
		return cart.NewAggregate(), false, err
	}
	if agg.CartItems == nil {
		agg.CartItems = []cart.Item{}
	}
	return agg, true, nil
}

// Delete 删除聚合快照
func (r *MemoryCartStateRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, sessionID)
	return nil
}
