package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amazona-next/internal/cart"
	"github.com/amazona-next/internal/checkout"
	"github.com/amazona-next/internal/constants"
	"github.com/amazona-next/internal/logger"
	"github.com/amazona-next/internal/queue"
	"github.com/amazona-next/internal/repository"
	"github.com/amazona-next/internal/stock"

	"github.com/google/uuid"
)

// CartServiceOptions 购物车服务行为开关
type CartServiceOptions struct {
	// RetainShippingAddress 下单成功后是否保留收货地址
	RetainShippingAddress bool
	// RetainPaymentMethod 下单成功后是否保留支付方式
	RetainPaymentMethod bool
	// StrictActions debug 模式下未知动作直接 panic，release 模式记录日志后忽略
	StrictActions bool
}

// CartService 购物车编排服务：聚合的唯一写入方。
// 每个会话一把锁保证动作串行，状态迁移成功后写透持久化。
type CartService struct {
	stateRepo   repository.CartStateRepository
	productRepo repository.ProductRepository
	oracle      stock.Oracle
	queueClient *queue.Client
	options     CartServiceOptions

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	mu       sync.Mutex
	agg      cart.Aggregate
	hydrated bool
}

// PlacedOrder 下单交接结果
type PlacedOrder struct {
	OrderNo         string               `json:"order_no"`
	Items           []cart.Item          `json:"items"`
	ShippingAddress cart.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
	ItemsTotal      string               `json:"items_total"`
}

// NewCartService 创建购物车服务
func NewCartService(
	stateRepo repository.CartStateRepository,
	productRepo repository.ProductRepository,
	oracle stock.Oracle,
	queueClient *queue.Client,
	options CartServiceOptions,
) *CartService {
	return &CartService{
		stateRepo:   stateRepo,
		productRepo: productRepo,
		oracle:      oracle,
		queueClient: queueClient,
		options:     options,
		sessions:    make(map[string]*cartSession),
	}
}

// Get 返回会话当前聚合（必要时从持久化恢复）
func (s *CartService) Get(ctx context.Context, sessionID string) (cart.Aggregate, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)
	return sess.agg, nil
}

// AddItem 加购流程：查库存快照，期望数量以检查返回后的聚合状态重算。
// desired > countInStock 时拒绝且聚合不变。
func (s *CartService) AddItem(ctx context.Context, sessionID, slug string) (cart.Aggregate, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return cart.Aggregate{}, fmt.Errorf("%w: %v", ErrStockUnavailable, err)
	}
	if product == nil {
		return cart.Aggregate{}, ErrProductNotAvailable
	}

	// 库存查询是网络挂起点，不持有会话锁
	countInStock, err := s.oracle.CheckAvailability(ctx, slug)
	if err != nil {
		if errors.Is(err, stock.ErrProductNotFound) {
			return cart.Aggregate{}, ErrProductNotAvailable
		}
		return cart.Aggregate{}, fmt.Errorf("%w: %v", ErrStockUnavailable, err)
	}

	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)

	// 查询等待期间聚合可能已被后续动作修改，期望数量必须此刻重算
	desired := 1
	if existing, ok := sess.agg.FindItem(slug); ok {
		desired = existing.Quantity + 1
	}
	if desired > countInStock {
		return sess.agg, fmt.Errorf("%w: %s desired=%d available=%d",
			ErrInsufficientStock, slug, desired, countInStock)
	}

	item := cart.Item{
		ProductID:    product.ID,
		Slug:         product.Slug,
		Name:         product.Name,
		Image:        product.Image,
		Price:        product.Price,
		Quantity:     desired,
		CountInStock: countInStock,
	}
	if err := s.dispatch(ctx, sessionID, sess, cart.AddItem(item)); err != nil {
		return sess.agg, err
	}
	return sess.agg, nil
}

// RemoveItem 删除行项（不存在时为无错误的空操作）
func (s *CartService) RemoveItem(ctx context.Context, sessionID, slug string) (cart.Aggregate, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)
	if err := s.dispatch(ctx, sessionID, sess, cart.RemoveItem(slug)); err != nil {
		return sess.agg, err
	}
	return sess.agg, nil
}

// ClearItems 仅清空行项，地址与支付方式保留
func (s *CartService) ClearItems(ctx context.Context, sessionID string) (cart.Aggregate, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)
	if err := s.dispatch(ctx, sessionID, sess, cart.ClearItems()); err != nil {
		return sess.agg, err
	}
	return sess.agg, nil
}

// Reset 重置为规范空聚合（登出路径），并删除持久化快照
func (s *CartService) Reset(ctx context.Context, sessionID string) (cart.Aggregate, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.agg = cart.NewAggregate()
	sess.hydrated = true
	if err := s.stateRepo.Delete(ctx, sessionID); err != nil {
		logger.Warnw("cart_state_delete_failed", "session_id", sessionID, "error", err)
	}
	return sess.agg, nil
}

// SaveShippingAddress 保存收货地址，五个字段必须同时非空
func (s *CartService) SaveShippingAddress(ctx context.Context, sessionID string, address cart.ShippingAddress) (cart.Aggregate, error) {
	if !address.Complete() {
		return cart.Aggregate{}, ErrShippingFieldMissing
	}
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)
	if err := s.dispatch(ctx, sessionID, sess, cart.SaveShippingAddress(address)); err != nil {
		return sess.agg, err
	}
	return sess.agg, nil
}

// SavePaymentMethod 保存支付方式，空选择在本地拒绝、不派发动作
func (s *CartService) SavePaymentMethod(ctx context.Context, sessionID, method string) (cart.Aggregate, error) {
	if method == "" {
		return cart.Aggregate{}, ErrPaymentMethodRequired
	}
	if !constants.IsValidPaymentMethod(method) {
		return cart.Aggregate{}, ErrPaymentMethodInvalid
	}
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)
	if err := s.dispatch(ctx, sessionID, sess, cart.SavePaymentMethod(method)); err != nil {
		return sess.agg, err
	}
	return sess.agg, nil
}

// PlaceOrder 下单交接：守卫复核、逐项对权威库存二次校验、快照入队、清空行项。
// 加购时的库存检查只是时间点快照，竞态窗口在这里关闭；校验失败直接上抛，不自动重试。
func (s *CartService) PlaceOrder(ctx context.Context, sessionID string) (*PlacedOrder, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.hydrate(ctx, sessionID, sess)

	if len(sess.agg.CartItems) == 0 {
		return nil, ErrCartEmpty
	}
	if !checkout.CanEnter(sess.agg, checkout.StepPlaceOrder) {
		return nil, ErrCheckoutIncomplete
	}

	for _, item := range sess.agg.CartItems {
		countInStock, err := s.oracle.CheckAvailability(ctx, item.Slug)
		if err != nil {
			if errors.Is(err, stock.ErrProductNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, item.Slug)
			}
			return nil, fmt.Errorf("%w: %v", ErrStockUnavailable, err)
		}
		if item.Quantity > countInStock {
			return nil, fmt.Errorf("%w: %s desired=%d available=%d",
				ErrInsufficientStock, item.Slug, item.Quantity, countInStock)
		}
	}

	placed := &PlacedOrder{
		OrderNo:         uuid.NewString(),
		Items:           append([]cart.Item(nil), sess.agg.CartItems...),
		ShippingAddress: sess.agg.ShippingAddress,
		PaymentMethod:   sess.agg.PaymentMethod,
		ItemsTotal:      sess.agg.ItemsTotal().String(),
	}
	if s.queueClient.Enabled() {
		payload := queue.OrderPlacedPayload{
			OrderNo:         placed.OrderNo,
			SessionID:       sessionID,
			Items:           placed.Items,
			ShippingAddress: placed.ShippingAddress,
			PaymentMethod:   placed.PaymentMethod,
			ItemsTotal:      placed.ItemsTotal,
		}
		if err := s.queueClient.EnqueueOrderPlaced(payload); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueueUnavailable, err)
		}
	}

	if err := s.dispatch(ctx, sessionID, sess, cart.ClearItems()); err != nil {
		return nil, err
	}
	if !s.options.RetainShippingAddress {
		if err := s.dispatch(ctx, sessionID, sess, cart.SaveShippingAddress(cart.ShippingAddress{})); err != nil {
			return nil, err
		}
	}
	if !s.options.RetainPaymentMethod {
		if err := s.dispatch(ctx, sessionID, sess, cart.SavePaymentMethod("")); err != nil {
			return nil, err
		}
	}

	logger.Infow("order_placed",
		"order_no", placed.OrderNo,
		"session_id", sessionID,
		"item_kinds", len(placed.Items),
		"items_total", placed.ItemsTotal,
	)
	return placed, nil
}

// session 获取或创建会话槽位
func (s *CartService) session(sessionID string) *cartSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{agg: cart.NewAggregate()}
		s.sessions[sessionID] = sess
	}
	return sess
}

// hydrate 会话首次触达时从持久化恢复，失败时降级为空聚合继续
func (s *CartService) hydrate(ctx context.Context, sessionID string, sess *cartSession) {
	if sess.hydrated {
		return
	}
	agg, found, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		logger.Warnw("cart_state_load_failed", "session_id", sessionID, "error", err)
		sess.agg = cart.NewAggregate()
		sess.hydrated = true
		return
	}
	if found {
		sess.agg = agg
	}
	sess.hydrated = true
}

// dispatch 应用动作并写透持久化；写失败只记日志，会话降级继续
func (s *CartService) dispatch(ctx context.Context, sessionID string, sess *cartSession, action cart.Action) error {
	next, err := cart.Apply(sess.agg, action)
	if err != nil {
		if errors.Is(err, cart.ErrUnknownAction) {
			if s.options.StrictActions {
				panic(err)
			}
			logger.Errorw("cart_action_unknown", "session_id", sessionID, "type", string(action.Type))
			return nil
		}
		return err
	}
	sess.agg = next
	if err := s.stateRepo.Save(ctx, sessionID, next); err != nil {
		logger.Warnw("cart_state_save_failed", "session_id", sessionID, "error", err)
	}
	return nil
}
