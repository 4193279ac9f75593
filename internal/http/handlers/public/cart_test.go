package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amazona-next/internal/config"
	"github.com/amazona-next/internal/constants"
	"github.com/amazona-next/internal/http/response"
	"github.com/amazona-next/internal/models"
	"github.com/amazona-next/internal/provider"
	"github.com/amazona-next/internal/repository"
	"github.com/amazona-next/internal/router"
	"github.com/amazona-next/internal/service"
	"github.com/amazona-next/internal/stock"

	"github.com/gin-gonic/gin"
)

type stubProductRepo struct {
	products map[string]*models.Product
}

func (r *stubProductRepo) List() ([]models.Product, error) {
	items := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		items = append(items, *p)
	}
	return items, nil
}

func (r *stubProductRepo) ListFeatured() ([]models.Product, error) {
	items := make([]models.Product, 0)
	for _, p := range r.products {
		if p.IsFeatured {
			items = append(items, *p)
		}
	}
	return items, nil
}

func (r *stubProductRepo) GetBySlug(slug string) (*models.Product, error) {
	return r.products[slug], nil
}

type stubOracle struct {
	counts map[string]int
}

func (o *stubOracle) CheckAvailability(ctx context.Context, slug string) (int, error) {
	count, ok := o.counts[slug]
	if !ok {
		return 0, fmt.Errorf("%w: %s", stock.ErrProductNotFound, slug)
	}
	return count, nil
}

func newTestEngine(counts map[string]int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	products := make(map[string]*models.Product, len(counts))
	for slug, count := range counts {
		products[slug] = &models.Product{
			ID:           1,
			Slug:         slug,
			Name:         "Test " + slug,
			Image:        "/images/" + slug + ".jpg",
			Price:        models.NewMoneyFromFloat(70),
			CountInStock: count,
		}
	}
	productRepo := &stubProductRepo{products: products}
	stateRepo := repository.NewMemoryCartStateRepository()
	oracle := &stubOracle{counts: counts}

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	container := &provider.Container{
		Config:        cfg,
		ProductRepo:   productRepo,
		CartStateRepo: stateRepo,
		StockOracle:   oracle,
		CartService: service.NewCartService(stateRepo, productRepo, oracle, nil, service.CartServiceOptions{
			RetainShippingAddress: true,
			RetainPaymentMethod:   true,
			StrictActions:         true,
		}),
	}
	return router.SetupRouter(cfg, container)
}

type envelope struct {
	StatusCode int                    `json:"status_code"`
	Msg        string                 `json:"msg"`
	Data       map[string]interface{} `json:"data"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, sessionID string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request failed: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(constants.CartSessionHeader, sessionID)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	var env envelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response failed: %v body=%s", err, recorder.Body.String())
	}
	return recorder, env
}

func TestCartSessionAssignedWhenHeaderMissing(t *testing.T) {
	engine := newTestEngine(map[string]int{"x": 10})
	recorder, env := doJSON(t, engine, http.MethodGet, "/api/v1/cart", "", nil)
	if env.StatusCode != response.CodeOK {
		t.Fatalf("unexpected status: %+v", env)
	}
	if recorder.Header().Get(constants.CartSessionHeader) == "" {
		t.Fatalf("expected session header assigned")
	}
}

func TestAddAndGetCartOverHTTP(t *testing.T) {
	engine := newTestEngine(map[string]int{"x": 10})

	_, env := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "s1", gin.H{"slug": "x"})
	if env.StatusCode != response.CodeOK {
		t.Fatalf("add failed: %+v", env)
	}
	_, env = doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "s1", gin.H{"slug": "x"})
	if env.StatusCode != response.CodeOK {
		t.Fatalf("second add failed: %+v", env)
	}

	_, env = doJSON(t, engine, http.MethodGet, "/api/v1/cart", "s1", nil)
	if env.StatusCode != response.CodeOK {
		t.Fatalf("get failed: %+v", env)
	}
	if got := env.Data["item_count"].(float64); got != 2 {
		t.Fatalf("expected item_count 2, got %v", got)
	}
	if got := env.Data["items_total"].(string); got != "140.00" {
		t.Fatalf("expected items_total 140.00, got %v", got)
	}

	// 会话隔离：另一个会话看到空购物车
	_, env = doJSON(t, engine, http.MethodGet, "/api/v1/cart", "s2", nil)
	if got := env.Data["item_count"].(float64); got != 0 {
		t.Fatalf("expected isolated empty cart, got %v", got)
	}
}

func TestAddItemOutOfStockOverHTTP(t *testing.T) {
	engine := newTestEngine(map[string]int{"x": 1})

	_, env := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "s1", gin.H{"slug": "x"})
	if env.StatusCode != response.CodeOK {
		t.Fatalf("first add failed: %+v", env)
	}
	_, env = doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "s1", gin.H{"slug": "x"})
	if env.StatusCode != response.CodeConflict {
		t.Fatalf("expected conflict code, got %+v", env)
	}
}

func TestAddUnknownProductOverHTTP(t *testing.T) {
	engine := newTestEngine(map[string]int{"x": 1})
	_, env := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "s1", gin.H{"slug": "ghost"})
	if env.StatusCode != response.CodeNotFound {
		t.Fatalf("expected not found code, got %+v", env)
	}
}

func TestCheckoutGuardsOverHTTP(t *testing.T) {
	engine := newTestEngine(map[string]int{"x": 10})

	// 地址字段不全：绑定层拒绝
	_, env := doJSON(t, engine, http.MethodPut, "/api/v1/checkout/shipping", "s1", gin.H{
		"full_name": "A", "address": "B", "city": "C", "postal_code": "D",
	})
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected bad request for missing country, got %+v", env)
	}

	// 空支付方式：本地拒绝
	_, env = doJSON(t, engine, http.MethodPut, "/api/v1/checkout/payment", "s1", gin.H{"payment_method": ""})
	if env.StatusCode != response.CodeBadRequest || env.Msg != "payment method is required" {
		t.Fatalf("expected payment required error, got %+v", env)
	}

	// 初始导航状态：只能进入 shipping
	_, env = doJSON(t, engine, http.MethodGet, "/api/v1/checkout/state", "s1", nil)
	state := env.Data["state"].(map[string]interface{})
	canEnter := state["can_enter"].(map[string]interface{})
	if canEnter["shipping"] != true || canEnter["payment"] != false || canEnter["place_order"] != false {
		t.Fatalf("unexpected guards: %+v", canEnter)
	}
}

func TestPlaceOrderOverHTTP(t *testing.T) {
	engine := newTestEngine(map[string]int{"x": 10})

	if _, env := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "s1", gin.H{"slug": "x"}); env.StatusCode != response.CodeOK {
		t.Fatalf("add failed: %+v", env)
	}
	if _, env := doJSON(t, engine, http.MethodPut, "/api/v1/checkout/shipping", "s1", gin.H{
		"full_name": "A", "address": "B", "city": "C", "postal_code": "D", "country": "E",
	}); env.StatusCode != response.CodeOK {
		t.Fatalf("shipping failed: %+v", env)
	}
	if _, env := doJSON(t, engine, http.MethodPut, "/api/v1/checkout/payment", "s1", gin.H{
		"payment_method": "Cash On Delivery",
	}); env.StatusCode != response.CodeOK {
		t.Fatalf("payment failed: %+v", env)
	}

	_, env := doJSON(t, engine, http.MethodPost, "/api/v1/checkout/place-order", "s1", gin.H{})
	if env.StatusCode != response.CodeOK {
		t.Fatalf("place order failed: %+v", env)
	}
	order := env.Data["order"].(map[string]interface{})
	if order["order_no"] == "" {
		t.Fatalf("expected order_no, got %+v", order)
	}

	// 下单后行项清空，支付方式按默认策略保留
	_, env = doJSON(t, engine, http.MethodGet, "/api/v1/cart", "s1", nil)
	if got := env.Data["item_count"].(float64); got != 0 {
		t.Fatalf("expected empty cart after placement, got %v", got)
	}

	// 购物车已空：重复下单被拒绝
	_, env = doJSON(t, engine, http.MethodPost, "/api/v1/checkout/place-order", "s1", gin.H{})
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected rejection on empty cart, got %+v", env)
	}
}
