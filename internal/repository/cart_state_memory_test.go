package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/amazona-next/internal/cart"
	"github.com/amazona-next/internal/models"
)

func TestMemoryCartStateRoundTrip(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	ctx := context.Background()

	cases := []struct {
		name string
		agg  cart.Aggregate
	}{
		{name: "empty", agg: cart.NewAggregate()},
		{
			name: "populated_address",
			agg: cart.Aggregate{
				CartItems: []cart.Item{
					{ProductID: 1, Slug: "free-shirt", Name: "Free Shirt",
						Price: models.NewMoneyFromFloat(70), Quantity: 2, CountInStock: 20},
				},
				ShippingAddress: cart.ShippingAddress{
					FullName: "A", Address: "B", City: "C", PostalCode: "D", Country: "E",
				},
			},
		},
		{name: "paypal", agg: cart.Aggregate{CartItems: []cart.Item{}, PaymentMethod: "PayPal"}},
		{name: "stripe", agg: cart.Aggregate{CartItems: []cart.Item{}, PaymentMethod: "Stripe"}},
		{name: "cod", agg: cart.Aggregate{CartItems: []cart.Item{}, PaymentMethod: "Cash On Delivery"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := repo.Save(ctx, tc.name, tc.agg); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			restored, found, err := repo.Load(ctx, tc.name)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if !found {
				t.Fatalf("expected aggregate to be found")
			}
			if len(restored.CartItems) != len(tc.agg.CartItems) {
				t.Fatalf("item count changed: got %d want %d", len(restored.CartItems), len(tc.agg.CartItems))
			}
			for i := range tc.agg.CartItems {
				if restored.CartItems[i].Quantity != tc.agg.CartItems[i].Quantity ||
					restored.CartItems[i].CountInStock != tc.agg.CartItems[i].CountInStock {
					t.Fatalf("numeric fields changed on round-trip: %+v", restored.CartItems[i])
				}
			}
			if !reflect.DeepEqual(restored.ShippingAddress, tc.agg.ShippingAddress) {
				t.Fatalf("address changed: %+v", restored.ShippingAddress)
			}
			if restored.PaymentMethod != tc.agg.PaymentMethod {
				t.Fatalf("payment method changed: %q", restored.PaymentMethod)
			}
		})
	}
}

func TestMemoryCartStateLoadMissReturnsEmpty(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	agg, found, err := repo.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if found {
		t.Fatalf("expected miss")
	}
	if len(agg.CartItems) != 0 || !agg.ShippingAddress.Empty() || agg.PaymentMethod != "" {
		t.Fatalf("miss must return canonical empty aggregate: %+v", agg)
	}
}

func TestMemoryCartStateDelete(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	ctx := context.Background()
	if err := repo.Save(ctx, "s1", cart.NewAggregate()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, found, err := repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if found {
		t.Fatalf("expected aggregate to be deleted")
	}
}
