package cart

import (
	"errors"
	"testing"

	"github.com/amazona-next/internal/models"
)

func testItem(slug string, quantity int) Item {
	return Item{
		ProductID:    1,
		Slug:         slug,
		Name:         "Test " + slug,
		Image:        "/images/" + slug + ".jpg",
		Price:        models.NewMoneyFromFloat(9.99),
		Quantity:     quantity,
		CountInStock: 10,
	}
}

func TestApplyAddItemAppendsNewSlug(t *testing.T) {
	agg, err := Apply(NewAggregate(), AddItem(testItem("x", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	if len(agg.CartItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(agg.CartItems))
	}
	if agg.CartItems[0].Slug != "x" || agg.CartItems[0].Quantity != 1 {
		t.Fatalf("unexpected item: %+v", agg.CartItems[0])
	}
}

func TestApplyAddItemMergesExistingSlug(t *testing.T) {
	agg := NewAggregate()
	var err error
	agg, err = Apply(agg, AddItem(testItem("a", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	agg, err = Apply(agg, AddItem(testItem("b", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	// 调用方已把数量累加到 2
	agg, err = Apply(agg, AddItem(testItem("a", 2)))
	if err != nil {
		t.Fatalf("apply merge failed: %v", err)
	}

	if len(agg.CartItems) != 2 {
		t.Fatalf("expected 2 items after merge, got %d", len(agg.CartItems))
	}
	// 合并保持插入顺序
	if agg.CartItems[0].Slug != "a" || agg.CartItems[0].Quantity != 2 {
		t.Fatalf("unexpected merged item: %+v", agg.CartItems[0])
	}
	if agg.CartItems[1].Slug != "b" {
		t.Fatalf("expected b to keep its position, got %+v", agg.CartItems[1])
	}
}

func TestApplyAddItemDoesNotMutateInput(t *testing.T) {
	base, err := Apply(NewAggregate(), AddItem(testItem("a", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	next, err := Apply(base, AddItem(testItem("a", 2)))
	if err != nil {
		t.Fatalf("apply merge failed: %v", err)
	}
	if base.CartItems[0].Quantity != 1 {
		t.Fatalf("input aggregate mutated: %+v", base.CartItems[0])
	}
	if next.CartItems[0].Quantity != 2 {
		t.Fatalf("output aggregate wrong: %+v", next.CartItems[0])
	}
}

func TestApplyRemoveItemIsIdempotent(t *testing.T) {
	agg, err := Apply(NewAggregate(), AddItem(testItem("x", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	agg, err = Apply(agg, RemoveItem("x"))
	if err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	agg, err = Apply(agg, RemoveItem("x"))
	if err != nil {
		t.Fatalf("second remove should be a no-op, got: %v", err)
	}
	if len(agg.CartItems) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(agg.CartItems))
	}
}

func TestApplyCartResetYieldsCanonicalEmpty(t *testing.T) {
	agg := NewAggregate()
	var err error
	agg, err = Apply(agg, AddItem(testItem("x", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	agg, err = Apply(agg, SaveShippingAddress(ShippingAddress{
		FullName: "A", Address: "B", City: "C", PostalCode: "D", Country: "E",
	}))
	if err != nil {
		t.Fatalf("apply save address failed: %v", err)
	}
	agg, err = Apply(agg, SavePaymentMethod("PayPal"))
	if err != nil {
		t.Fatalf("apply save method failed: %v", err)
	}

	agg, err = Apply(agg, Reset())
	if err != nil {
		t.Fatalf("apply reset failed: %v", err)
	}
	if len(agg.CartItems) != 0 {
		t.Fatalf("expected no items after reset")
	}
	if !agg.ShippingAddress.Empty() {
		t.Fatalf("expected empty address after reset, got %+v", agg.ShippingAddress)
	}
	if agg.PaymentMethod != "" {
		t.Fatalf("expected unset payment method after reset, got %q", agg.PaymentMethod)
	}
}

func TestApplyClearItemsKeepsAddressAndMethod(t *testing.T) {
	agg := NewAggregate()
	var err error
	agg, err = Apply(agg, AddItem(testItem("x", 3)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	address := ShippingAddress{FullName: "A", Address: "B", City: "C", PostalCode: "D", Country: "E"}
	agg, err = Apply(agg, SaveShippingAddress(address))
	if err != nil {
		t.Fatalf("apply save address failed: %v", err)
	}
	agg, err = Apply(agg, SavePaymentMethod("Stripe"))
	if err != nil {
		t.Fatalf("apply save method failed: %v", err)
	}

	agg, err = Apply(agg, ClearItems())
	if err != nil {
		t.Fatalf("apply clear failed: %v", err)
	}
	if len(agg.CartItems) != 0 {
		t.Fatalf("expected items cleared")
	}
	if agg.ShippingAddress != address {
		t.Fatalf("address should survive clear, got %+v", agg.ShippingAddress)
	}
	if agg.PaymentMethod != "Stripe" {
		t.Fatalf("payment method should survive clear, got %q", agg.PaymentMethod)
	}
}

func TestApplySaveShippingAddressReplacesWholesale(t *testing.T) {
	first := ShippingAddress{FullName: "A", Address: "B", City: "C", PostalCode: "D", Country: "E"}
	second := ShippingAddress{FullName: "F", Address: "G", City: "H", PostalCode: "I", Country: "J"}

	agg, err := Apply(NewAggregate(), SaveShippingAddress(first))
	if err != nil {
		t.Fatalf("apply save address failed: %v", err)
	}
	agg, err = Apply(agg, SaveShippingAddress(second))
	if err != nil {
		t.Fatalf("apply save address failed: %v", err)
	}
	if agg.ShippingAddress != second {
		t.Fatalf("expected wholesale replacement, got %+v", agg.ShippingAddress)
	}
}

func TestApplyUnknownActionReturnsError(t *testing.T) {
	before, err := Apply(NewAggregate(), AddItem(testItem("x", 1)))
	if err != nil {
		t.Fatalf("apply add failed: %v", err)
	}
	after, err := Apply(before, Action{Type: "CART_EXPLODE"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if len(after.CartItems) != 1 || after.CartItems[0].Slug != "x" {
		t.Fatalf("unknown action must not mutate the aggregate: %+v", after)
	}
}
