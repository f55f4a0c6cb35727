package orders

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCheckoutRequest_Validate(t *testing.T) {
	valid := CheckoutRequest{
		RestaurantID:    uuid.New(),
		Items:           []CartItem{{ID: "m1", Name: "Burger", Price: 9.5, Quantity: 2}},
		CustomerName:    "Alice",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
	}

	cases := []struct {
		name    string
		mutate  func(*CheckoutRequest)
		wantErr bool
	}{
		{"valid", func(r *CheckoutRequest) {}, false},
		{"missing restaurant", func(r *CheckoutRequest) { r.RestaurantID = uuid.Nil }, true},
		{"empty cart", func(r *CheckoutRequest) { r.Items = nil }, true},
		{"zero quantity", func(r *CheckoutRequest) { r.Items = []CartItem{{Price: 5, Quantity: 0}} }, true},
		{"negative price", func(r *CheckoutRequest) { r.Items = []CartItem{{Price: -1, Quantity: 1}} }, true},
		{"missing name", func(r *CheckoutRequest) { r.CustomerName = "" }, true},
		{"missing address", func(r *CheckoutRequest) { r.CustomerAddress = "" }, true},
		{"missing phone", func(r *CheckoutRequest) { r.CustomerPhone = "" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTotalOf(t *testing.T) {
	items := []CartItem{
		{Price: 9.99, Quantity: 3},
		{Price: 2.5, Quantity: 1},
	}
	if got := totalOf(items); got != 32.47 {
		t.Errorf("totalOf() = %v, want 32.47", got)
	}

	// Floating point drift must round away at cent precision.
	drifty := []CartItem{{Price: 0.1, Quantity: 3}}
	if got := totalOf(drifty); got != 0.3 {
		t.Errorf("totalOf() = %v, want 0.3", got)
	}
}

func TestNewOrderNumber(t *testing.T) {
	id := uuid.MustParse("7f3a9c2b-0000-0000-0000-000000000000")
	if got := newOrderNumber(id); got != "RB-7F3A9C2B" {
		t.Errorf("newOrderNumber() = %q, want RB-7F3A9C2B", got)
	}
	if !strings.HasPrefix(newOrderNumber(uuid.New()), "RB-") {
		t.Error("order numbers must carry the RB- prefix")
	}
}
