package test

import (
	"math"
	"net/http"
	"testing"

	"github.com/mayatech/storefront/core/checkout"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/core/order"
)

type checkoutTest struct {
	*TestEnv
}

func TestCheckout(t *testing.T) {
	env := NewTestEnv(t)

	ot := &checkoutTest{env}
	rt := &cartTest{env}

	req := checkout.Request{
		ShippingAddress: order.ShippingAddress{
			Name:    "Hanna Girma",
			Address: "Churchill Avenue 4",
			City:    "Addis Ababa",
			ZipCode: "1000",
			Country: "Ethiopia",
		},
		PaymentMethod: order.CashOnDelivery,
	}

	if code := ot.request(t, http.MethodPost, "/checkout", req, nil); code != http.StatusUnauthorized {
		t.Fatalf("checkout while logged out: status %d", code)
	}

	ot.register(t, "hanna@example.com", "s3cret", "Hanna Girma")
	defer ot.logout(t)

	// nothing in the cart yet
	if code := ot.request(t, http.MethodPost, "/checkout", req, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("checkout with empty cart: status %d", code)
	}

	if code := rt.addItem(t, "p101", 2); code != http.StatusNoContent {
		t.Fatalf("adding p101: status %d", code)
	}

	// invalid payment details never touch the cart
	bad := req
	bad.PaymentMethod = order.Visa
	bad.Card = &checkout.CardDetails{CardNumber: "123", ExpiryDate: "12/26", CVV: "123"}
	if code := ot.request(t, http.MethodPost, "/checkout", bad, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("checkout with bad card: status %d", code)
	}
	if v := rt.show(t); v.TotalItems != 2 {
		t.Fatalf("cart changed by failed checkout: %d items", v.TotalItems)
	}

	var ord order.Order
	if code := ot.request(t, http.MethodPost, "/checkout", req, &ord); code != http.StatusCreated {
		t.Fatalf("checkout: status %d", code)
	}

	if ord.ID != "o1001" {
		t.Fatalf("first order got id %q", ord.ID)
	}
	if ord.Status != order.Pending {
		t.Fatalf("fresh order has status %q", ord.Status)
	}
	if math.Abs(ord.TotalPrice-49.98) > 1e-9 {
		t.Fatalf("order total is %.2f", ord.TotalPrice)
	}
	if len(ord.Items) != 1 || ord.Items[0].ProductID != "p101" || ord.Items[0].Quantity != 2 {
		t.Fatalf("order items: %+v", ord.Items)
	}

	// the cart is emptied by a successful checkout
	if v := rt.show(t); v.TotalItems != 0 {
		t.Fatalf("cart not cleared: %d items", v.TotalItems)
	}

	var history []order.Order
	if code := ot.request(t, http.MethodGet, "/users/current/orders", nil, &history); code != http.StatusOK {
		t.Fatalf("listing orders: status %d", code)
	}
	if len(history) != 1 || history[0].ID != ord.ID {
		t.Fatalf("order history: %+v", history)
	}

	ot.testCardCheckout(t, rt)
	ot.testNotifications(t)
}

func (ot *checkoutTest) testCardCheckout(t *testing.T, rt *cartTest) {
	if code := rt.addItem(t, "p105", 1); code != http.StatusNoContent {
		t.Fatalf("adding p105: status %d", code)
	}

	req := checkout.Request{
		ShippingAddress: order.ShippingAddress{
			Name:    "Hanna Girma",
			Address: "Churchill Avenue 4",
			City:    "Addis Ababa",
			ZipCode: "1000",
			Country: "Ethiopia",
		},
		PaymentMethod: order.Visa,
		Card: &checkout.CardDetails{
			CardNumber: "4111 1111 1111 1111",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	}

	var ord order.Order
	if code := ot.request(t, http.MethodPost, "/checkout", req, &ord); code != http.StatusCreated {
		t.Fatalf("card checkout: status %d", code)
	}
	if ord.ID != "o1002" {
		t.Fatalf("second order got id %q", ord.ID)
	}
	if ord.PaymentMethod != order.Visa {
		t.Fatalf("order recorded method %q", ord.PaymentMethod)
	}
}

func (ot *checkoutTest) testNotifications(t *testing.T) {
	var msgs []notify.Message
	if code := ot.request(t, http.MethodGet, "/notifications", nil, &msgs); code != http.StatusOK {
		t.Fatalf("listing notifications: status %d", code)
	}

	var found bool
	for _, m := range msgs {
		if m.Severity == notify.Success && m.Text == "Order o1002 placed successfully!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no success toast for o1002 among %d messages", len(msgs))
	}
}
