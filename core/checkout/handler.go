package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/api/weberr"
	"github.com/mayatech/storefront/core/cart"
	"github.com/mayatech/storefront/core/claims"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/core/order"
	"github.com/mayatech/storefront/core/user"
)

// HandlePlaceOrder validates the submission, snapshots the cart into an
// immutable order, appends it to the user's history and clears the cart.
// The latency stands in for a payment round trip; nothing is charged.
func HandlePlaceOrder(users *user.Store, c *cart.Cart, toasts *notify.Center, latency time.Duration) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if _, err := claims.Get(ctx); err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		var in Request
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := Validate(in); err != nil {
			toasts.Push(notify.Error, err.Error())
			return weberr.Unprocessable(err)
		}

		items := c.Items()
		if len(items) == 0 {
			err := errors.New("no items to checkout")
			return weberr.Unprocessable(err)
		}

		if latency > 0 {
			select {
			case <-time.After(latency):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		snapshot := make([]order.Item, 0, len(items))
		for _, it := range items {
			snapshot = append(snapshot, order.Item{
				ProductID: it.Product.ID,
				Name:      it.Product.Name,
				Price:     it.Product.Price,
				ImageURL:  it.Product.ImageURL,
				Quantity:  it.Quantity,
			})
		}

		ord := order.Order{
			ID:              users.NextOrderID(),
			Items:           snapshot,
			TotalPrice:      c.TotalPrice(),
			OrderDate:       time.Now().UTC(),
			Status:          order.Pending,
			PaymentMethod:   in.PaymentMethod,
			ShippingAddress: in.ShippingAddress,
		}

		if _, err := users.AddOrder(ord); err != nil {
			if errors.Is(err, user.ErrNotLoggedIn) {
				return weberr.NotAuthorized(err)
			}
			return fmt.Errorf("recording order[%s]: %w", ord.ID, err)
		}

		if err := c.Clear(); err != nil {
			return fmt.Errorf("clearing cart after order[%s]: %w", ord.ID, err)
		}

		toasts.Push(notify.Success, fmt.Sprintf("Order %s placed successfully!", ord.ID))
		return web.Respond(ctx, w, ord, http.StatusCreated)
	}
}
