package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/api/weberr"
	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/validate"
)

type ItemNew struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type QuantityUp struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type view struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func HandleShow(c *Cart) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		v := view{
			Items:      c.Items(),
			TotalItems: c.TotalItems(),
			TotalPrice: c.TotalPrice(),
		}
		return web.Respond(ctx, w, v, http.StatusOK)
	}
}

func HandleCreateItem(c *Cart, store *catalog.Store, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Unprocessable(err)
		}

		p, err := store.Product(in.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return weberr.NotFound(fmt.Errorf("product[%s]: %w", in.ProductID, err))
			}
			return fmt.Errorf("fetching product[%s]: %w", in.ProductID, err)
		}

		// stock is enforced here, at the presentation boundary
		if in.Quantity > p.Stock {
			err := fmt.Errorf("only %d of %q in stock", p.Stock, p.Name)
			return weberr.Unprocessable(err)
		}

		if err := c.Add(p, in.Quantity); err != nil {
			return fmt.Errorf("adding product[%s] to cart: %w", p.ID, err)
		}

		toasts.Push(notify.Success, fmt.Sprintf("%s added to your cart.", p.Name))
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleUpdateItem(c *Cart) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		var in QuantityUp
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Unprocessable(err)
		}

		if err := c.UpdateQuantity(productID, in.Quantity); err != nil {
			return fmt.Errorf("updating quantity of product[%s]: %w", productID, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleDeleteItem(c *Cart) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		if err := c.Remove(productID); err != nil {
			return fmt.Errorf("removing product[%s] from cart: %w", productID, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleDelete(c *Cart) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := c.Clear(); err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
