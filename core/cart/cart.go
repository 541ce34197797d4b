// Package cart maintains the pending selection of products and quantities
// prior to checkout.
package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/storage"
)

type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart aggregates items keyed by product identity: at most one entry per
// product id, each with quantity >= 1. Every mutation persists the full
// snapshot, so the cart survives a restart but not a storage clear.
type Cart struct {
	storage storage.Store

	mu    sync.Mutex
	items []Item
}

func New(sto storage.Store) *Cart {
	return &Cart{storage: sto}
}

func (c *Cart) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.storage.Get(storage.KeyCart, &c.items)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return fmt.Errorf("loading cart: %w", err)
	}
	return nil
}

func (c *Cart) persist() error {
	if err := c.storage.Set(storage.KeyCart, c.items); err != nil {
		return fmt.Errorf("persisting cart: %w", err)
	}
	return nil
}

// Add inserts the product with the given quantity, or increments the
// existing entry. Quantities below 1 are rejected. Stock is not checked
// here; that stays with the caller.
func (c *Cart) Add(p catalog.Product, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += quantity
			return c.persist()
		}
	}

	c.items = append(c.items, Item{Product: p, Quantity: quantity})
	return c.persist()
}

// UpdateQuantity sets the quantity exactly; anything below 1 removes the
// entry instead of keeping a zero-quantity item around.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		return c.remove(productID)
	}

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return c.persist()
		}
	}
	return nil
}

// Remove deletes the entry if present, and is a no-op otherwise.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(productID)
}

func (c *Cart) remove(productID string) error {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// Clear empties the cart; called after a successful checkout.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	return c.persist()
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var tot float64
	for _, it := range c.items {
		tot += it.Product.Price * float64(it.Quantity)
	}
	return tot
}
