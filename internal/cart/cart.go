// Package cart implements the customer's cart: a set of (item, portion)
// counters kept in the order they were first added.
package cart

import (
	"errors"

	"github.com/mmynk/urbanthek/internal/models"
)

// ErrClosed is returned when an item is added outside opening hours.
var ErrClosed = errors.New("store is currently closed")

// Availability reports whether new items may be added.
type Availability interface {
	IsOpen() bool
}

// Cart maps (item, portion) to a positive quantity.
// A quantity never drops to zero inside the cart; the entry is removed instead.
type Cart struct {
	gate  Availability
	order []models.CartKey
	qty   map[models.CartKey]int
}

// New creates an empty cart gated by the given availability check.
// A nil gate means always open.
func New(gate Availability) *Cart {
	return &Cart{gate: gate, qty: make(map[models.CartKey]int)}
}

// Add increments the counter for itemID and portion, creating it if absent.
// When the store is closed the cart is left unchanged and ErrClosed is returned.
func (c *Cart) Add(itemID string, portion models.Portion) error {
	if c.gate != nil && !c.gate.IsOpen() {
		return ErrClosed
	}
	key := models.CartKey{ItemID: itemID, Portion: portion}
	if _, exists := c.qty[key]; !exists {
		c.order = append(c.order, key)
	}
	c.qty[key]++
	return nil
}

// Remove decrements the counter for itemID and portion, deleting it once it
// reaches zero. Removing an absent entry is a no-op. Removal is allowed even
// while the store is closed.
func (c *Cart) Remove(itemID string, portion models.Portion) {
	key := models.CartKey{ItemID: itemID, Portion: portion}
	n, exists := c.qty[key]
	if !exists {
		return
	}
	if n-1 > 0 {
		c.qty[key] = n - 1
		return
	}
	delete(c.qty, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.order = nil
	c.qty = make(map[models.CartKey]int)
}

// Quantity returns the count for itemID and portion, zero when absent.
func (c *Cart) Quantity(itemID string, portion models.Portion) int {
	return c.qty[models.CartKey{ItemID: itemID, Portion: portion}]
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.order)
}

// Count returns the total number of units across all entries.
func (c *Cart) Count() int {
	total := 0
	for _, n := range c.qty {
		total += n
	}
	return total
}

// Entries returns the cart contents in insertion order.
func (c *Cart) Entries() models.CartSnapshot {
	out := make(models.CartSnapshot, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, models.CartEntry{Key: key, Quantity: c.qty[key]})
	}
	return out
}
