// Package catalog holds the menu as loaded from the backend.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/urbanthek/internal/models"
)

// DefaultPageSize is how many dishes one "load more" step reveals.
const DefaultPageSize = 20

// Catalog is an ordered, read-only set of menu items.
// The zero value is an empty catalog.
type Catalog struct {
	items []models.MenuItem
	byID  map[string]int
}

// New builds a catalog preserving the given order. When two items share an
// ID the first one wins lookups.
func New(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items: make([]models.MenuItem, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		if _, exists := c.byID[item.ID]; !exists {
			c.byID[item.ID] = i
		}
	}
	return c
}

// Source lists the menu from the backend.
type Source interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
}

// Load fetches the menu once. A failed fetch is logged and yields an empty
// catalog; it is not retried.
func Load(ctx context.Context, src Source) *Catalog {
	items, err := src.ListMenuItems(ctx)
	if err != nil {
		slog.Error("Failed to load menu", "error", err)
		return New(nil)
	}
	slog.Info("Menu loaded", "items", len(items))
	return New(items)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []models.MenuItem {
	if c == nil {
		return nil
	}
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by ID. A miss is not an error: items can disappear
// from the menu while still referenced by a cart.
func (c *Catalog) Lookup(id string) (models.MenuItem, bool) {
	if c == nil {
		return models.MenuItem{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return c.items[i], true
}

// Search returns the items whose name contains term, ignoring case and
// surrounding whitespace. An empty term matches everything.
func (c *Catalog) Search(term string) []models.MenuItem {
	if c == nil {
		return nil
	}
	term = strings.ToLower(strings.TrimSpace(term))
	var out []models.MenuItem
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			out = append(out, item)
		}
	}
	return out
}

// Page slices items for incremental display. It returns the visible window
// and how many items remain after it. A non-positive limit uses DefaultPageSize.
func Page(items []models.MenuItem, offset, limit int) ([]models.MenuItem, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil, 0
	}
	if limit > len(items)-offset {
		limit = len(items) - offset
	}
	end := offset + limit
	return items[offset:end], len(items) - end
}
