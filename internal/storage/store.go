// Package storage provides abstractions for the storefront's external data.
package storage

import (
	"context"

	"github.com/mmynk/urbanthek/internal/models"
)

// CatalogSource is the read-only menu query, consumed once at startup.
type CatalogSource interface {
	// ListMenuItems returns every menu item in display order.
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
}

// OrderSink receives completed orders. It is append-only.
type OrderSink interface {
	// CreateOrder persists the order. The order.ID and order.CreatedAt
	// fields are populated by the store when empty.
	CreateOrder(ctx context.Context, order *models.Order) error
}

// ProfileStore keeps the customer details and bill number between sessions.
type ProfileStore interface {
	// LoadProfile returns the saved profile, or a fresh one starting at
	// models.FirstBillNumber when nothing has been saved yet.
	LoadProfile(ctx context.Context) (*models.Profile, error)

	// SaveProfile replaces the saved profile.
	SaveProfile(ctx context.Context, profile *models.Profile) error
}

// Store is a backend that serves all three concerns.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the session or service layers.
type Store interface {
	CatalogSource
	OrderSink
	ProfileStore

	// Close releases any resources held by the store.
	Close() error
}
