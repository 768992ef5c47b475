// Package postgres reads the menu from and records orders in the hosted
// PostgreSQL backend.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmynk/urbanthek/internal/models"
	"github.com/mmynk/urbanthek/internal/storage"
)

var (
	_ storage.CatalogSource = (*Store)(nil)
	_ storage.OrderSink     = (*Store)(nil)
)

// Store is backed by the food_items and orders tables.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and checks the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute
	return connect(ctx, cfg)
}

func connect(ctx context.Context, cfg *pgxpool.Config) (*Store, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// ListMenuItems returns the menu with pictured dishes first.
// Prices are read as text so they scan into exact decimals.
func (s *Store) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, name, COALESCE(category, ''), "full"::text, half::text, COALESCE(image_url, '')
		FROM food_items
		ORDER BY image_url DESC NULLS LAST
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MenuItem, error) {
		var item models.MenuItem
		err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Full, &item.Half, &item.ImageURL)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan menu items: %w", err)
	}

	return items, nil
}

// CreateOrder inserts the order and takes the ID the database assigns.
// The cart snapshot is stored as a jsonb object keyed "<id>_<portion>".
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.CreatedAt == 0 {
		order.CreatedAt = time.Now().Unix()
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO orders (bill_no, customer_name, total_amount, items)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id::text
	`, order.BillNumber, order.CustomerName, order.Total.String(), items).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}
