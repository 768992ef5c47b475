package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/urbanthek/internal/models"
)

// CreateOrder persists an order and its cart snapshot.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt == 0 {
		order.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders (id, bill_no, customer_name, total_amount, created_at) VALUES (?, ?, ?, ?, ?)",
		order.ID, order.BillNumber, order.CustomerName, order.Total, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i, entry := range order.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, position, item_id, portion, quantity) VALUES (?, ?, ?, ?, ?)",
			order.ID, i, entry.Key.ItemID, string(entry.Key.Portion), entry.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOrder retrieves an order by ID with its items in cart order.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order := &models.Order{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, bill_no, customer_name, total_amount, created_at FROM orders WHERE id = ?",
		orderID,
	).Scan(&order.ID, &order.BillNumber, &order.CustomerName, &order.Total, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found: %s", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id, portion, quantity FROM order_items WHERE order_id = ? ORDER BY position",
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.CartEntry
		var portion string
		if err := rows.Scan(&entry.Key.ItemID, &portion, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		entry.Key.Portion = models.Portion(portion)
		order.Items = append(order.Items, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return order, nil
}
