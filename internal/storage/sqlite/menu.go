package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/urbanthek/internal/models"
)

// ListMenuItems returns the menu with pictured dishes first.
func (s *SQLiteStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, full_price, half_price, image_url
		FROM food_items
		ORDER BY image_url DESC NULLS LAST, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		var imageURL sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Full, &item.Half, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.ImageURL = imageURL.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

// ReplaceMenu swaps the whole menu for items in one transaction.
func (s *SQLiteStore) ReplaceMenu(ctx context.Context, items []models.MenuItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM food_items"); err != nil {
		return fmt.Errorf("failed to clear menu: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO food_items (id, name, category, full_price, half_price, image_url) VALUES (?, ?, ?, ?, ?, NULLIF(?, ''))",
			item.ID, item.Name, item.Category, item.Full, item.Half, item.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("failed to insert menu item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
