package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmynk/urbanthek/internal/models"
)

// ReadFile reads a menu seed: a JSON array of items in display order.
// Prices are decimal strings or numbers; null or a missing key means the
// portion is not offered.
func ReadFile(path string) ([]models.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	for i, item := range items {
		if item.ID == "" || item.Name == "" {
			return nil, fmt.Errorf("menu item %d: id and name are required", i)
		}
	}
	return items, nil
}
