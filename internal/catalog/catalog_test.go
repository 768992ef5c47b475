package catalog

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mmynk/urbanthek/internal/models"
)

func menu(names ...string) []models.MenuItem {
	items := make([]models.MenuItem, len(names))
	for i, name := range names {
		items[i] = models.MenuItem{ID: string(rune('a' + i)), Name: name}
	}
	return items
}

func TestLookup(t *testing.T) {
	c := New([]models.MenuItem{
		{ID: "1", Name: "Dal"},
		{ID: "2", Name: "Roti"},
		{ID: "1", Name: "Duplicate Dal"},
	})

	item, ok := c.Lookup("1")
	if !ok {
		t.Fatal("expected item 1 to be found")
	}
	if item.Name != "Dal" {
		t.Errorf("Lookup(1) = %q, want first occurrence %q", item.Name, "Dal")
	}

	if _, ok := c.Lookup("99"); ok {
		t.Error("expected lookup miss for unknown id")
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Lookup("1"); ok {
		t.Error("expected lookup miss on nil catalog")
	}
	if len(c.Items()) != 0 {
		t.Error("expected no items on nil catalog")
	}
}

func TestItemsIsACopy(t *testing.T) {
	c := New(menu("Dal"))
	items := c.Items()
	items[0].Name = "changed"

	if got, _ := c.Lookup("a"); got.Name != "Dal" {
		t.Errorf("catalog mutated through Items(): got %q", got.Name)
	}
}

func TestSearch(t *testing.T) {
	c := New(menu("Paneer Tikka", "Dal Makhani", "Chicken Tikka", "Roti"))

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"Paneer Tikka", "Dal Makhani", "Chicken Tikka", "Roti"}},
		{"tikka", []string{"Paneer Tikka", "Chicken Tikka"}},
		{"  TIKKA  ", []string{"Paneer Tikka", "Chicken Tikka"}},
		{"biryani", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := c.Search(tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d items, want %d", tt.term, len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Name != tt.want[i] {
					t.Errorf("Search(%q)[%d] = %q, want %q", tt.term, i, got[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestPage(t *testing.T) {
	items := make([]models.MenuItem, 45)

	tests := []struct {
		name          string
		offset, limit int
		wantLen       int
		wantRemaining int
	}{
		{"first page default size", 0, 0, 20, 25},
		{"second page", 20, 20, 20, 5},
		{"last partial page", 40, 20, 5, 0},
		{"offset past end", 50, 20, 0, 0},
		{"negative offset", -3, 10, 10, 35},
		{"huge limit", 1, math.MaxInt, 44, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, remaining := Page(items, tt.offset, tt.limit)
			if len(page) != tt.wantLen {
				t.Errorf("len(page) = %d, want %d", len(page), tt.wantLen)
			}
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %d, want %d", remaining, tt.wantRemaining)
			}
		})
	}
}

type stubSource struct {
	items []models.MenuItem
	err   error
}

func (s stubSource) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.items, s.err
}

func TestLoad(t *testing.T) {
	c := Load(context.Background(), stubSource{items: menu("Dal", "Roti")})
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c = Load(context.Background(), stubSource{err: errors.New("connection refused")})
	if c.Len() != 0 {
		t.Errorf("failed load should give an empty catalog, got %d items", c.Len())
	}
}
