package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/urbanthek/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "urbanthek-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestMenu(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("empty menu", func(t *testing.T) {
		items, err := store.ListMenuItems(ctx)
		if err != nil {
			t.Fatalf("ListMenuItems failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty menu, got %d items", len(items))
		}
	})

	t.Run("ReplaceMenu round trip", func(t *testing.T) {
		err := store.ReplaceMenu(ctx, []models.MenuItem{
			{ID: "1", Name: "Dal", Category: "Main", Full: price("200"), Half: price("120")},
			{ID: "2", Name: "Roti", Category: "Breads", Full: price("15.50"), ImageURL: "https://img/roti.jpg"},
			{ID: "3", Name: "Lassi", Category: "Drinks", Half: price("60"), ImageURL: "https://img/lassi.jpg"},
		})
		if err != nil {
			t.Fatalf("ReplaceMenu failed: %v", err)
		}

		items, err := store.ListMenuItems(ctx)
		if err != nil {
			t.Fatalf("ListMenuItems failed: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(items))
		}

		// pictured dishes first, image_url descending, unpictured last
		wantOrder := []string{"2", "3", "1"}
		for i, item := range items {
			if item.ID != wantOrder[i] {
				t.Errorf("items[%d].ID = %s, want %s", i, item.ID, wantOrder[i])
			}
		}

		roti := items[0]
		if !roti.Full.Valid || !roti.Full.Decimal.Equal(decimal.RequireFromString("15.5")) {
			t.Errorf("Roti full price = %+v, want 15.5", roti.Full)
		}
		if roti.Half.Valid {
			t.Errorf("Roti half price should be missing, got %s", roti.Half.Decimal)
		}
		if roti.ImageURL != "https://img/roti.jpg" {
			t.Errorf("ImageURL = %q", roti.ImageURL)
		}
		if dal := items[2]; dal.ImageURL != "" || dal.Category != "Main" {
			t.Errorf("Dal = %+v", dal)
		}
	})

	t.Run("ReplaceMenu drops old items", func(t *testing.T) {
		if err := store.ReplaceMenu(ctx, []models.MenuItem{{ID: "9", Name: "Biryani", Full: price("350")}}); err != nil {
			t.Fatalf("ReplaceMenu failed: %v", err)
		}
		items, err := store.ListMenuItems(ctx)
		if err != nil {
			t.Fatalf("ListMenuItems failed: %v", err)
		}
		if len(items) != 1 || items[0].ID != "9" {
			t.Errorf("Expected only Biryani, got %+v", items)
		}
	})
}

func TestOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateOrder generates ID and timestamp", func(t *testing.T) {
		order := &models.Order{
			BillNumber:   1,
			CustomerName: "Asha",
			Total:        decimal.NewFromInt(430),
			Items: models.CartSnapshot{
				{Key: models.CartKey{ItemID: "1", Portion: models.PortionFull}, Quantity: 2},
			},
		}

		if err := store.CreateOrder(ctx, order); err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}
		if order.ID == "" {
			t.Error("Expected order ID to be generated")
		}
		if order.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetOrder retrieves complete order", func(t *testing.T) {
		original := &models.Order{
			BillNumber:   2,
			CustomerName: "Ravi",
			Total:        decimal.RequireFromString("1799.1"),
			Items: models.CartSnapshot{
				{Key: models.CartKey{ItemID: "3", Portion: models.PortionHalf}, Quantity: 1},
				{Key: models.CartKey{ItemID: "1", Portion: models.PortionFull}, Quantity: 4},
				{Key: models.CartKey{ItemID: "1", Portion: models.PortionHalf}, Quantity: 2},
			},
		}
		if err := store.CreateOrder(ctx, original); err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		retrieved, err := store.GetOrder(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetOrder failed: %v", err)
		}

		if retrieved.BillNumber != 2 || retrieved.CustomerName != "Ravi" {
			t.Errorf("header mismatch: %+v", retrieved)
		}
		if !retrieved.Total.Equal(original.Total) {
			t.Errorf("Total mismatch: got %s, want %s", retrieved.Total, original.Total)
		}
		if len(retrieved.Items) != len(original.Items) {
			t.Fatalf("Items count mismatch: got %d, want %d", len(retrieved.Items), len(original.Items))
		}
		for i := range original.Items {
			if retrieved.Items[i] != original.Items[i] {
				t.Errorf("Items[%d] = %+v, want %+v", i, retrieved.Items[i], original.Items[i])
			}
		}
	})

	t.Run("GetOrder returns error for nonexistent order", func(t *testing.T) {
		if _, err := store.GetOrder(ctx, "nonexistent-id"); err == nil {
			t.Error("Expected error for nonexistent order, got nil")
		}
	})
}

func TestProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p, err := store.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if p.BillNumber != models.FirstBillNumber || p.Customer != (models.CustomerDetails{}) {
		t.Errorf("Expected fresh profile, got %+v", p)
	}

	p.Customer = models.CustomerDetails{Name: "Asha", Phone: "9876543210", Address: "12 Lake Road", Notes: "Ring twice"}
	p.BillNumber = 17
	if err := store.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	p.BillNumber = 18
	if err := store.SaveProfile(ctx, p); err != nil {
		t.Fatalf("second SaveProfile failed: %v", err)
	}

	loaded, err := store.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded.BillNumber != 18 {
		t.Errorf("BillNumber = %d, want 18", loaded.BillNumber)
	}
	if loaded.Customer != p.Customer {
		t.Errorf("Customer = %+v, want %+v", loaded.Customer, p.Customer)
	}
}
