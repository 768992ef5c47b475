package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/urbanthek/internal/catalog"
	"github.com/mmynk/urbanthek/internal/models"
)

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func entry(id string, p models.Portion, qty int) models.CartEntry {
	return models.CartEntry{Key: models.CartKey{ItemID: id, Portion: p}, Quantity: qty}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceScenario(t *testing.T) {
	c := catalog.New([]models.MenuItem{
		{ID: "1", Name: "Dal", Full: price(200), Half: price(120)},
	})

	r := Price(c, []models.CartEntry{entry("1", models.PortionFull, 2)})

	if !r.Subtotal.Equal(dec("400")) {
		t.Errorf("Subtotal = %s, want 400", r.Subtotal)
	}
	if r.DiscountPercent != 0 {
		t.Errorf("DiscountPercent = %d, want 0", r.DiscountPercent)
	}
	if !r.Total.Equal(dec("400")) {
		t.Errorf("Total = %s, want 400", r.Total)
	}
	if !r.FreeDelivery {
		t.Error("expected free delivery at 400")
	}
	if !r.Payable.Equal(dec("400")) {
		t.Errorf("Payable = %s, want 400", r.Payable)
	}
}

func TestSubtotalSkipsUnresolvable(t *testing.T) {
	c := catalog.New([]models.MenuItem{
		{ID: "1", Name: "Dal", Full: price(200), Half: price(120)},
		{ID: "2", Name: "Roti", Full: price(15)},
	})

	r := Price(c, []models.CartEntry{
		entry("1", models.PortionHalf, 3),    // 360
		entry("2", models.PortionFull, 4),    // 60
		entry("2", models.PortionHalf, 5),    // no half price: 0
		entry("gone", models.PortionFull, 9), // not on the menu: 0
	})

	if !r.Subtotal.Equal(dec("420")) {
		t.Errorf("Subtotal = %s, want 420", r.Subtotal)
	}
}

func TestDiscountTiers(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int
	}{
		{0, 0},
		{999, 0},
		{1000, 10},
		{1999, 10},
		{2000, 15},
		{5000, 15},
	}

	for _, tt := range tests {
		t.Run(decimal.NewFromInt(tt.subtotal).String(), func(t *testing.T) {
			if got := DiscountPercent(decimal.NewFromInt(tt.subtotal)); got != tt.want {
				t.Errorf("DiscountPercent(%d) = %d, want %d", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestDiscountIsExact(t *testing.T) {
	c := catalog.New([]models.MenuItem{{ID: "1", Name: "Thali", Full: price(1999)}})

	r := Price(c, []models.CartEntry{entry("1", models.PortionFull, 1)})

	// 10% of 1999 is 199.9; nothing gets rounded
	if !r.DiscountAmount.Equal(dec("199.9")) {
		t.Errorf("DiscountAmount = %s, want 199.9", r.DiscountAmount)
	}
	if !r.Total.Equal(dec("1799.1")) {
		t.Errorf("Total = %s, want 1799.1", r.Total)
	}
}

func TestDelivery(t *testing.T) {
	c := catalog.New([]models.MenuItem{{ID: "1", Name: "Unit", Full: price(1)}})

	tests := []struct {
		name          string
		qty           int
		wantCanOrder  bool
		wantFree      bool
		wantCharge    string
		wantPayable   string
		wantShortMin  string
		wantShortFree string
	}{
		{"below minimum", 298, false, false, "30", "328", "1", "101"},
		{"at minimum", 299, true, false, "30", "329", "0", "100"},
		{"paid delivery", 398, true, false, "30", "428", "0", "1"},
		{"free delivery threshold", 399, true, true, "0", "399", "0", "0"},
		{"mid order", 500, true, true, "0", "500", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Price(c, []models.CartEntry{entry("1", models.PortionFull, tt.qty)})
			if r.CanOrder != tt.wantCanOrder {
				t.Errorf("CanOrder = %v, want %v", r.CanOrder, tt.wantCanOrder)
			}
			if r.FreeDelivery != tt.wantFree {
				t.Errorf("FreeDelivery = %v, want %v", r.FreeDelivery, tt.wantFree)
			}
			if !r.DeliveryCharge.Equal(dec(tt.wantCharge)) {
				t.Errorf("DeliveryCharge = %s, want %s", r.DeliveryCharge, tt.wantCharge)
			}
			if !r.Payable.Equal(dec(tt.wantPayable)) {
				t.Errorf("Payable = %s, want %s", r.Payable, tt.wantPayable)
			}
			if !r.ShortOfMinimum().Equal(dec(tt.wantShortMin)) {
				t.Errorf("ShortOfMinimum = %s, want %s", r.ShortOfMinimum(), tt.wantShortMin)
			}
			if !r.ShortOfFreeDelivery().Equal(dec(tt.wantShortFree)) {
				t.Errorf("ShortOfFreeDelivery = %s, want %s", r.ShortOfFreeDelivery(), tt.wantShortFree)
			}
		})
	}
}

func TestDeliveryUsesPostDiscountTotal(t *testing.T) {
	rules := Rules{
		MinOrder:        dec("299"),
		FreeDeliveryMin: dec("1000"),
		DeliveryCharge:  dec("45"),
	}
	c := catalog.New([]models.MenuItem{{ID: "1", Name: "Platter", Full: price(1050)}})

	r := NewEngine(rules).Price(c, []models.CartEntry{entry("1", models.PortionFull, 1)})

	// subtotal 1050 earns 10%, total 945 falls under the free delivery mark
	if !r.Total.Equal(dec("945")) {
		t.Fatalf("Total = %s, want 945", r.Total)
	}
	if r.FreeDelivery {
		t.Error("free delivery must be judged on the discounted total")
	}
	if !r.Payable.Equal(dec("990")) {
		t.Errorf("Payable = %s, want 990", r.Payable)
	}
}

func TestPriceIsDeterministic(t *testing.T) {
	c := catalog.New([]models.MenuItem{
		{ID: "1", Name: "Dal", Full: price(200), Half: price(120)},
		{ID: "2", Name: "Biryani", Full: price(350)},
	})
	entries := []models.CartEntry{entry("2", models.PortionFull, 3), entry("1", models.PortionHalf, 1)}

	first := Price(c, entries)
	second := Price(c, entries)
	if !first.Payable.Equal(second.Payable) || !first.Subtotal.Equal(second.Subtotal) {
		t.Errorf("same input priced differently: %s vs %s", first.Payable, second.Payable)
	}
}

func TestEmptyCart(t *testing.T) {
	r := Price(catalog.New(nil), nil)
	if !r.Subtotal.IsZero() || !r.Total.IsZero() {
		t.Errorf("empty cart priced %s/%s", r.Subtotal, r.Total)
	}
	if r.CanOrder {
		t.Error("empty cart must not be orderable")
	}
}
