package storefront

import (
	"testing"

	"github.com/maxdeal/storefront/internal/catalog"
)

var (
	visionPro = catalog.Item{ID: "p1", Name: "Vision Pro 2", Price: 3499, Category: "Wearables"}
	galaxy    = catalog.Item{ID: "p2", Name: "Galaxy S26", Price: 1399, Category: "Phones"}
)

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	s := NewState()

	s.AddToCart(visionPro)
	s.AddToCart(galaxy)
	s.AddToCart(visionPro)

	if len(s.Cart) != 2 {
		t.Fatalf("Expected 2 cart lines, got %d", len(s.Cart))
	}
	if s.Cart[0].Quantity != 2 {
		t.Errorf("Expected quantity 2 for repeated item, got %d", s.Cart[0].Quantity)
	}
	if s.Cart[1].Quantity != 1 {
		t.Errorf("Expected quantity 1, got %d", s.Cart[1].Quantity)
	}
}

func TestBuyNowReplacesCart(t *testing.T) {
	s := NewState()
	s.AddToCart(visionPro)
	s.AddToCart(visionPro)

	s.BuyNow(galaxy)

	if len(s.Cart) != 1 || s.Cart[0].ID != "p2" || s.Cart[0].Quantity != 1 {
		t.Errorf("BuyNow must replace the cart with a single line, got %+v", s.Cart)
	}
	if s.Page != PageCheckout {
		t.Errorf("BuyNow must navigate to checkout, got %s", s.Page)
	}
}

func TestAddBundle(t *testing.T) {
	s := NewState()
	s.AddToCart(galaxy)

	s.AddBundle([]catalog.Item{visionPro, galaxy})

	if len(s.Cart) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(s.Cart))
	}
	if s.Cart[0].ID != "p2" || s.Cart[0].Quantity != 2 {
		t.Errorf("Bundle should increment existing lines, got %+v", s.Cart[0])
	}
}

func TestRemoveFromCart(t *testing.T) {
	s := NewState()
	s.AddToCart(visionPro)
	s.AddToCart(galaxy)

	s.RemoveFromCart("p1")

	if len(s.Cart) != 1 || s.Cart[0].ID != "p2" {
		t.Errorf("Expected only p2 remaining, got %+v", s.Cart)
	}

	// Removing an unknown id is a no-op.
	s.RemoveFromCart("nope")
	if len(s.Cart) != 1 {
		t.Errorf("Unknown id removal should be a no-op, got %+v", s.Cart)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	s := NewState()
	s.AddToCart(visionPro)

	s.UpdateQuantity("p1", 2)
	if s.Cart[0].Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", s.Cart[0].Quantity)
	}

	s.UpdateQuantity("p1", -10)
	if s.Cart[0].Quantity != 1 {
		t.Errorf("Quantity must never drop below 1, got %d", s.Cart[0].Quantity)
	}
}

func TestSubtotal(t *testing.T) {
	s := NewState()
	s.AddToCart(visionPro)
	s.AddToCart(galaxy)
	s.UpdateQuantity("p2", 1)

	want := 3499 + 2*1399.0
	if got := s.Subtotal(); got != want {
		t.Errorf("Expected subtotal %.2f, got %.2f", want, got)
	}
}

func TestNavigateToCategory(t *testing.T) {
	s := NewState()
	s.NavigateToCategory("Laptops")

	if s.Page != PageShop || s.ActiveCategory != "Laptops" {
		t.Errorf("Expected shop page with Laptops filter, got %s/%s", s.Page, s.ActiveCategory)
	}
}
