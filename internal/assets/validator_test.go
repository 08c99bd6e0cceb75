package assets

import (
	"testing"

	"github.com/maxdeal/storefront/internal/catalog"
)

func TestScanFlagsStockImages(t *testing.T) {
	items := []catalog.Item{
		{ID: "p1", Name: "Vision Pro", Category: "Wearables", Image: "https://x/unsplash.com/photo?w=800"},
	}

	records := Scan(items)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Status != StatusPending {
		t.Errorf("Expected status PENDING, got %s", rec.Status)
	}
	if rec.ResolvedURL != "" {
		t.Errorf("Expected no resolved URL for pending record, got %q", rec.ResolvedURL)
	}

	for _, c := range rec.Checks {
		switch c.Kind {
		case CheckBackgroundColor, CheckAspectRatio:
			if c.Status != CheckFail {
				t.Errorf("Expected %s to fail, got %s", c.Kind, c.Status)
			}
		default:
			if c.Status != CheckPass {
				t.Errorf("Expected %s to pass, got %s", c.Kind, c.Status)
			}
		}
	}
}

func TestScanStatuses(t *testing.T) {
	tests := []struct {
		name   string
		image  string
		status Status
	}{
		{
			name:   "stock image without quality marker",
			image:  "https://images.unsplash.com/photo-123?w=800",
			status: StatusPending,
		},
		{
			name:   "stock image with quality marker",
			image:  "https://images.unsplash.com/photo-123?w=800&q=85",
			status: StatusOptimized,
		},
		{
			name:   "non-stock image",
			image:  "https://cdn.maxdeal.example/assets/p1.webp",
			status: StatusOptimized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Scan([]catalog.Item{{ID: "p1", Name: "Item", Category: "Misc", Image: tt.image}})
			rec := records[0]

			if rec.Status != tt.status {
				t.Errorf("Expected %s, got %s", tt.status, rec.Status)
			}

			if tt.status == StatusOptimized {
				if !rec.AllChecksPass() {
					t.Error("Optimized record must pass all checks")
				}
				if rec.ResolvedURL != tt.image {
					t.Errorf("Optimized record must resolve to its original URL, got %q", rec.ResolvedURL)
				}
			}
		})
	}
}

func TestScanPreservesLengthAndOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Name: "A", Category: "C", Image: "https://images.unsplash.com/1?w=800"},
		{ID: "b", Name: "B", Category: "C", Image: "https://cdn.example/2.png"},
		{ID: "c", Name: "C", Category: "C", Image: "https://images.unsplash.com/3?q=85"},
		{ID: "d", Name: "D", Category: "C", Image: "https://images.unsplash.com/4?w=400"},
	}

	records := Scan(items)
	if len(records) != len(items) {
		t.Fatalf("Expected %d records, got %d", len(items), len(records))
	}
	for i, rec := range records {
		if rec.ID != items[i].ID {
			t.Errorf("Record %d: expected id %s, got %s", i, items[i].ID, rec.ID)
		}
	}
}

func TestScanEmptyCatalog(t *testing.T) {
	if got := Scan(nil); len(got) != 0 {
		t.Errorf("Expected no records for empty catalog, got %d", len(got))
	}
}
