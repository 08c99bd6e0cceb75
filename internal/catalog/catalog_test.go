package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.yaml")

	content := `products:
  - id: p1
    name: Apple Vision Pro 2
    price: 3499
    category: Wearables
    image: https://images.unsplash.com/photo-123?w=800
  - id: p2
    name: Galaxy S26 Ultra
    name_ar: جالاكسي
    price: 1399
    category: Phones
    image: https://images.unsplash.com/photo-456?w=800&q=85
    is_hot: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(c.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(c.Items))
	}

	if c.Items[0].ID != "p1" || c.Items[0].Price != 3499 {
		t.Errorf("Unexpected first item: %+v", c.Items[0])
	}

	if c.Items[1].NameAr != "جالاكسي" {
		t.Errorf("Expected Arabic name preserved, got %q", c.Items[1].NameAr)
	}

	if !c.Items[1].IsHot {
		t.Error("Expected second item flagged hot")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty catalog",
			content: "products: []",
		},
		{
			name: "missing id",
			content: `products:
  - name: Mystery Gadget
    price: 10
    category: Misc
    image: https://x/y.jpg
`,
		},
		{
			name: "duplicate ids",
			content: `products:
  - id: p1
    name: A
    price: 1
    category: C
    image: https://x/a.jpg
  - id: p1
    name: B
    price: 2
    category: C
    image: https://x/b.jpg
`,
		},
		{
			name:    "invalid yaml",
			content: "products: [}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if len(c.Items) == 0 {
		t.Fatal("Expected built-in catalog to have products")
	}

	seen := make(map[string]bool)
	for _, item := range c.Items {
		if item.ID == "" {
			t.Errorf("Item %q has empty id", item.Name)
		}
		if seen[item.ID] {
			t.Errorf("Duplicate id %s in default catalog", item.ID)
		}
		seen[item.ID] = true
	}
}
