package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item represents one product in the storefront catalog
type Item struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	NameAr        string  `yaml:"name_ar,omitempty" json:"name_ar,omitempty"`
	Price         float64 `yaml:"price" json:"price"`
	OldPrice      float64 `yaml:"old_price,omitempty" json:"old_price,omitempty"`
	Category      string  `yaml:"category" json:"category"`
	Image         string  `yaml:"image" json:"image"`
	Rating        float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	Reviews       int     `yaml:"reviews,omitempty" json:"reviews,omitempty"`
	IsFlashSale   bool    `yaml:"is_flash_sale,omitempty" json:"is_flash_sale,omitempty"`
	IsNew         bool    `yaml:"is_new,omitempty" json:"is_new,omitempty"`
	IsHot         bool    `yaml:"is_hot,omitempty" json:"is_hot,omitempty"`
	Description   string  `yaml:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string  `yaml:"description_ar,omitempty" json:"description_ar,omitempty"`
}

// Catalog is the full product set. The whole set is the unit of
// consumption; there is no query language or pagination.
type Catalog struct {
	Items []Item `yaml:"products"`
}

// Load reads a product catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(c.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	seen := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q is missing an id", item.Name)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate catalog item id: %s", item.ID)
		}
		seen[item.ID] = true
	}

	return &c, nil
}

// Default returns the built-in demo catalog used when no catalog file
// is supplied
func Default() *Catalog {
	return &Catalog{Items: []Item{
		{
			ID:       "p1",
			Name:     "Apple Vision Pro 2",
			NameAr:   "أبل فيجن برو ٢",
			Price:    3499,
			Category: "Wearables",
			Image:    "https://images.unsplash.com/photo-1707306633464-d4f0c0f8e2f9?w=800",
			Rating:   4.9,
			Reviews:  412,
			IsNew:    true,
		},
		{
			ID:       "p2",
			Name:     "Titan X RTX 5090 Laptop",
			NameAr:   "لابتوب تيتان إكس RTX 5090",
			Price:    4199,
			OldPrice: 4699,
			Category: "Laptops",
			Image:    "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=800",
			Rating:   4.8,
			Reviews:  287,
			IsHot:    true,
		},
		{
			ID:       "p3",
			Name:     "Galaxy S26 Ultra",
			NameAr:   "جالاكسي إس ٢٦ ألترا",
			Price:    1399,
			Category: "Phones",
			Image:    "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=800&q=85",
			Rating:   4.7,
			Reviews:  934,
		},
		{
			ID:          "p4",
			Name:        "AeroPods Max 2",
			NameAr:      "إيروبودز ماكس ٢",
			Price:       599,
			OldPrice:    649,
			Category:    "Audio",
			Image:       "https://images.unsplash.com/photo-1613040809024-b4ef7ba99bc3?w=800",
			Rating:      4.6,
			Reviews:     1203,
			IsFlashSale: true,
		},
	}}
}
