package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchJSON(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":"p1","name":"Vision Pro 2","price":3499,"category":"Wearables","image":"https://cdn.example/1.png"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token-123")
	cat, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(cat.Items) != 1 || cat.Items[0].ID != "p1" {
		t.Errorf("Unexpected catalog: %+v", cat.Items)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("Expected bearer token header, got %q", gotAuth)
	}
}

func TestFetchYAML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte("products:\n  - id: p1\n    name: Vision Pro 2\n    price: 3499\n    category: Wearables\n    image: https://cdn.example/1.png\n"))
	}))
	defer srv.Close()

	cat, err := NewClient(srv.URL, "").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(cat.Items) != 1 || cat.Items[0].Name != "Vision Pro 2" {
		t.Errorf("Unexpected catalog: %+v", cat.Items)
	}
}

func TestFetchErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		if _, err := NewClient(srv.URL, "").Fetch(context.Background()); err == nil {
			t.Error("Expected an error for a 503 response")
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"products":[]}`))
		}))
		defer srv.Close()

		if _, err := NewClient(srv.URL, "").Fetch(context.Background()); err == nil {
			t.Error("Expected an error for an empty catalog")
		}
	})
}
