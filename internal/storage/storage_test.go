package storage

import (
	"testing"

	"github.com/maxdeal/storefront/internal/assets"
	"github.com/maxdeal/storefront/internal/catalog"
)

func TestAssetStorePublishAndSnapshot(t *testing.T) {
	store := NewAssetStore()

	recs := assets.Scan([]catalog.Item{
		{ID: "a", Name: "A", Category: "C", Image: "https://images.unsplash.com/1?w=800"},
		{ID: "b", Name: "B", Category: "C", Image: "https://cdn.example/2.png"},
	})
	store.Reset(recs)

	all := store.All()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Fatalf("Expected scan order preserved, got %+v", all)
	}

	// Mutating the live record must not affect the published snapshot.
	recs[0].Status = assets.StatusGenerating
	snap, ok := store.Get("a")
	if !ok {
		t.Fatal("Expected record a")
	}
	if snap.Status != assets.StatusPending {
		t.Errorf("Snapshot should be isolated from live mutation, got %s", snap.Status)
	}

	// Publishing refreshes the snapshot in place without reordering.
	store.Publish(recs[0])
	all = store.All()
	if all[0].Status != assets.StatusGenerating {
		t.Errorf("Expected refreshed snapshot, got %s", all[0].Status)
	}
	if len(all) != 2 {
		t.Errorf("Publish of a known ID must not grow the store, got %d", len(all))
	}
}

func TestAssetStoreGetMissing(t *testing.T) {
	store := NewAssetStore()
	if _, ok := store.Get("nope"); ok {
		t.Error("Expected miss for unknown id")
	}
}
