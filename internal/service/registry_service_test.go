package service

import (
	"context"
	"errors"
	"testing"

	"github.com/murphy83/wpgiftregistry/internal/models"
	"github.com/murphy83/wpgiftregistry/internal/storage"
)

var testSettings = DisplaySettings{CurrencySymbol: "€", CurrencySymbolPlacement: "after"}

func TestWishlistView(t *testing.T) {
	store := setupStore(t)
	reg := NewRegistryService(store, testSettings)
	res := NewReservationService(store)
	ctx := context.Background()
	w := seedWishlist(t, store)

	if err := res.Update(ctx, UpdateRequest{
		Schema: SchemaCurrent, WishlistID: w.ID, GiftID: "bike",
		HasParts: true, PartsClaimed: 3, Reserver: "Alice",
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	view, err := reg.Wishlist(ctx, w.ID)
	if err != nil {
		t.Fatalf("Wishlist failed: %v", err)
	}
	if view.Settings != testSettings {
		t.Errorf("Settings = %+v, want injected settings", view.Settings)
	}
	if view.Items[0].PartsReserved != 3 {
		t.Errorf("bike PartsReserved = %d, want 3", view.Items[0].PartsReserved)
	}
	if !view.Items[0].Available {
		t.Error("bike should still be available at 3 of 4 parts")
	}
	if view.Items[1].PartsReserved != 0 {
		t.Errorf("kettle PartsReserved = %d, want 0", view.Items[1].PartsReserved)
	}
}

func TestWishlistEmptyIsNotFound(t *testing.T) {
	store := setupStore(t)
	reg := NewRegistryService(store, testSettings)
	ctx := context.Background()

	empty := &models.Wishlist{Title: "Drafts"}
	if err := store.CreateWishlist(ctx, empty); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := reg.Wishlist(ctx, empty.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("empty wishlist: error = %v, want storage.ErrNotFound", err)
	}
	if _, err := reg.Wishlist(ctx, "absent"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("absent wishlist: error = %v, want storage.ErrNotFound", err)
	}
}

func TestWishlistsSkipsEmpty(t *testing.T) {
	store := setupStore(t)
	reg := NewRegistryService(store, testSettings)
	ctx := context.Background()

	seedWishlist(t, store)
	if err := store.CreateWishlist(ctx, &models.Wishlist{Title: "Drafts"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	summaries, err := reg.Wishlists(ctx)
	if err != nil {
		t.Fatalf("Wishlists failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1 (empty list skipped)", len(summaries))
	}
	if summaries[0].Title != "Wedding" || summaries[0].ItemCount != 2 {
		t.Errorf("unexpected summary: %+v", summaries[0])
	}
}

func TestCreateWishlistValidation(t *testing.T) {
	store := setupStore(t)
	reg := NewRegistryService(store, testSettings)
	ctx := context.Background()

	if err := reg.CreateWishlist(ctx, &models.Wishlist{Title: "  "}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("blank title: error = %v, want ErrBadRequest", err)
	}

	err := reg.CreateWishlist(ctx, &models.Wishlist{
		Title: "Party",
		Items: []models.Item{{Title: "Tent", HasParts: true, PartsTotal: 0}},
	})
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("divisible item without parts total: error = %v, want ErrBadRequest", err)
	}

	w := &models.Wishlist{Title: "<b>Party</b>"}
	if err := reg.CreateWishlist(ctx, w); err != nil {
		t.Fatalf("CreateWishlist failed: %v", err)
	}
	if w.Title != "Party" {
		t.Errorf("Title = %q, markup should be stripped", w.Title)
	}
}

func TestAddItemValidation(t *testing.T) {
	store := setupStore(t)
	reg := NewRegistryService(store, testSettings)
	ctx := context.Background()
	w := seedWishlist(t, store)

	if err := reg.AddItem(ctx, w.ID, &models.Item{Title: ""}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("blank item title: error = %v, want ErrBadRequest", err)
	}

	item := &models.Item{Title: "Vase", Available: true}
	if err := reg.AddItem(ctx, w.ID, item); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	view, err := reg.Wishlist(ctx, w.ID)
	if err != nil {
		t.Fatalf("Wishlist failed: %v", err)
	}
	if len(view.Items) != 3 || view.Items[2].Title != "Vase" {
		t.Errorf("item not appended: %+v", view.Items)
	}
}
