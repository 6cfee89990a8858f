package service

import (
	"context"
	"fmt"

	"github.com/murphy83/wpgiftregistry/internal/models"
	"github.com/murphy83/wpgiftregistry/internal/reservation"
	"github.com/murphy83/wpgiftregistry/internal/storage"
)

// DisplaySettings is the explicit display configuration handed to the
// presentation side. In the source system this was read from ambient
// global option storage; here it is injected at startup.
type DisplaySettings struct {
	CurrencySymbol          string `json:"currency_symbol"`
	CurrencySymbolPlacement string `json:"currency_symbol_placement"`
}

// WishlistSummary is one row of the "all wishlists" listing.
type WishlistSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ItemCount int    `json:"item_count"`
}

// ItemView is an item enriched with its reserved-parts total for
// display.
type ItemView struct {
	models.Item
	PartsReserved int `json:"gift_parts_reserved"`
}

// WishlistView is the read model of one wishlist.
type WishlistView struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Items    []ItemView      `json:"items"`
	Settings DisplaySettings `json:"settings"`
}

// RegistryService serves the display read surface and the management
// write surface of the registry.
type RegistryService struct {
	store    storage.Store
	settings DisplaySettings
}

// NewRegistryService creates a registry service over the store with the
// given injected display settings.
func NewRegistryService(store storage.Store, settings DisplaySettings) *RegistryService {
	return &RegistryService{store: store, settings: settings}
}

// Wishlist returns the read model of one wishlist. A wishlist whose
// item list is empty does not exist for display purposes, even if the
// stored document does.
func (s *RegistryService) Wishlist(ctx context.Context, id string) (*WishlistView, error) {
	w, ledger, err := s.store.GetWishlist(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(w.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	view := &WishlistView{
		ID:       w.ID,
		Title:    w.Title,
		Items:    make([]ItemView, len(w.Items)),
		Settings: s.settings,
	}
	for i, item := range w.Items {
		view.Items[i] = ItemView{
			Item:          item,
			PartsReserved: reservation.ReservedParts(ledger, item.ID),
		}
	}
	return view, nil
}

// Wishlists lists all wishlists for display, skipping any whose item
// list is empty or absent.
func (s *RegistryService) Wishlists(ctx context.Context) ([]WishlistSummary, error) {
	lists, err := s.store.ListWishlists(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]WishlistSummary, 0, len(lists))
	for _, w := range lists {
		if len(w.Items) == 0 {
			continue
		}
		summaries = append(summaries, WishlistSummary{
			ID:        w.ID,
			Title:     w.Title,
			ItemCount: len(w.Items),
		})
	}
	return summaries, nil
}

// LegacyList returns the flat legacy wishlist.
func (s *RegistryService) LegacyList(ctx context.Context) (models.LegacyList, error) {
	return s.store.GetLegacyList(ctx)
}

// CreateWishlist persists a new, empty-or-seeded wishlist.
func (s *RegistryService) CreateWishlist(ctx context.Context, w *models.Wishlist) error {
	w.Title = sanitizeText(w.Title)
	if w.Title == "" {
		return fmt.Errorf("%w: wishlist title is required", ErrBadRequest)
	}
	for i := range w.Items {
		if err := validateItem(&w.Items[i]); err != nil {
			return err
		}
	}
	return s.store.CreateWishlist(ctx, w)
}

// AddItem appends an item to an existing wishlist.
func (s *RegistryService) AddItem(ctx context.Context, wishlistID string, item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.store.AddItem(ctx, wishlistID, item)
}

// ReplaceLegacyList overwrites the flat legacy wishlist wholesale, the
// only way the old format was ever edited.
func (s *RegistryService) ReplaceLegacyList(ctx context.Context, list models.LegacyList) error {
	for i := range list.Items {
		list.Items[i].Title = sanitizeText(list.Items[i].Title)
		if list.Items[i].Title == "" {
			return fmt.Errorf("%w: legacy item title is required", ErrBadRequest)
		}
	}
	return s.store.PutLegacyList(ctx, list)
}

func validateItem(item *models.Item) error {
	item.Title = sanitizeText(item.Title)
	if item.Title == "" {
		return fmt.Errorf("%w: item title is required", ErrBadRequest)
	}
	if item.HasParts && item.PartsTotal < 1 {
		return fmt.Errorf("%w: divisible items need a parts total of at least 1", ErrBadRequest)
	}
	return nil
}
