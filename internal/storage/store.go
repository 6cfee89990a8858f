// Package storage provides abstractions for persistent registry data.
package storage

import (
	"context"
	"errors"

	"github.com/murphy83/wpgiftregistry/internal/models"
)

// ErrNotFound is returned when a wishlist does not exist in the store.
var ErrNotFound = errors.New("wishlist not found")

// Store defines the interface for registry storage operations.
// The registry is a document store: each wishlist is one record keyed
// by its ID, carrying an item list and a reservation ledger as sibling
// attributes. This abstraction allows swapping storage backends
// without changing the service layer.
type Store interface {
	// CreateWishlist persists a new wishlist. The ID and CreatedAt
	// fields are populated by the store when unset.
	CreateWishlist(ctx context.Context, w *models.Wishlist) error

	// GetWishlist retrieves a wishlist and its reservation ledger.
	// Returns ErrNotFound if the wishlist does not exist.
	GetWishlist(ctx context.Context, id string) (*models.Wishlist, models.Ledger, error)

	// ListWishlists returns all wishlists ordered by creation time.
	// Empty wishlists are included; display-level filtering is the
	// caller's concern.
	ListWishlists(ctx context.Context) ([]*models.Wishlist, error)

	// AddItem appends an item to a wishlist. The item ID is populated
	// by the store when unset. Returns ErrNotFound for unknown lists.
	AddItem(ctx context.Context, wishlistID string, item *models.Item) error

	// UpdateReservationState replaces both the item list and the ledger
	// of a wishlist in one atomic write: either both attributes are
	// persisted or neither is.
	UpdateReservationState(ctx context.Context, id string, items []models.Item, ledger models.Ledger) error

	// GetLegacyList retrieves the flat legacy wishlist. A store with no
	// legacy record returns an empty list, not an error.
	GetLegacyList(ctx context.Context) (models.LegacyList, error)

	// PutLegacyList replaces the flat legacy wishlist wholesale.
	PutLegacyList(ctx context.Context, list models.LegacyList) error

	// Close releases any resources held by the store.
	Close() error
}
